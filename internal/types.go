package internal

type Difficulty string

const (
	DiffEasy      Difficulty = "Easy"
	DiffNormal    Difficulty = "Normal"
	DiffHard      Difficulty = "Hard"
	DiffNightmare Difficulty = "Nightmare"
	DiffUltimate  Difficulty = "Ultimate"

	// NoDifficulty marks a boss whose name carries no difficulty tag.
	NoDifficulty Difficulty = "-"
)

// Difficulties is ordered easiest to hardest.
var Difficulties = []Difficulty{DiffEasy, DiffNormal, DiffHard, DiffNightmare, DiffUltimate}

type Drop struct {
	Name string `json:"name"`
}

type RawBoss struct {
	Name     string
	Element  string
	HP       string
	XP       string
	Leveling string
	Map      string
	Drops    []Drop
}

// BossRecord field order is the artifact field order.
type BossRecord struct {
	Name     string `json:"name"`
	Diff     string `json:"diff"`
	Lvl      string `json:"lvl,omitempty"`
	Element  string `json:"element"`
	HP       string `json:"hp"`
	XP       string `json:"xp"`
	Leveling string `json:"leveling"`
	Map      string `json:"map"`
	Drops    string `json:"drops"`
}

type RunStatus string

const (
	RunRunning RunStatus = "running"
	RunOK      RunStatus = "ok"
	RunFailed  RunStatus = "failed"
)

type RunRow struct {
	ID         int
	TraceID    string
	Status     RunStatus
	Pages      int
	Records    int
	OutputPath string
	Error      *string
	StartedAt  string
	FinishedAt *string
}
