package pipeline

import (
	"regexp"
	"strings"

	"toramboss/internal"
)

var (
	reDifficulty = regexp.MustCompile(`\((` + difficultyAlternation() + `)\)`)
	reLevel      = regexp.MustCompile(`Lv (\d+)`)
)

const dropSeparator = ", "

// NameParts is the result of splitting a listing title into its tags.
type NameParts struct {
	Name string
	Diff internal.Difficulty
	Lvl  string
}

// SplitName pulls the difficulty and level tags out of a listing title.
// Only the parenthesised " (Lv N)" form is stripped from the name; a bare
// "Lv N" still yields the level but stays in the name.
func SplitName(name string) NameParts {
	parts := NameParts{Name: name, Diff: internal.NoDifficulty}

	if m := reDifficulty.FindStringSubmatch(parts.Name); m != nil {
		parts.Diff = internal.Difficulty(m[1])
		parts.Name = strings.TrimSpace(strings.Replace(parts.Name, " ("+m[1]+")", "", 1))
	}

	if m := reLevel.FindStringSubmatch(parts.Name); m != nil {
		parts.Lvl = m[1]
		parts.Name = strings.TrimSpace(strings.Replace(parts.Name, " (Lv "+m[1]+")", "", 1))
	}

	return parts
}

func difficultyAlternation() string {
	names := make([]string, 0, len(internal.Difficulties))
	for _, d := range internal.Difficulties {
		names = append(names, regexp.QuoteMeta(string(d)))
	}
	return strings.Join(names, "|")
}

func JoinDrops(drops []internal.Drop) string {
	names := make([]string, 0, len(drops))
	for _, d := range drops {
		names = append(names, d.Name)
	}
	return strings.Join(names, dropSeparator)
}

func NormalizeBoss(raw internal.RawBoss) internal.BossRecord {
	parts := SplitName(raw.Name)
	return internal.BossRecord{
		Name:     parts.Name,
		Diff:     string(parts.Diff),
		Lvl:      parts.Lvl,
		Element:  raw.Element,
		HP:       raw.HP,
		XP:       raw.XP,
		Leveling: raw.Leveling,
		Map:      raw.Map,
		Drops:    JoinDrops(raw.Drops),
	}
}

func NormalizeBosses(raws []internal.RawBoss) []internal.BossRecord {
	out := make([]internal.BossRecord, 0, len(raws))
	for _, raw := range raws {
		out = append(out, NormalizeBoss(raw))
	}
	return out
}
