package pipeline

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"toramboss/internal"
)

func TestSplitName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  NameParts
	}{
		{name: "level and difficulty", input: "Boss Alpha (Lv 42) (Hard)", want: NameParts{Name: "Boss Alpha", Diff: internal.DiffHard, Lvl: "42"}},
		{name: "difficulty first", input: "Boss Alpha (Ultimate) (Lv 7)", want: NameParts{Name: "Boss Alpha", Diff: internal.DiffUltimate, Lvl: "7"}},
		{name: "no difficulty", input: "Boss Beta (Lv 10)", want: NameParts{Name: "Boss Beta", Diff: internal.NoDifficulty, Lvl: "10"}},
		{name: "no tags", input: "Boss Gamma", want: NameParts{Name: "Boss Gamma", Diff: internal.NoDifficulty}},
		{name: "unknown difficulty", input: "Boss Delta (Insane)", want: NameParts{Name: "Boss Delta (Insane)", Diff: internal.NoDifficulty}},
		{name: "unwrapped level stays in name", input: "Boss Lv 12 (Easy)", want: NameParts{Name: "Boss Lv 12", Diff: internal.DiffEasy, Lvl: "12"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, SplitName(tc.input)); diff != "" {
				t.Fatalf("split mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplitNameNeverEmptyDifficulty(t *testing.T) {
	for _, input := range []string{"", "Boss", "Boss (Lv 1)", "(Normal)"} {
		if got := SplitName(input).Diff; got == "" {
			t.Fatalf("empty diff for %q", input)
		}
	}
}

func TestJoinDrops(t *testing.T) {
	if got := JoinDrops([]internal.Drop{{Name: "A"}, {Name: "B"}}); got != "A, B" {
		t.Fatalf("got %q", got)
	}
	if got := JoinDrops([]internal.Drop{{Name: "B"}, {Name: "A"}, {Name: "B"}}); got != "B, A, B" {
		t.Fatalf("got %q", got)
	}
	if got := JoinDrops(nil); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalizeBoss(t *testing.T) {
	raw := internal.RawBoss{
		Name:     "Boss Alpha (Lv 42) (Hard)",
		Element:  "Api",
		HP:       "12000",
		XP:       "300",
		Leveling: "40 s/d 45",
		Map:      "Lost Cave",
		Drops:    []internal.Drop{{Name: "Fang"}, {Name: "Claw"}},
	}
	want := internal.BossRecord{
		Name:     "Boss Alpha",
		Diff:     "Hard",
		Lvl:      "42",
		Element:  "Api",
		HP:       "12000",
		XP:       "300",
		Leveling: "40 s/d 45",
		Map:      "Lost Cave",
		Drops:    "Fang, Claw",
	}
	if diff := cmp.Diff(want, NormalizeBoss(raw)); diff != "" {
		t.Fatalf("normalize mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeBossesKeepsOrder(t *testing.T) {
	got := NormalizeBosses([]internal.RawBoss{{Name: "B (Lv 2)"}, {Name: "A (Lv 1)"}})
	if len(got) != 2 || got[0].Name != "B" || got[1].Name != "A" {
		t.Fatalf("unexpected %+v", got)
	}
}
