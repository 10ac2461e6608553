package pipeline

import (
	"sort"

	"toramboss/internal"
	"toramboss/internal/util"
)

// SortByLevel stable-sorts by numeric level, ascending. Records without a
// parsable level go last and keep their input order.
func SortByLevel(records []internal.BossRecord) []internal.BossRecord {
	out := make([]internal.BossRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return levelLess(out[i], out[j])
	})
	return out
}

// GroupByName makes every name contiguous. Groups appear in the order their
// name is first seen and each group is level-sorted.
func GroupByName(records []internal.BossRecord) []internal.BossRecord {
	groups := util.NewOrderedGroups[string, internal.BossRecord]()
	for _, r := range records {
		groups.Add(r.Name, r)
	}

	out := make([]internal.BossRecord, 0, len(records))
	groups.Each(func(_ string, group []internal.BossRecord) {
		out = append(out, SortByLevel(group)...)
	})
	return out
}

func SortDataset(records []internal.BossRecord) []internal.BossRecord {
	return GroupByName(SortByLevel(records))
}

func levelLess(a, b internal.BossRecord) bool {
	la, okA := util.ParseLevel(a.Lvl)
	lb, okB := util.ParseLevel(b.Lvl)
	switch {
	case okA && okB:
		return la < lb
	case okA:
		return true
	default:
		return false
	}
}
