package report

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"toramboss/internal"
)

// RenderBosses prints up to limit records; limit <= 0 prints all of them.
func RenderBosses(w io.Writer, records []internal.BossRecord, limit int) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Name", "Diff", "Lvl", "Element", "HP", "XP", "Leveling", "Map", "Drops"})

	shown := records
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	for i, r := range shown {
		t.AppendRow(table.Row{i + 1, r.Name, r.Diff, r.Lvl, r.Element, r.HP, r.XP, r.Leveling, r.Map, r.Drops})
	}
	t.AppendFooter(table.Row{"", "total " + strconv.Itoa(len(records))})

	t.SetStyle(table.StyleRounded)
	t.Render()
}

func RenderRuns(w io.Writer, runs []internal.RunRow) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"ID", "Trace", "Status", "Pages", "Records", "Started", "Finished", "Error"})
	for _, r := range runs {
		t.AppendRow(table.Row{r.ID, r.TraceID, string(r.Status), r.Pages, r.Records, r.StartedAt, deref(r.FinishedAt), deref(r.Error)})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
