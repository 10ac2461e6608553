package pipeline

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"toramboss/internal"
)

var exportHeaders = []string{"name", "diff", "lvl", "element", "hp", "xp", "leveling", "map", "drops"}

func ExportBossesToXLSX(records []internal.BossRecord, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, r := range records {
		row := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, r.Name)
		set(2, r.Diff)
		set(3, r.Lvl)
		set(4, r.Element)
		set(5, r.HP)
		set(6, r.XP)
		set(7, r.Leveling)
		set(8, r.Map)
		set(9, r.Drops)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
