package pipeline

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"vocabconv/internal"
	"vocabconv/internal/config"
)

// ExportEntriesToXLSX writes a reviewer spreadsheet of converted entries, one
// row per record in source order.
func ExportEntriesToXLSX(entries []internal.VocabEntry, cfg config.Config, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	if cfg.ExportSheetName != "" && cfg.ExportSheetName != sheet {
		_ = f.SetSheetName(sheet, cfg.ExportSheetName)
		sheet = cfg.ExportSheetName
	}

	headers := []string{
		"row_no", "id", "name", "title_en", "extra_languages", "acronym", "scheme", "identifier",
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, entry := range entries {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, i+1)
		set(2, entry.ID)
		set(3, entry.Name)
		set(4, entry.Title["en"])
		set(5, extraLanguages(entry.Title, cfg.ExportLangLimit))
		set(6, derefString(entry.Acronym))
		if len(entry.Identifiers) > 0 {
			set(7, entry.Identifiers[0].Scheme)
			set(8, entry.Identifiers[0].Identifier)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func extraLanguages(title map[string]string, limit int) string {
	codes := make([]string, 0, len(title))
	for code := range title {
		if code != "en" {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	if limit > 0 && len(codes) > limit {
		codes = codes[:limit]
	}
	return strings.Join(codes, ",")
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
