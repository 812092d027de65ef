package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"tgju/internal"
)

// ExportJSON dumps an Envelope verbatim to path, UTF-8 with 2-space
// indentation and non-ASCII names unescaped.
func ExportJSON(env internal.Envelope, path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// ExportXLSX writes every record of a successful Envelope to a single
// sheet, gold first, then coins, then currencies.
func ExportXLSX(env internal.Envelope, path string) error {
	if !env.OK() || env.Data == nil {
		return fmt.Errorf("no data to export: %s", env.Message)
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"key", "name", "price", "change", "min_price", "max_price", "time", "category"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	r := 2
	for _, items := range []map[string]internal.Record{env.Data.Gold, env.Data.Coins, env.Data.Currencies} {
		for _, rec := range sortedByName(items) {
			set := func(col int, value any) {
				cell, _ := excelize.CoordinatesToCellName(col, r)
				_ = f.SetCellValue(sheet, cell, value)
			}
			set(1, rec.Key)
			set(2, rec.Name)
			set(3, rec.Price)
			set(4, rec.Change)
			set(5, rec.MinPrice)
			set(6, rec.MaxPrice)
			set(7, rec.Time)
			set(8, string(rec.Category))
			r++
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return f.SaveAs(path)
}
