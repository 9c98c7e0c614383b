package main

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

const (
	minColumnWidth = 10
	// Excel rejects wider columns and so does excelize.
	maxColumnWidth = 255
)

// convertOptions holds the settings shared by both conversion directions.
type convertOptions struct {
	// Template leaves the translation column empty when writing a spreadsheet.
	Template bool
	// Prefill machine translates empty entries when writing a spreadsheet.
	// Ignored in template mode.
	Prefill *prefillOptions
	// Progress receives the progress bar. Nil disables it.
	Progress io.Writer
	// Log receives warnings and summaries. Nil discards them.
	Log io.Writer
}

func (o convertOptions) log() io.Writer {
	if o.Log == nil {
		return io.Discard
	}
	return o.Log
}

// xlsToPo converts the first worksheet of the workbook at inPath into a PO
// catalog at outPath. Column A holds the msgid, column B the msgstr.
func xlsToPo(inPath, outPath string, opts convertOptions) error {
	records, err := readSheetRecords(inPath, opts.Progress)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, []byte(renderCatalog(records)), 0644); err != nil {
		return fmt.Errorf("writing catalog %s: %w", outPath, err)
	}
	return nil
}

func readSheetRecords(path string, progress io.Writer) ([]Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spreadsheet %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("reading spreadsheet %s: workbook has no worksheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading spreadsheet %s: %w", path, err)
	}

	records := make([]Record, 0, len(rows))
	bar := newProgressBar(progress, len(rows), path)
	for _, row := range rows {
		bar.Add(1)
		if isBlankRow(row) {
			continue
		}
		records = append(records, newRecord(cellAt(row, 0), cellAt(row, 1)))
	}
	return records, nil
}

// isBlankRow reports whether a row has no value in any cell. Such rows only
// exist as gaps between populated rows and carry no entry.
func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// poToXls converts the PO catalog at inPath into a single sheet workbook at
// outPath, one row per entry.
func poToXls(inPath, outPath string, opts convertOptions) error {
	c, err := readCatalog(inPath)
	if err != nil {
		return err
	}

	records := c.Records
	switch {
	case opts.Template:
		records = templateRecords(records)
	case opts.Prefill != nil:
		prefill := *opts.Prefill
		if prefill.TargetLang == "" {
			prefill.TargetLang = c.Language
		}
		if prefill.TargetLang == "" {
			return errNoTargetLanguage
		}
		var translated int
		records, translated = prefillTranslations(records, inPath, prefill)
		fmt.Fprintf(opts.log(), "Translated %d string(s) to %s\n", translated, prefill.TargetLang)
	}

	f, err := buildWorkbook(records, inPath, opts.Progress)
	if err != nil {
		return err
	}
	defer f.Close()

	return writeWorkbook(f, outPath)
}

func templateRecords(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = newRecord(r.MsgID, "")
	}
	return out
}

func buildWorkbook(records []Record, path string, progress io.Writer) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	bar := newProgressBar(progress, len(records), path)

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &[]interface{}{r.MsgID, r.MsgStr}); err != nil {
			f.Close()
			return nil, fmt.Errorf("writing row %d: %w", i+1, err)
		}
		bar.Add(1)
	}

	if err := f.SetColWidth(sheet, "A", "B", columnWidth(records)); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// columnWidth is the width shared by every column: the longest cell value
// across the whole sheet, but never less than minColumnWidth.
func columnWidth(records []Record) float64 {
	maxLen := 0
	for _, r := range records {
		maxLen = max(maxLen, utf8.RuneCountInString(r.MsgID), utf8.RuneCountInString(r.MsgStr))
	}
	return float64(min(max(maxLen, minColumnWidth), maxColumnWidth))
}

// writeWorkbook streams the workbook to path. SaveAs is avoided because it
// rejects extensions such as .xls that are still accepted on the command line.
func writeWorkbook(f *excelize.File, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing spreadsheet %s: %w", path, err)
	}
	if err := f.Write(out); err != nil {
		out.Close()
		return fmt.Errorf("writing spreadsheet %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("writing spreadsheet %s: %w", path, err)
	}
	return nil
}
