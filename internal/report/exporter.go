// Package report renders record snapshots as formatted xlsx spreadsheets.
package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ErrInvalidFilename is returned for a report name that has no file part.
var ErrInvalidFilename = errors.New("invalid report filename")

// DefaultDir is where reports are written when no directory is configured.
const DefaultDir = "reports"

const (
	titleRow  = 1
	dateRow   = 2
	headerRow = 3
	firstData = 4

	accentColor = "4F81BD"
)

// centered holds the 1-based columns whose data cells are center-aligned
// (the date and numeric columns of every schema).
var centered = map[int]bool{4: true, 5: true}

// Exporter writes reports into one directory.
type Exporter struct {
	dir string
	now func() time.Time
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithClock overrides the time used for the date row and default file names.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) { e.now = now }
}

// NewExporter creates an exporter writing under dir.
func NewExporter(dir string, opts ...Option) *Exporter {
	if dir == "" {
		dir = DefaultDir
	}
	e := &Exporter{dir: dir, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Dir returns the output directory.
func (e *Exporter) Dir() string { return e.dir }

// DefaultFilename returns report_<kind>_<YYYYMMDD_HHMMSS>.xlsx for at.
func DefaultFilename(kind Kind, at time.Time) string {
	return fmt.Sprintf("report_%s_%s.xlsx", kind, at.Format("20060102_150405"))
}

// Export renders rows as a kind report and returns the written path. An
// empty filename selects DefaultFilename; any directory part is dropped and
// ".xlsx" is appended when the name lacks it. The output directory is
// created when missing.
func (e *Exporter) Export(ctx context.Context, kind Kind, rows []Row, filename string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	schema, err := SchemaFor(kind)
	if err != nil {
		return "", err
	}

	now := e.now()
	name, err := reportFilename(kind, filename, now)
	if err != nil {
		return "", err
	}
	path := filepath.Join(e.dir, name)

	f := excelize.NewFile()
	defer f.Close()

	if err := render(f, schema, rows, now); err != nil {
		return "", fmt.Errorf("rendering %s report: %w", kind, err)
	}
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating reports dir: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving report: %w", err)
	}
	return path, nil
}

func reportFilename(kind Kind, filename string, at time.Time) (string, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return DefaultFilename(kind, at), nil
	}
	name := filepath.Base(filename)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}
	if !strings.EqualFold(filepath.Ext(name), ".xlsx") {
		name += ".xlsx"
	}
	return name, nil
}

type styles struct {
	title, date, header, data, dataCentered int
}

func newStyles(f *excelize.File) (styles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	var s styles
	var err error
	if s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return s, err
	}
	if s.date, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Italic: true},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	}); err != nil {
		return s, err
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{accentColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	}); err != nil {
		return s, err
	}
	if s.data, err = f.NewStyle(&excelize.Style{Border: border}); err != nil {
		return s, err
	}
	s.dataCentered, err = f.NewStyle(&excelize.Style{
		Border:    border,
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	return s, err
}

func render(f *excelize.File, schema Schema, rows []Row, now time.Time) error {
	sheet := schema.Title
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return err
	}
	st, err := newStyles(f)
	if err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(len(schema.Columns))
	if err != nil {
		return err
	}

	// title and date rows span every column
	for _, r := range []struct {
		row   int
		value string
		style int
	}{
		{titleRow, schema.Title, st.title},
		{dateRow, "Ngày xuất báo cáo: " + now.Format("02/01/2006 15:04"), st.date},
	} {
		first := fmt.Sprintf("A%d", r.row)
		if err := f.MergeCell(sheet, first, fmt.Sprintf("%s%d", lastCol, r.row)); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, first, r.value); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, first, first, r.style); err != nil {
			return err
		}
	}

	for i, col := range schema.Columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, col.Width); err != nil {
			return err
		}
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col.Header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, st.header); err != nil {
			return err
		}
	}

	for r, row := range rows {
		for i, col := range schema.Columns {
			cell, err := excelize.CoordinatesToCellName(i+1, firstData+r)
			if err != nil {
				return err
			}
			value := row.Field(col.Field)
			if value == nil {
				value = ""
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
			style := st.data
			if centered[i+1] {
				style = st.dataCentered
			}
			if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
				return err
			}
		}
	}
	return nil
}
