// Package workbook adapts xlsx files to the resolver's grid model. It wraps
// excelize for reading sheets into immutable grids, writing tabular data
// back, and flattening merged cells so every covered cell carries a value.
package workbook

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/LoongMichael/xlgrab/pkg/grid"
)

// Workbook is an open xlsx file.
type Workbook struct {
	f *excelize.File
}

// Open reads a workbook from disk.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	return &Workbook{f: f}, nil
}

// New creates an empty workbook with the default sheet.
func New() *Workbook {
	return &Workbook{f: excelize.NewFile()}
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// Sheets lists the sheet names in workbook order.
func (w *Workbook) Sheets() []string {
	return w.f.GetSheetList()
}

// HasSheet reports whether the named sheet exists.
func (w *Workbook) HasSheet(name string) bool {
	idx, err := w.f.GetSheetIndex(name)
	return err == nil && idx >= 0
}

// AddSheet creates a new empty sheet.
func (w *Workbook) AddSheet(name string) error {
	if _, err := w.f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to add sheet %s: %w", name, err)
	}
	return nil
}

// Grid reads a sheet into a grid of cell strings. An empty sheet name picks
// the first sheet, matching the common "just use the only sheet" case.
func (w *Workbook) Grid(sheet string) (*grid.Grid, error) {
	sheet, err := w.sheetOrFirst(sheet)
	if err != nil {
		return nil, err
	}
	rows, err := w.f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	return grid.New(rows), nil
}

// WriteRows writes a block of cell values with its top-left corner at the
// 1-based (startRow, startCol).
func (w *Workbook) WriteRows(sheet string, startRow, startCol int, rows [][]string) error {
	if startRow < 1 || startCol < 1 {
		return fmt.Errorf("start position is 1-based, got row %d col %d", startRow, startCol)
	}
	for i, row := range rows {
		for j, val := range row {
			axis, err := excelize.CoordinatesToCellName(startCol+j, startRow+i)
			if err != nil {
				return fmt.Errorf("failed to name cell (%d,%d): %w", startRow+i, startCol+j, err)
			}
			if err := w.f.SetCellValue(sheet, axis, val); err != nil {
				return fmt.Errorf("failed to write %s: %w", axis, err)
			}
		}
	}
	return nil
}

// Merge merges the rectangle between two corner cell names.
func (w *Workbook) Merge(sheet, topLeft, bottomRight string) error {
	if err := w.f.MergeCell(sheet, topLeft, bottomRight); err != nil {
		return fmt.Errorf("failed to merge %s:%s: %w", topLeft, bottomRight, err)
	}
	return nil
}

// UnmergeFill dissolves every merged range on the sheet and writes the
// range's value into each cell it covered, so later grid reads see the value
// everywhere the merge displayed it. Returns the number of ranges processed.
func (w *Workbook) UnmergeFill(sheet string) (int, error) {
	sheet, err := w.sheetOrFirst(sheet)
	if err != nil {
		return 0, err
	}
	merges, err := w.f.GetMergeCells(sheet)
	if err != nil {
		return 0, fmt.Errorf("failed to list merged cells of %s: %w", sheet, err)
	}
	if len(merges) == 0 {
		return 0, nil
	}

	type span struct {
		value              string
		start, end         string
		startCol, startRow int
		endCol, endRow     int
	}
	spans := make([]span, 0, len(merges))
	for _, mc := range merges {
		s := span{value: mc.GetCellValue(), start: mc.GetStartAxis(), end: mc.GetEndAxis()}
		if s.startCol, s.startRow, err = excelize.CellNameToCoordinates(s.start); err != nil {
			return 0, fmt.Errorf("failed to parse merge corner %s: %w", s.start, err)
		}
		if s.endCol, s.endRow, err = excelize.CellNameToCoordinates(s.end); err != nil {
			return 0, fmt.Errorf("failed to parse merge corner %s: %w", s.end, err)
		}
		spans = append(spans, s)
	}

	// Dissolve everything first, then fill, so writes land on plain cells.
	for _, s := range spans {
		if err := w.f.UnmergeCell(sheet, s.start, s.end); err != nil {
			return 0, fmt.Errorf("failed to unmerge %s:%s: %w", s.start, s.end, err)
		}
	}
	for _, s := range spans {
		for row := s.startRow; row <= s.endRow; row++ {
			for col := s.startCol; col <= s.endCol; col++ {
				axis, err := excelize.CoordinatesToCellName(col, row)
				if err != nil {
					return 0, fmt.Errorf("failed to name cell (%d,%d): %w", row, col, err)
				}
				if err := w.f.SetCellValue(sheet, axis, s.value); err != nil {
					return 0, fmt.Errorf("failed to fill %s: %w", axis, err)
				}
			}
		}
	}
	return len(spans), nil
}

// Save writes the workbook back to the path it was opened from.
func (w *Workbook) Save() error {
	if err := w.f.Save(); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// SaveAs writes the workbook to a new path.
func (w *Workbook) SaveAs(path string) error {
	if err := w.f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook to %s: %w", path, err)
	}
	return nil
}

func (w *Workbook) sheetOrFirst(name string) (string, error) {
	if name != "" {
		return name, nil
	}
	sheets := w.f.GetSheetList()
	if len(sheets) == 0 {
		return "", errors.New("workbook has no sheets")
	}
	return sheets[0], nil
}

// Loader opens a workbook per call and reads one sheet. It is stateless, so
// a zero value is ready to use as a locate.Loader.
type Loader struct{}

// Grid implements the batch dispatcher's loader contract.
func (Loader) Grid(file, sheet string) (*grid.Grid, error) {
	wb, err := Open(file)
	if err != nil {
		return nil, err
	}
	defer wb.Close()
	return wb.Grid(sheet)
}
