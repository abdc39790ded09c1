// =============================================================================
// IPFIX Element XML Maker - XLSX Element Source
// =============================================================================
//
// This module reads element definitions from the first sheet of an XLSX
// workbook. Each spreadsheet row is one element, laid out like the text
// format:
//
//   | Column A   | Column B | Column C        | Column D   | Column E     |
//   |------------|----------|-----------------|------------|--------------|
//   | Enterprise | ID       | Name            | Data Type  | Semantic     |
//   | 0          | 1        | octetDeltaCount | unsigned64 | deltaCounter |
//
// There is no header row. Trailing empty cells are dropped by the workbook
// reader, so a row with an empty column E has four fields.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ipfixcol/xml-maker/internal/types"
)

// SheetParser streams rows of a workbook sheet. It implements
// types.RowSource.
type SheetParser struct {
	file  *excelize.File
	rows  *excelize.Rows
	sheet string
	row   types.Row
	line  int
	err   error
}

// Open opens the workbook at filePath and positions the parser before the
// first row of its first sheet.
//
// RETURNS:
//   - A pointer to the SheetParser.
//   - An error if the workbook cannot be opened or has no sheets.
func Open(filePath string) (*SheetParser, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		f.Close()
		return nil, fmt.Errorf("failed to open input: workbook %s has no sheets", filePath)
	}

	rows, err := f.Rows(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	return &SheetParser{
		file:  f,
		rows:  rows,
		sheet: sheetName,
	}, nil
}

// Sheet returns the name of the sheet being read.
func (p *SheetParser) Sheet() string {
	return p.sheet
}

// Next advances to the next spreadsheet row.
func (p *SheetParser) Next() bool {
	if p.err != nil || p.rows == nil || !p.rows.Next() {
		return false
	}

	cells, err := p.rows.Columns()
	if err != nil {
		p.err = fmt.Errorf("error reading row %d of sheet %q: %w", p.line+1, p.sheet, err)
		return false
	}

	p.line++
	p.row = types.Row{
		Line:   p.line,
		Fields: trimCells(cells),
	}

	return true
}

// Row returns the current row.
func (p *SheetParser) Row() types.Row {
	return p.row
}

// Err returns any error that occurred while reading.
func (p *SheetParser) Err() error {
	if p.err != nil {
		return p.err
	}
	if p.rows == nil {
		return nil
	}
	return p.rows.Error()
}

// Close releases the row iterator and the workbook.
func (p *SheetParser) Close() error {
	if p.rows != nil {
		p.rows.Close()
		p.rows = nil
	}
	if p.file == nil {
		return nil
	}
	err := p.file.Close()
	p.file = nil
	return err
}

// trimCells applies the same leading-whitespace rule as the text format.
func trimCells(cells []string) []string {
	if len(cells) == 0 {
		return nil
	}
	fields := make([]string, len(cells))
	for i, cell := range cells {
		fields[i] = strings.TrimLeft(cell, " \t")
	}
	return fields
}
