// =============================================================================
// IPFIX Element XML Maker - CSV Parser Module
// =============================================================================
//
// This module reads element definitions from comma-separated text. Input is
// consumed one physical line at a time and every line is split on its own:
//   - Whitespace following a delimiter is dropped (skip-initial-space)
//   - Quoted fields are honoured within a line but never span lines
//   - An empty line has no fields at all
//   - There is no header row; every line is data
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ipfixcol/xml-maker/internal/types"
)

// =============================================================================
// LINE SPLITTING
// =============================================================================

// SplitLine splits a single line into fields. The trailing line terminator is
// removed first. An empty line, or a line the csv reader rejects, yields no
// fields.
//
// EXAMPLE:
//
//	SplitLine("0, 1, octetDeltaCount, unsigned64, deltaCounter\n")
//	=> ["0" "1" "octetDeltaCount" "unsigned64" "deltaCounter"]
func SplitLine(line string) []string {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return nil
	}

	reader := csv.NewReader(strings.NewReader(line))
	configureReader(reader)

	fields, err := reader.Read()
	if err != nil {
		return nil
	}

	return fields
}

// configureReader sets up a csv.Reader for a single element line.
func configureReader(reader *csv.Reader) {
	reader.Comma = ','

	// Rows are not required to agree on a column count; the converter
	// decides what to do with short rows.
	reader.FieldsPerRecord = -1

	// A quote followed by text other than a comma stays literal and keeps
	// the field open to the end of the line.
	reader.LazyQuotes = true

	// Skip-initial-space semantics: ", foo" yields "foo".
	reader.TrimLeadingSpace = true
}

// =============================================================================
// STREAMING PARSER
// =============================================================================

// StreamingParser yields one row per input line without loading the whole
// input into memory. It implements types.RowSource.
//
// USAGE:
//
//	parser, err := csvparser.Open("elements2.txt")
//	if err != nil {
//	    return err
//	}
//	defer parser.Close()
//
//	for parser.Next() {
//	    row := parser.Row()
//	    // ...
//	}
//
//	if err := parser.Err(); err != nil {
//	    return err
//	}
type StreamingParser struct {
	closer io.Closer
	reader *bufio.Reader
	row    types.Row
	line   int
	done   bool
	err    error
}

// Open opens the file at filePath for reading. The returned parser owns the
// file handle and releases it on Close.
//
// RETURNS:
//   - A pointer to the StreamingParser.
//   - An error if the file cannot be opened (missing file, permissions).
func Open(filePath string) (*StreamingParser, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}

	parser := NewStreamingParser(file)
	parser.closer = file
	return parser, nil
}

// NewStreamingParser reads rows from r. Close does not close r.
func NewStreamingParser(r io.Reader) *StreamingParser {
	return &StreamingParser{
		reader: bufio.NewReader(r),
	}
}

// Next advances to the next line. Returns false when there are no more lines
// or a read error occurred.
func (p *StreamingParser) Next() bool {
	if p.done || p.err != nil {
		return false
	}

	text, err := p.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		p.err = fmt.Errorf("error reading line %d: %w", p.line+1, err)
		return false
	}
	if err == io.EOF {
		p.done = true
		if text == "" {
			return false
		}
	}

	p.line++
	p.row = types.Row{
		Line:   p.line,
		Fields: SplitLine(text),
	}

	return true
}

// Row returns the current row.
func (p *StreamingParser) Row() types.Row {
	return p.row
}

// Err returns any error that occurred while reading.
func (p *StreamingParser) Err() error {
	return p.err
}

// Close releases the underlying file, if the parser opened one.
func (p *StreamingParser) Close() error {
	if p.closer == nil {
		return nil
	}
	err := p.closer.Close()
	p.closer = nil
	return err
}
