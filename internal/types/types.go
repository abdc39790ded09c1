// =============================================================================
// IPFIX Element XML Maker - Shared Types
// =============================================================================
//
// This package contains the types shared by the element sources (csvparser,
// xlsxparser), the converter and the xmlwriter, kept here to avoid import
// cycles between them.
//
// =============================================================================

package types

import "errors"

// MinFields is the number of fields a row needs to describe an element:
// enterprise, id, name and dataType. The semantic is read when present.
const MinFields = 4

// ErrMalformedRow is returned by element sources for a row that has fewer
// than MinFields fields.
var ErrMalformedRow = errors.New("malformed row")

// =============================================================================
// ELEMENT RECORD
// =============================================================================

// Element is one IPFIX information element as described by a single input
// row. All values are kept verbatim; nothing is parsed as a number.
type Element struct {
	// Enterprise is the enterprise number (0 for IANA elements).
	Enterprise string

	// ID is the element identifier within the enterprise.
	ID string

	// Name is the element name, e.g. "octetDeltaCount".
	Name string

	// DataType is the abstract data type, e.g. "unsigned64".
	DataType string

	// Semantic is the optional data type semantic. Nil when the row had no
	// fifth field.
	Semantic *string
}

// SemanticOrEmpty returns the semantic, or "" when the row carried none.
func (e Element) SemanticOrEmpty() string {
	if e.Semantic == nil {
		return ""
	}
	return *e.Semantic
}

// FromFields builds an Element from positional fields. Fields past the fifth
// are ignored.
func FromFields(fields []string) (Element, error) {
	if len(fields) < MinFields {
		return Element{}, ErrMalformedRow
	}

	elem := Element{
		Enterprise: fields[0],
		ID:         fields[1],
		Name:       fields[2],
		DataType:   fields[3],
	}
	if len(fields) > MinFields {
		semantic := fields[4]
		elem.Semantic = &semantic
	}

	return elem, nil
}

// =============================================================================
// ROW SOURCE
// =============================================================================

// Row is one input row together with its position in the source.
type Row struct {
	// Line is the 1-based line (or spreadsheet row) number.
	Line int

	// Fields are the split, left-trimmed field values.
	Fields []string
}

// RowSource yields input rows in order. Next returns false once the input is
// exhausted or a read error occurred; Err reports that error.
type RowSource interface {
	Next() bool
	Row() Row
	Err() error
	Close() error
}
