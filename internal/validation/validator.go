// =============================================================================
// IPFIX Element XML Maker - Row Checks
// =============================================================================
//
// This module holds the only structural rule applied to input rows: a row
// must carry at least the enterprise number, element ID, name and data type.
// Values themselves are opaque. Nothing here checks IPFIX semantics (known
// data types, ID ranges, duplicates).
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/ipfixcol/xml-maker/internal/types"
)

// =============================================================================
// ROW ERROR
// =============================================================================

// RowError describes a row that cannot be turned into an element.
type RowError struct {
	// Line is the 1-based line (or spreadsheet row) number.
	Line int

	// FieldCount is the number of fields found on the row.
	FieldCount int

	// Raw is the row joined back together, for log output.
	Raw string
}

// Error implements the error interface.
func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %d field(s), need at least %d (row: '%s')",
		e.Line, e.FieldCount, types.MinFields, e.Raw)
}

// Unwrap lets callers match the error with errors.Is(err, types.ErrMalformedRow).
func (e *RowError) Unwrap() error {
	return types.ErrMalformedRow
}

// =============================================================================
// ROW VALIDATION
// =============================================================================

// CheckRow turns a row into an element.
//
// RETURNS:
//   - The element built from the first four or five fields.
//   - A *RowError if the row has fewer than four fields.
func CheckRow(row types.Row) (types.Element, error) {
	elem, err := types.FromFields(row.Fields)
	if err != nil {
		return types.Element{}, &RowError{
			Line:       row.Line,
			FieldCount: len(row.Fields),
			Raw:        strings.Join(row.Fields, ","),
		}
	}
	return elem, nil
}
