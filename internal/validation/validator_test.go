package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipfixcol/xml-maker/internal/types"
)

func TestCheckRow(t *testing.T) {
	elem, err := CheckRow(types.Row{
		Line:   1,
		Fields: []string{"0", "1", "octetDeltaCount", "unsigned64", "deltaCounter"},
	})
	require.NoError(t, err)
	assert.Equal(t, "octetDeltaCount", elem.Name)
	assert.Equal(t, "deltaCounter", elem.SemanticOrEmpty())

	elem, err = CheckRow(types.Row{
		Line:   2,
		Fields: []string{"0", "8", "sourceIPv4Address", "ipv4Address"},
	})
	require.NoError(t, err)
	assert.Nil(t, elem.Semantic)
}

func TestCheckRowMalformed(t *testing.T) {
	tests := []struct {
		name    string
		row     types.Row
		wantMsg string
	}{
		{
			name:    "three fields",
			row:     types.Row{Line: 7, Fields: []string{"0", "9", "name"}},
			wantMsg: "line 7: 3 field(s), need at least 4 (row: '0,9,name')",
		},
		{
			name:    "empty line",
			row:     types.Row{Line: 3},
			wantMsg: "line 3: 0 field(s), need at least 4 (row: '')",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CheckRow(tt.row)
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrMalformedRow))
			assert.EqualError(t, err, tt.wantMsg)

			var rowErr *RowError
			require.True(t, errors.As(err, &rowErr))
			assert.Equal(t, tt.row.Line, rowErr.Line)
			assert.Equal(t, len(tt.row.Fields), rowErr.FieldCount)
		})
	}
}
