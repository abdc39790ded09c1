package csvparser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "five fields with spaces",
			line: "0, 1, octetDeltaCount, unsigned64, deltaCounter\n",
			want: []string{"0", "1", "octetDeltaCount", "unsigned64", "deltaCounter"},
		},
		{
			name: "four fields without newline",
			line: "0,8,sourceIPv4Address,ipv4Address",
			want: []string{"0", "8", "sourceIPv4Address", "ipv4Address"},
		},
		{
			name: "crlf terminator",
			line: "0, 4, protocolIdentifier, unsigned8, identifier\r\n",
			want: []string{"0", "4", "protocolIdentifier", "unsigned8", "identifier"},
		},
		{
			name: "quoted field keeps comma",
			line: `8057, 1, "name, with comma", string` + "\n",
			want: []string{"8057", "1", "name, with comma", "string"},
		},
		{
			name: "trailing spaces kept",
			line: "0 , 1 ,x,y\n",
			want: []string{"0 ", "1 ", "x", "y"},
		},
		{
			name: "empty trailing field",
			line: "0, 1, x, y,\n",
			want: []string{"0", "1", "x", "y", ""},
		},
		{
			name: "short line",
			line: "0, 1\n",
			want: []string{"0", "1"},
		},
		{
			name: "text after closing quote keeps the comma",
			line: `0, 1, "foo" bar, x` + "\n",
			want: []string{"0", "1", "foo\" bar, x"},
		},
		{name: "empty line", line: "\n", want: nil},
		{name: "empty string", line: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLine(tt.line))
		})
	}
}

func TestStreamingParser(t *testing.T) {
	input := "0, 1, octetDeltaCount, unsigned64, deltaCounter\n" +
		"\n" +
		"0, 2, packetDeltaCount, unsigned64"

	parser := NewStreamingParser(strings.NewReader(input))
	defer parser.Close()

	require.True(t, parser.Next())
	row := parser.Row()
	assert.Equal(t, 1, row.Line)
	assert.Len(t, row.Fields, 5)

	require.True(t, parser.Next())
	row = parser.Row()
	assert.Equal(t, 2, row.Line)
	assert.Empty(t, row.Fields)

	require.True(t, parser.Next())
	row = parser.Row()
	assert.Equal(t, 3, row.Line)
	assert.Equal(t, []string{"0", "2", "packetDeltaCount", "unsigned64"}, row.Fields)

	assert.False(t, parser.Next())
	assert.False(t, parser.Next())
	assert.NoError(t, parser.Err())
}

func TestStreamingParserEmptyInput(t *testing.T) {
	parser := NewStreamingParser(strings.NewReader(""))
	assert.False(t, parser.Next())
	assert.NoError(t, parser.Err())
	assert.NoError(t, parser.Close())
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(filepath.Join(dir, "elements2.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(dir, "elements.txt")
	require.NoError(t, os.WriteFile(path, []byte("0, 1, octetDeltaCount, unsigned64\n"), 0644))

	parser, err := Open(path)
	require.NoError(t, err)
	require.True(t, parser.Next())
	assert.Equal(t, "octetDeltaCount", parser.Row().Fields[2])
	assert.False(t, parser.Next())
	assert.NoError(t, parser.Close())
	assert.NoError(t, parser.Close())
}
