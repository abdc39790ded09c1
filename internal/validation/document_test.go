package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `<?xml version="1.0" encoding="UTF-8"?>
<ipfix-elements>
	<element>
		<enterprise> 0 </enterprise>
		<id> 1 </id>
		<name> octetDeltaCount </name>
		<dataType> unsigned64 </dataType>
		<semantic> deltaCounter </semantic>
	</element>
	<element>
		<enterprise> 0 </enterprise>
		<id> 8 </id>
		<name> sourceIPv4Address </name>
		<dataType> ipv4Address </dataType>
		<semantic>  </semantic>
	</element>
</ipfix-elements>
`

func TestReadDocument(t *testing.T) {
	elements, err := ReadDocument(strings.NewReader(sampleDocument))
	require.NoError(t, err)
	require.Len(t, elements, 2)

	assert.Equal(t, "0", elements[0].Enterprise)
	assert.Equal(t, "1", elements[0].ID)
	assert.Equal(t, "octetDeltaCount", elements[0].Name)
	assert.Equal(t, "unsigned64", elements[0].DataType)
	require.NotNil(t, elements[0].Semantic)
	assert.Equal(t, "deltaCounter", *elements[0].Semantic)

	assert.Equal(t, "sourceIPv4Address", elements[1].Name)
	assert.Nil(t, elements[1].Semantic)
}

func TestReadDocumentEmpty(t *testing.T) {
	doc := "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<ipfix-elements>\n</ipfix-elements>\n"

	elements, err := ReadDocument(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Empty(t, elements)
}

func TestReadDocumentTrailingMisc(t *testing.T) {
	doc := sampleDocument + "<!-- generated -->\n\n"

	elements, err := ReadDocument(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Len(t, elements, 2)
}

func TestReadDocumentErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty input", doc: ""},
		{name: "wrong root", doc: "<elements><element/></elements>"},
		{name: "unescaped ampersand", doc: "<ipfix-elements><element><name> a&b </name></element></ipfix-elements>"},
		{name: "unclosed root", doc: "<ipfix-elements><element>"},
		{name: "text after root", doc: "<ipfix-elements></ipfix-elements>\ngarbage\n"},
		{name: "second root", doc: "<ipfix-elements></ipfix-elements><ipfix-elements></ipfix-elements>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadDocument(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}
