package validation

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/ipfixcol/xml-maker/internal/types"
)

// document mirrors the /ipfix-elements/element layout read by the collector.
type document struct {
	XMLName  xml.Name          `xml:"ipfix-elements"`
	Elements []documentElement `xml:"element"`
}

type documentElement struct {
	Enterprise string `xml:"enterprise"`
	ID         string `xml:"id"`
	Name       string `xml:"name"`
	DataType   string `xml:"dataType"`
	Semantic   string `xml:"semantic"`
}

// ReadDocument decodes an ipfix-elements document. Values are trimmed of the
// padding the writer puts around them; an empty semantic comes back as nil.
// It fails if the document is not well-formed or its root is not
// <ipfix-elements>.
func ReadDocument(r io.Reader) ([]types.Element, error) {
	var doc document
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	if err := checkTrailing(dec); err != nil {
		return nil, err
	}

	elements := make([]types.Element, 0, len(doc.Elements))
	for _, de := range doc.Elements {
		elem := types.Element{
			Enterprise: strings.TrimSpace(de.Enterprise),
			ID:         strings.TrimSpace(de.ID),
			Name:       strings.TrimSpace(de.Name),
			DataType:   strings.TrimSpace(de.DataType),
		}
		if semantic := strings.TrimSpace(de.Semantic); semantic != "" {
			elem.Semantic = &semantic
		}
		elements = append(elements, elem)
	}

	return elements, nil
}

// checkTrailing reads past the root element. Only whitespace, comments and
// processing instructions may follow it.
func checkTrailing(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to decode document: %w", err)
		}

		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst:
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return fmt.Errorf("failed to decode document: content after root element: %q", bytes.TrimSpace(t))
			}
		case xml.StartElement:
			return fmt.Errorf("failed to decode document: second root element <%s>", t.Name.Local)
		default:
			return fmt.Errorf("failed to decode document: unexpected %T after root element", t)
		}
	}
}
