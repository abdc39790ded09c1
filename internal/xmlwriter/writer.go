// =============================================================================
// IPFIX Element XML Maker - XML Writer Module
// =============================================================================
//
// This module writes the ipfix-elements document. Output is streamed: the
// declaration and the root tag go out first, one block per element follows
// as elements arrive, and Close writes the closing root tag.
//
// XML STRUCTURE:
//
//   <?xml version="1.0" encoding="UTF-8"?>
//   <ipfix-elements>
//   	<element>
//   		<enterprise> 0 </enterprise>
//   		<id> 1 </id>
//   		<name> octetDeltaCount </name>
//   		<dataType> unsigned64 </dataType>
//   		<semantic> deltaCounter </semantic>
//   	</element>
//   </ipfix-elements>
//
// Every value is surrounded by a single space and, unless Escape is set,
// written exactly as read. Raw values containing &, < or > make the document
// ill-formed; that is the legacy output and is kept as the default.
//
// =============================================================================

package xmlwriter

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ipfixcol/xml-maker/internal/types"
)

// =============================================================================
// WRITER OPTIONS
// =============================================================================

// Options contains options for document generation.
type Options struct {
	// Indent is the string used for one level of indentation.
	// Default: "\t"
	Indent string

	// Escape replaces &, <, >, " and ' in values with entities.
	// Default: false
	Escape bool

	// XMLVersion is the XML version for the declaration.
	// Default: "1.0"
	XMLVersion string

	// Encoding is the encoding for the declaration.
	// Default: "UTF-8"
	Encoding string

	// RootElement is the name of the document element.
	// Default: "ipfix-elements"
	RootElement string

	// ElementTag is the name of the per-element block.
	// Default: "element"
	ElementTag string
}

// DefaultOptions returns the options that produce the legacy document.
func DefaultOptions() Options {
	return Options{
		Indent:      "\t",
		Escape:      false,
		XMLVersion:  "1.0",
		Encoding:    "UTF-8",
		RootElement: "ipfix-elements",
		ElementTag:  "element",
	}
}

// =============================================================================
// WRITER
// =============================================================================

// Writer streams an ipfix-elements document to an io.Writer. It is not safe
// for concurrent use.
type Writer struct {
	out     *bufio.Writer
	opts    Options
	started bool
	closed  bool
	count   int
	err     error
}

// New creates a Writer. Nothing is written until WriteHeader.
func New(w io.Writer, opts Options) *Writer {
	return &Writer{
		out:  bufio.NewWriter(w),
		opts: opts,
	}
}

// WriteHeader writes the XML declaration and the opening root tag.
func (w *Writer) WriteHeader() error {
	if w.started {
		return nil
	}
	w.started = true

	w.printf("<?xml version=\"%s\" encoding=\"%s\"?>\n", w.opts.XMLVersion, w.opts.Encoding)
	w.printf("<%s>\n", w.opts.RootElement)

	return w.err
}

// WriteElement writes one element block. The semantic tag is always present
// and is empty when the element has no semantic.
func (w *Writer) WriteElement(elem types.Element) error {
	if w.closed {
		return fmt.Errorf("write element: writer is closed")
	}
	if err := w.WriteHeader(); err != nil {
		return err
	}

	indent := w.opts.Indent
	w.printf("%s<%s>\n", indent, w.opts.ElementTag)
	w.writeField("enterprise", elem.Enterprise)
	w.writeField("id", elem.ID)
	w.writeField("name", elem.Name)
	w.writeField("dataType", elem.DataType)
	w.writeField("semantic", elem.SemanticOrEmpty())
	w.printf("%s</%s>\n", indent, w.opts.ElementTag)

	if w.err == nil {
		w.count++
	}
	return w.err
}

// Count returns the number of element blocks written.
func (w *Writer) Count() int {
	return w.count
}

// Close writes the closing root tag and flushes buffered output. The
// underlying io.Writer is not closed.
func (w *Writer) Close() error {
	if w.closed {
		return w.err
	}
	if err := w.WriteHeader(); err != nil {
		return err
	}
	w.closed = true

	w.printf("</%s>\n", w.opts.RootElement)

	if err := w.out.Flush(); err != nil && w.err == nil {
		w.err = fmt.Errorf("failed to flush output: %w", err)
	}
	return w.err
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// writeField writes a two-level indented "<tag> value </tag>" line.
func (w *Writer) writeField(tag, value string) {
	if w.opts.Escape {
		value = escapeXML(value)
	}
	w.printf("%s%s<%s> %s </%s>\n", w.opts.Indent, w.opts.Indent, tag, value, tag)
}

// printf writes formatted output, keeping the first error.
func (w *Writer) printf(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	if _, err := fmt.Fprintf(w.out, format, args...); err != nil {
		w.err = fmt.Errorf("failed to write output: %w", err)
	}
}

// escapeXML escapes special characters for XML.
func escapeXML(s string) string {
	if !strings.ContainsAny(s, "&<>\"'") {
		return s
	}

	var builder strings.Builder
	builder.Grow(len(s) + 8)

	for _, r := range s {
		switch r {
		case '&':
			builder.WriteString("&amp;")
		case '<':
			builder.WriteString("&lt;")
		case '>':
			builder.WriteString("&gt;")
		case '"':
			builder.WriteString("&quot;")
		case '\'':
			builder.WriteString("&apos;")
		default:
			builder.WriteRune(r)
		}
	}

	return builder.String()
}
