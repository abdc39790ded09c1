// =============================================================================
// IPFIX Element XML Maker - Main Entry Point
// =============================================================================
//
// xml-maker turns a list of IPFIX information element definitions into the
// ipfix-elements XML document read by the collector.
//
// USAGE:
//   xml-maker           - Convert elements2.txt to XML on standard output
//   xml-maker check     - Decode a generated document and count its elements
//   xml-maker version   - Display the application version
//
// ARCHITECTURE:
//   - cmd/                 : CLI command definitions (Cobra)
//   - internal/config      : YAML configuration and defaults
//   - internal/csvparser   : line-oriented CSV element source
//   - internal/xlsxparser  : XLSX element source
//   - internal/validation  : row field-count check, document decoding
//   - internal/converter   : the conversion loop
//   - internal/xmlwriter   : streaming document writer
//   - pkg/utils            : output file naming and creation
//
// =============================================================================

package main

import (
	"github.com/ipfixcol/xml-maker/cmd"
)

func main() {
	cmd.Execute()
}
