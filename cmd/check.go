// =============================================================================
// IPFIX Element XML Maker - Check Command
// =============================================================================
//
// The check command decodes an ipfix-elements document the way the collector
// loads it (/ipfix-elements/element) and reports how many elements it holds.
// It fails when the document is not well-formed, which is what happens to
// unescaped output whose values contain &, < or >.
//
// COMMAND USAGE:
//   xml-maker check [file] [--list]
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ipfixcol/xml-maker/internal/types"
	"github.com/ipfixcol/xml-maker/internal/validation"
)

// listElements prints every decoded element.
var listElements bool

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Decode an ipfix-elements document and count its elements",
	Long: `Decode an ipfix-elements document, from a file or from standard input,
and print the number of elements it contains. Exits non-zero if the document
is not well-formed XML or its root element is not <ipfix-elements>.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = cmd.InOrStdin()
		name := "<stdin>"

		if len(args) == 1 {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open document: %w", err)
			}
			defer file.Close()
			in = file
			name = args[0]
		}

		return runCheck(in, name, cmd.OutOrStdout(), listElements)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&listElements, "list", false,
		"Print every element as a table")
}

// runCheck decodes the document read from in and writes a report to out.
func runCheck(in io.Reader, name string, out io.Writer, list bool) error {
	elements, err := validation.ReadDocument(in)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	if list {
		printElements(out, elements)
	}

	fmt.Fprintf(out, "%s: %d element(s)\n", name, len(elements))
	return nil
}

func printElements(out io.Writer, elements []types.Element) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ENTERPRISE\tID\tNAME\tDATA TYPE\tSEMANTIC")
	for _, e := range elements {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.Enterprise, e.ID, e.Name, e.DataType, e.SemanticOrEmpty())
	}
	tw.Flush()
}
