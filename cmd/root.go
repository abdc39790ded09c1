// =============================================================================
// IPFIX Element XML Maker - Root Command
// =============================================================================
//
// The root command is the converter itself: run without arguments it reads
// elements2.txt from the working directory and writes the ipfix-elements
// document to standard output.
//
// COBRA CLI STRUCTURE:
//   rootCmd (xml-maker)        convert element definitions to XML
//   ├── checkCmd (check)       decode a generated document
//   └── versionCmd (version)   print version information
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ipfixcol/xml-maker/internal/config"
	"github.com/ipfixcol/xml-maker/internal/converter"
	"github.com/ipfixcol/xml-maker/internal/xmlwriter"
	"github.com/ipfixcol/xml-maker/pkg/utils"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the optional configuration file.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

var (
	inputFile   string
	outputPath  string
	inputFormat string
	escape      bool
	onMalformed string
)

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd converts element definitions when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "xml-maker",
	Short: "Convert IPFIX element definitions to an ipfix-elements XML document",
	Long: `xml-maker reads IPFIX information element definitions, one per line as
"enterprise, id, name, dataType[, semantic]", and writes the equivalent
ipfix-elements XML document to standard output.

A line with fewer than four fields ends processing; the document is still
closed. Use --on-malformed=skip to ignore such lines instead.

Example Usage:
  xml-maker                              # elements2.txt -> stdout
  xml-maker -i elements.csv -o out.xml   # explicit input and output
  xml-maker -i elements.xlsx --escape    # workbook input, escaped values`,

	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, verbose)
		_, err = runConvert(cfg, cmd.OutOrStdout(), logger)
		return err
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to a YAML configuration file",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging on stderr",
	)

	rootCmd.Flags().StringVarP(&inputFile, "input", "i", config.DefaultInputFile,
		"Element definitions to read")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", config.StdoutOutput,
		"Output file, or - for stdout ({uuid}, {timestamp}, {date}, {input} are expanded; .xml is added to a pattern without extension)")
	rootCmd.Flags().StringVar(&inputFormat, "format", config.FormatAuto,
		"Input format: auto, csv or xlsx")
	rootCmd.Flags().BoolVar(&escape, "escape", false,
		"Escape XML special characters in element values")
	rootCmd.Flags().StringVar(&onMalformed, "on-malformed", config.OnMalformedStop,
		"What to do with a line of fewer than four fields: stop or skip")
}

// loadConfig reads the configuration file, if any, and applies the flags
// that were set explicitly on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.InputFile = inputFile
	}
	if flags.Changed("output") {
		cfg.Output = outputPath
	}
	if flags.Changed("format") {
		cfg.InputFormat = inputFormat
	}
	if flags.Changed("escape") {
		cfg.Escape = escape
	}
	if flags.Changed("on-malformed") {
		cfg.OnMalformed = onMalformed
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	return cfg, nil
}

// =============================================================================
// CONVERSION
// =============================================================================

// runConvert opens the input, then the output, and streams the document.
// The input is opened first so that a missing input produces no output at
// all.
func runConvert(cfg *config.Config, stdout io.Writer, logger logrus.FieldLogger) (converter.Result, error) {
	format := cfg.ResolveFormat()
	log := logger.WithFields(logrus.Fields{
		"input":  cfg.InputFile,
		"format": format,
	})

	source, err := converter.OpenSource(cfg.InputFile, format)
	if err != nil {
		return converter.Result{}, err
	}
	defer source.Close()

	out := stdout
	var file *os.File
	if cfg.Output != config.StdoutOutput {
		path := utils.ExpandOutputPath(cfg.Output, map[string]string{
			"input": utils.InputStem(cfg.InputFile),
		})
		file, err = utils.CreateOutput(path)
		if err != nil {
			return converter.Result{}, err
		}
		defer file.Close()

		out = file
		log = log.WithField("output", path)
	}

	opts := xmlwriter.DefaultOptions()
	opts.Escape = cfg.Escape

	conv := converter.New(source, xmlwriter.New(out, opts), cfg.OnMalformed, log)
	result, err := conv.Run()
	if err != nil {
		return result, fmt.Errorf("conversion failed: %w", err)
	}

	if file != nil {
		if err := file.Sync(); err != nil {
			return result, fmt.Errorf("failed to sync output file: %w", err)
		}
	}

	log.WithFields(logrus.Fields{
		"run":      result.RunID,
		"rows":     result.RowsRead,
		"elements": result.ElementsWritten,
		"skipped":  result.RowsSkipped,
		"stopped":  result.Stopped,
		"elapsed":  result.ProcessingTime,
	}).Info("Conversion complete")

	return result, nil
}
