// =============================================================================
// IPFIX Element XML Maker - Converter Module
// =============================================================================
//
// This module contains the conversion loop. It pulls rows from an element
// source, turns each into an element block and pushes it to the XML writer,
// one row at a time.
//
// STATE MACHINE:
//   reading --(row with < 4 fields, policy "stop")--> stopped
//   reading --(input exhausted)--------------------> stopped
//   In "stopped" no further rows are read and the closing root tag is
//   written. With policy "skip" a short row is logged and dropped and the
//   converter stays in "reading".
//
// =============================================================================

package converter

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ipfixcol/xml-maker/internal/config"
	"github.com/ipfixcol/xml-maker/internal/csvparser"
	"github.com/ipfixcol/xml-maker/internal/types"
	"github.com/ipfixcol/xml-maker/internal/validation"
	"github.com/ipfixcol/xml-maker/internal/xlsxparser"
	"github.com/ipfixcol/xml-maker/internal/xmlwriter"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of one conversion run.
type Result struct {
	// RunID identifies the run in log output.
	RunID string

	// RowsRead is the number of input rows consumed, including the row
	// that stopped processing.
	RowsRead int

	// ElementsWritten is the number of element blocks in the output.
	ElementsWritten int

	// RowsSkipped is the number of short rows dropped under policy "skip".
	RowsSkipped int

	// Stopped is true if a short row ended processing early.
	Stopped bool

	// StopLine is the line of the row that ended processing, 0 if none did.
	StopLine int

	// Malformed lists every short row seen.
	Malformed []*validation.RowError

	// ProcessingTime is the time taken by Run.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

type state int

const (
	stateReading state = iota
	stateStopped
)

// Converter moves elements from a RowSource to an xmlwriter.Writer.
type Converter struct {
	source      types.RowSource
	writer      *xmlwriter.Writer
	onMalformed string
	runID       string
	logger      logrus.FieldLogger
}

// New creates a Converter. onMalformed is config.OnMalformedStop or
// config.OnMalformedSkip; anything else behaves like stop.
//
// The converter does not own source or writer; the caller closes the source.
// Run closes the writer, which writes the closing root tag.
func New(source types.RowSource, writer *xmlwriter.Writer, onMalformed string, logger logrus.FieldLogger) *Converter {
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	runID := uuid.New().String()

	return &Converter{
		source:      source,
		writer:      writer,
		onMalformed: onMalformed,
		runID:       runID,
		logger:      logger.WithField("run", runID),
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run converts every row of the source.
//
// RETURNS:
//   - A Result with the run statistics.
//   - An error if reading the source or writing the document fails. Short
//     rows are not errors.
func (c *Converter) Run() (Result, error) {
	start := time.Now()
	result := Result{RunID: c.runID}

	if err := c.writer.WriteHeader(); err != nil {
		return result, err
	}

	current := stateReading
	for current == stateReading && c.source.Next() {
		row := c.source.Row()
		result.RowsRead++

		elem, err := validation.CheckRow(row)
		if err != nil {
			var rowErr *validation.RowError
			if !errors.As(err, &rowErr) {
				return result, err
			}
			result.Malformed = append(result.Malformed, rowErr)

			log := c.logger.WithFields(logrus.Fields{
				"line":   row.Line,
				"fields": len(row.Fields),
			})

			if c.onMalformed == config.OnMalformedSkip {
				result.RowsSkipped++
				log.Warn("Skipping malformed row")
				continue
			}

			log.Warn("Malformed row, ignoring the rest of the input")
			result.Stopped = true
			result.StopLine = row.Line
			current = stateStopped
			continue
		}

		if err := c.writer.WriteElement(elem); err != nil {
			return result, fmt.Errorf("line %d: %w", row.Line, err)
		}
		result.ElementsWritten++

		c.logger.WithFields(logrus.Fields{
			"line":       row.Line,
			"enterprise": elem.Enterprise,
			"id":         elem.ID,
		}).Debugf("Wrote element %s", elem.Name)
	}

	if err := c.source.Err(); err != nil {
		return result, fmt.Errorf("failed to read input: %w", err)
	}

	if err := c.writer.Close(); err != nil {
		return result, err
	}

	result.ProcessingTime = time.Since(start)
	return result, nil
}

// =============================================================================
// SOURCE SELECTION
// =============================================================================

// OpenSource opens the element definitions at path in the given format
// (config.FormatCSV or config.FormatXLSX). The caller must Close the source.
func OpenSource(path, format string) (types.RowSource, error) {
	switch format {
	case config.FormatCSV:
		parser, err := csvparser.Open(path)
		if err != nil {
			return nil, err
		}
		return parser, nil
	case config.FormatXLSX:
		parser, err := xlsxparser.Open(path)
		if err != nil {
			return nil, err
		}
		return parser, nil
	default:
		return nil, fmt.Errorf("unsupported input format %q", format)
	}
}
