// =============================================================================
// IPFIX Element XML Maker - File Manager Utility
// =============================================================================
//
// This module resolves and creates the output destination when the document
// is not written to standard output.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// ExpandOutputPath expands the placeholders of an output path.
//
// PARAMETERS:
//   - pattern: The output path. Placeholders:
//     {uuid}      - A random UUID
//     {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//     {date}      - Current date (YYYYMMDD)
//     {time}      - Current time (HHMMSS)
//   - params: Additional placeholder values, e.g. {"input": "elements2"}.
//
// RETURNS:
//   - The expanded path. When pattern holds a placeholder and has no
//     extension, ".xml" is added; a literal path is used as given.
//
// EXAMPLE:
//
//	pattern: "out/{input}_{date}.xml"
//	params:  {"input": "elements2"}
//	output:  "out/elements2_20240115.xml"
func ExpandOutputPath(pattern string, params map[string]string) string {
	now := time.Now()

	replacements := map[string]string{
		"{timestamp}": now.Format("20060102_150405"),
		"{date}":      now.Format("20060102"),
		"{time}":      now.Format("150405"),
	}
	if strings.Contains(pattern, "{uuid}") {
		replacements["{uuid}"] = uuid.New().String()
	}
	for key, value := range params {
		replacements["{"+key+"}"] = value
	}

	result := pattern
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	if result != pattern && filepath.Ext(result) == "" {
		result += ".xml"
	}

	return result
}

// InputStem returns the base name of path without its extension, used for
// the {input} placeholder.
func InputStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// =============================================================================
// OUTPUT CREATION
// =============================================================================

// CreateOutput creates (or truncates) the file at path, creating missing
// parent directories first.
func CreateOutput(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return file, nil
}
