// Package renderer emits analysis reports to the console or to JSON/CSV
// output files.
package renderer

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/lechnerc77/github-pr-analytics/internal/domain"
)

// Format is a user-selectable output mode.
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
	FormatCSV     Format = "csv"
)

// ParseFormat maps user input to a Format. Empty input selects the default;
// anything unrecognized falls back to console output with a logged notice
// instead of failing.
func ParseFormat(input string, logger *log.Logger) Format {
	switch Format(strings.ToLower(strings.TrimSpace(input))) {
	case FormatConsole, "":
		return FormatConsole
	case FormatJSON:
		return FormatJSON
	case FormatCSV:
		return FormatCSV
	default:
		logger.Printf("Unknown output format %q, falling back to %s.\n", input, FormatConsole)
		return FormatConsole
	}
}

// Renderer writes the collected repository reports in one of the supported
// output formats. Console output goes to out; the JSON and CSV formats write
// to their configured file paths.
type Renderer struct {
	out      io.Writer
	jsonPath string
	csvPath  string
	logger   *log.Logger
}

// NewRenderer creates a new Renderer instance.
func NewRenderer(out io.Writer, jsonPath, csvPath string, logger *log.Logger) *Renderer {
	return &Renderer{
		out:      out,
		jsonPath: jsonPath,
		csvPath:  csvPath,
		logger:   logger,
	}
}

// Render emits the reports in the requested format.
func (r *Renderer) Render(reports []*domain.RepositoryReport, format Format) error {
	switch format {
	case FormatJSON:
		return r.renderToFile(r.jsonPath, reports, writeJSON)
	case FormatCSV:
		return r.renderToFile(r.csvPath, reports, writeCSV)
	default:
		return writeConsole(r.out, reports)
	}
}

func (r *Renderer) renderToFile(path string, reports []*domain.RepositoryReport, write func(io.Writer, []*domain.RepositoryReport) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	defer file.Close()

	if err := write(file, reports); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	r.logger.Printf("Results written to %s.\n", path)
	return nil
}
