// Package output handles formatting and displaying CLI output.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
)

// Format represents the output format type.
type Format int

const (
	FormatHuman Format = iota
	FormatJSON
	FormatRaw
)

// Response is the envelope for machine-readable output.
type Response struct {
	OK     bool        `json:"ok"`
	Result interface{} `json:"result,omitempty"`
	Error  *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo describes a failed run in JSON mode.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Printer handles output formatting.
type Printer struct {
	writer io.Writer
	format Format
	quiet  bool
}

// New creates a new output printer writing to stdout.
func New(format Format, quiet bool) *Printer {
	return &Printer{
		writer: os.Stdout,
		format: format,
		quiet:  quiet,
	}
}

// NewWriter creates a printer writing to w.
func NewWriter(w io.Writer, format Format, quiet bool) *Printer {
	return &Printer{writer: w, format: format, quiet: quiet}
}

// Writer exposes the underlying writer for renderers that format directly.
func (p *Printer) Writer() io.Writer {
	return p.writer
}

// Success prints a success response.
func (p *Printer) Success(result interface{}) error {
	switch p.format {
	case FormatJSON:
		return p.printJSON(Response{OK: true, Result: result})
	case FormatRaw:
		fmt.Fprintf(p.writer, "%v\n", result)
		return nil
	default:
		if !p.quiet {
			fmt.Fprintf(p.writer, "%v\n", result)
		}
		return nil
	}
}

// Error prints an error response.
func (p *Printer) Error(err error) error {
	switch p.format {
	case FormatJSON:
		return p.printJSON(Response{
			OK: false,
			Error: &ErrorInfo{
				Code:    "error",
				Message: err.Error(),
			},
		})
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return nil
	}
}

// Printf prints formatted data.
func (p *Printer) Printf(format string, args ...interface{}) {
	if p.quiet && p.format != FormatJSON {
		return
	}
	fmt.Fprintf(p.writer, format, args...)
}

// Println prints a line of arbitrary data.
func (p *Printer) Println(args ...interface{}) {
	if p.quiet && p.format != FormatJSON {
		return
	}
	fmt.Fprintln(p.writer, args...)
}

// Table prints data in table format (only in human mode).
func (p *Printer) Table(headers []string, rows [][]string) error {
	if p.format != FormatHuman {
		return nil
	}

	if len(headers) == 0 || len(rows) == 0 {
		return nil
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}

	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	// Print header
	for i, h := range headers {
		fmt.Fprintf(p.writer, "%-*s  ", widths[i], h)
	}
	fmt.Fprintln(p.writer)

	// Print separator
	for i := range headers {
		for j := 0; j < widths[i]; j++ {
			fmt.Fprint(p.writer, "-")
		}
		fmt.Fprint(p.writer, "  ")
	}
	fmt.Fprintln(p.writer)

	// Print rows
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				fmt.Fprintf(p.writer, "%-*s  ", widths[i], cell)
			}
		}
		fmt.Fprintln(p.writer)
	}

	return nil
}

// printJSON marshals and prints JSON output.
func (p *Printer) printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	fmt.Fprintf(p.writer, "%s\n", data)
	return nil
}

// IsJSON returns true if the output format is JSON.
func (p *Printer) IsJSON() bool {
	return p.format == FormatJSON
}

// IsQuiet returns true if quiet mode is enabled.
func (p *Printer) IsQuiet() bool {
	return p.quiet
}
