package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Color scheme for shelly
var (
	Success = color.New(color.FgGreen)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow)
	Info    = color.New(color.FgCyan)
	Muted   = color.New(color.Faint)
	Bold    = color.New(color.Bold)
)

// Status markers
const (
	checkMark = "✓"
	crossMark = "✗"
	arrow     = "→"
	bang      = "!"
)

// InitColors applies the logging.color setting ("auto", "always", "never")
func InitColors(mode string) {
	switch mode {
	case "never":
		color.NoColor = true
	case "always":
		color.NoColor = false
	}

	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		color.NoColor = true
	}
}

// Printer writes line-oriented status messages. Out carries progress, Err carries
// warnings and errors.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

// NewPrinter creates a Printer over the given writers
func NewPrinter(out, errOut io.Writer) *Printer {
	return &Printer{Out: out, Err: errOut}
}

// NewStdPrinter creates a Printer over os.Stdout and os.Stderr
func NewStdPrinter() *Printer {
	return NewPrinter(os.Stdout, os.Stderr)
}

// Info prints a progress message
func (p *Printer) Info(format string, args ...interface{}) {
	Info.Fprintf(p.Out, "%s %s\n", arrow, fmt.Sprintf(format, args...))
}

// Success prints a success message
func (p *Printer) Success(format string, args ...interface{}) {
	Success.Fprintf(p.Out, "%s %s\n", checkMark, fmt.Sprintf(format, args...))
}

// Notice prints a diagnostic that ends the run without failing it
func (p *Printer) Notice(format string, args ...interface{}) {
	Warning.Fprintf(p.Out, "%s %s\n", bang, fmt.Sprintf(format, args...))
}

// Warning prints a warning message
func (p *Printer) Warning(format string, args ...interface{}) {
	Warning.Fprintf(p.Err, "Warning: %s\n", fmt.Sprintf(format, args...))
}

// Error prints an error message
func (p *Printer) Error(format string, args ...interface{}) {
	Error.Fprintf(p.Err, "%s Error: %s\n", crossMark, fmt.Sprintf(format, args...))
}

// Hint prints a muted follow-up line
func (p *Printer) Hint(format string, args ...interface{}) {
	Muted.Fprintf(p.Out, "  %s\n", fmt.Sprintf(format, args...))
}

// DisableColors disables all color output
func DisableColors() {
	color.NoColor = true
}

// AreColorsEnabled returns whether colors are currently enabled
func AreColorsEnabled() bool {
	return !color.NoColor
}
