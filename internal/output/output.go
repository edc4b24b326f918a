// Package output handles CLI output formatting including verbose mode and
// error-list reporting.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/esdraskololo/File-Organizer-Tool/internal/locale"
)

// maxListedErrors caps how many errors are printed before summarizing.
const maxListedErrors = 5

// Config holds output configuration.
type Config struct {
	Verbose   bool      // Enable verbose output
	Writer    io.Writer // Output destination (default: os.Stdout)
	ErrWriter io.Writer // Error output destination (default: os.Stderr)
	IsTTY     bool      // Whether output is a terminal
}

// Output handles formatted output with verbose support.
type Output struct {
	config Config
}

// New creates a new Output instance with the given configuration.
func New(config Config) *Output {
	if config.Writer == nil {
		config.Writer = os.Stdout
	}
	if config.ErrWriter == nil {
		config.ErrWriter = os.Stderr
	}
	return &Output{config: config}
}

// DefaultConfig returns a Config with sensible defaults and TTY detection.
func DefaultConfig() Config {
	return Config{
		Verbose:   false,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		IsTTY:     term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// Verbose prints a message only when verbose mode is enabled.
func (o *Output) Verbose(format string, args ...interface{}) {
	if !o.config.Verbose {
		return
	}
	o.write(o.config.Writer, format, args...)
}

// Info prints an informational message (always shown).
func (o *Output) Info(format string, args ...interface{}) {
	o.write(o.config.Writer, format, args...)
}

// Error prints an error message to stderr.
func (o *Output) Error(format string, args ...interface{}) {
	o.write(o.config.ErrWriter, format, args...)
}

// PrintErrors reports a list of operation errors, listing the first few and
// summarizing the rest, using the localized header strings.
func (o *Output) PrintErrors(loc *locale.Manager, errs []string) {
	if len(errs) == 0 {
		return
	}
	o.Error("%s", loc.T("errors_header", locale.String("count", fmt.Sprint(len(errs)))))
	for i, msg := range errs {
		if i == maxListedErrors {
			remaining := len(errs) - maxListedErrors
			o.Error("  - %s", loc.T("more_errors", locale.String("count", fmt.Sprint(remaining))))
			break
		}
		o.Error("  - %s", msg)
	}
}

// IsVerbose returns whether verbose mode is enabled.
func (o *Output) IsVerbose() bool {
	return o.config.Verbose
}

// IsTTY returns whether the output is a terminal.
func (o *Output) IsTTY() bool {
	return o.config.IsTTY
}

func (o *Output) write(w io.Writer, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprint(w, msg)
}
