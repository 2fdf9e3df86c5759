package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// DiagnosticLevel represents the level of diagnostic output
type DiagnosticLevel int

const (
	DiagnosticSilent DiagnosticLevel = iota
	DiagnosticError
	DiagnosticWarn
	DiagnosticInfo
	DiagnosticVerbose
	DiagnosticDebug
)

// String returns the config name of the level
func (l DiagnosticLevel) String() string {
	switch l {
	case DiagnosticSilent:
		return "silent"
	case DiagnosticError:
		return "error"
	case DiagnosticWarn:
		return "warn"
	case DiagnosticInfo:
		return "info"
	case DiagnosticVerbose:
		return "verbose"
	case DiagnosticDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseDiagnosticLevel converts a config value like "verbose" into a level
func ParseDiagnosticLevel(value string) (DiagnosticLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "silent", "none":
		return DiagnosticSilent, true
	case "error":
		return DiagnosticError, true
	case "warn", "warning":
		return DiagnosticWarn, true
	case "info", "":
		return DiagnosticInfo, true
	case "verbose":
		return DiagnosticVerbose, true
	case "debug":
		return DiagnosticDebug, true
	}
	return DiagnosticInfo, false
}

// DiagnosticSystem provides structured, user-friendly output
type DiagnosticSystem struct {
	level     DiagnosticLevel
	useColors bool
	showTime  bool
	output    io.Writer
	errorOut  io.Writer
	mu        sync.Mutex
}

// NewDiagnosticSystem creates a new diagnostic system writing to stderr.
// Stdout is left to generated content so scaffolds can be piped.
func NewDiagnosticSystem(level DiagnosticLevel) *DiagnosticSystem {
	return &DiagnosticSystem{
		level:     level,
		useColors: shouldUseColors(),
		showTime:  level >= DiagnosticVerbose,
		output:    os.Stderr,
		errorOut:  os.Stderr,
	}
}

// NewSilentDiagnostics discards everything; used by library callers and tests
func NewSilentDiagnostics() *DiagnosticSystem {
	return NewDiagnosticSystem(DiagnosticSilent)
}

// SetOutput redirects regular and error output
func (d *DiagnosticSystem) SetOutput(output, errorOut io.Writer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.output = output
	d.errorOut = errorOut
}

// SetColors overrides terminal color detection
func (d *DiagnosticSystem) SetColors(enabled bool) {
	d.useColors = enabled
}

// SetShowTime toggles timestamps on levelled messages
func (d *DiagnosticSystem) SetShowTime(enabled bool) {
	d.showTime = enabled
}

// Error outputs error messages (always shown unless silent)
func (d *DiagnosticSystem) Error(format string, args ...interface{}) {
	if d.level >= DiagnosticError {
		d.writeMessage(d.errorOut, "ERROR", color.FgRed, format, args...)
	}
}

// Warn outputs warning messages
func (d *DiagnosticSystem) Warn(format string, args ...interface{}) {
	if d.level >= DiagnosticWarn {
		d.writeMessage(d.output, "WARN", color.FgYellow, format, args...)
	}
}

// Info outputs informational messages
func (d *DiagnosticSystem) Info(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		d.writeMessage(d.output, "INFO", color.FgBlue, format, args...)
	}
}

// Success outputs success messages with emphasis
func (d *DiagnosticSystem) Success(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		d.writeMessage(d.output, "SUCCESS", color.FgGreen, format, args...)
	}
}

// Verbose outputs detailed messages (verbose mode only)
func (d *DiagnosticSystem) Verbose(format string, args ...interface{}) {
	if d.level >= DiagnosticVerbose {
		d.writeMessage(d.output, "VERBOSE", color.FgHiBlack, format, args...)
	}
}

// Debug outputs debug messages (highest verbosity)
func (d *DiagnosticSystem) Debug(format string, args ...interface{}) {
	if d.level >= DiagnosticDebug {
		d.writeMessage(d.output, "DEBUG", color.FgMagenta, format, args...)
	}
}

// List outputs a bulleted list item
func (d *DiagnosticSystem) List(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		d.mu.Lock()
		defer d.mu.Unlock()
		fmt.Fprintf(d.output, "- %s\n", fmt.Sprintf(format, args...))
	}
}

// Summary outputs a final summary with statistics in the given key order
func (d *DiagnosticSystem) Summary(title string, keys []string, stats map[string]interface{}) {
	if d.level < DiagnosticInfo {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	fmt.Fprintf(d.output, "\n%s\n", title)
	for _, key := range keys {
		fmt.Fprintf(d.output, "   %s: %v\n", key, stats[key])
	}
}

// writeMessage is the internal message writing function
func (d *DiagnosticSystem) writeMessage(writer io.Writer, level string, attr color.Attribute, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	var output strings.Builder
	if d.showTime {
		output.WriteString(time.Now().Format("15:04:05 "))
	}

	tag := fmt.Sprintf("[%s]", level)
	if d.useColors {
		c := color.New(attr)
		c.EnableColor()
		tag = c.Sprint(tag)
	}
	output.WriteString(tag)
	output.WriteString(" ")
	output.WriteString(message)
	output.WriteString("\n")

	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprint(writer, output.String())
}

// shouldUseColors determines if colors should be used
func shouldUseColors() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}
