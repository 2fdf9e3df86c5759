package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	qterrors "github.com/toyz/quicktest/internal/errors"
)

// DiagnosticReporter renders command failures with their context and suggestions
type DiagnosticReporter struct {
	out     io.Writer
	verbose bool
}

// NewDiagnosticReporter creates a new diagnostic reporter
func NewDiagnosticReporter(out io.Writer, verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		out:     out,
		verbose: verbose,
	}
}

// ReportError writes err, expanding every entry of a MultipleErrors
func (r *DiagnosticReporter) ReportError(err error) {
	if err == nil {
		return
	}

	var multi *qterrors.MultipleErrors
	if stderrors.As(err, &multi) && multi.Count() > 1 {
		r.printHeader(fmt.Sprintf("%d scaffolds failed", multi.Count()))
		for i, item := range multi.Errors {
			fmt.Fprintf(r.out, "\n%d. ", i+1)
			r.reportScaffoldError(item)
		}
		return
	}

	var scaffoldErr qterrors.ScaffoldError
	if stderrors.As(err, &scaffoldErr) {
		r.printHeader(scaffoldErr.ErrorCode().String())
		r.reportScaffoldError(scaffoldErr)
		return
	}

	r.printHeader("Error")
	fmt.Fprintf(r.out, "%s\n", err.Error())
}

func (r *DiagnosticReporter) printHeader(title string) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprint(r.out, "ERROR: ")
	fmt.Fprintf(r.out, "%s\n", title)
}

func (r *DiagnosticReporter) reportScaffoldError(err qterrors.ScaffoldError) {
	fmt.Fprintf(r.out, "%s\n", err.Error())

	if loc := err.Location(); !loc.IsEmpty() {
		fmt.Fprintf(r.out, "   File: %s\n", loc)
	}

	r.printContext(err.Context())
	r.printSuggestions(err.Suggestions())

	if r.verbose {
		r.printCauseChain(err.Unwrap())
	}
}

// printContext prints context entries sorted by key
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	keys := make([]string, 0, len(context))
	for key := range context {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(r.out, "   %s: %v\n", formatContextKey(key), context[key])
	}
}

// formatContextKey converts snake_case keys to Title Case
func formatContextKey(key string) string {
	parts := strings.Split(key, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}

func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	fmt.Fprintf(r.out, "Suggestions:\n")
	for i, suggestion := range suggestions {
		fmt.Fprintf(r.out, "   %d. %s\n", i+1, suggestion)
	}
}

func (r *DiagnosticReporter) printCauseChain(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(r.out, "Error chain:\n")
	for level := 1; err != nil; level++ {
		fmt.Fprintf(r.out, "   %d. %s\n", level, err.Error())
		err = stderrors.Unwrap(err)
	}
}
