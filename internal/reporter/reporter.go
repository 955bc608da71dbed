// Package reporter renders a lint report for the console and maps its
// outcome to a process exit status.
package reporter

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/commitlint-go/commitlint/internal/lint"
)

const (
	validationSuccessful = "Commit validation: successful!"
	validationFailed     = "Commit validation: failed!"
)

// Options control how much of the report is shown.
type Options struct {
	// Quiet suppresses all output; only the exit status remains.
	Quiet bool

	// SkipDetail prints a single failure line per commit instead of the
	// per-rule breakdown.
	SkipDetail bool

	// HideInput omits the offending header echo, for CI logs that must
	// not repeat the input.
	HideInput bool
}

// Reporter writes human-readable lint results.
type Reporter struct {
	out  io.Writer
	opts Options
}

// New creates a reporter writing to out.
func New(out io.Writer, opts Options) *Reporter {
	return &Reporter{out: out, opts: opts}
}

// Report renders the outcome of a lint run.
func (r *Reporter) Report(report lint.Report) {
	if r.opts.Quiet {
		return
	}

	for _, verdict := range report.Failed {
		r.reportVerdict(verdict)
	}

	if report.Valid {
		color.New(color.FgGreen).Fprintln(r.out, validationSuccessful)
	}
}

func (r *Reporter) reportVerdict(verdict lint.Verdict) {
	if !r.opts.HideInput {
		fmt.Fprintf(r.out, "⧗ Input:\n%s\n\n", verdict.Header)
	}

	red := color.New(color.FgRed)
	if r.opts.SkipDetail {
		red.Fprintln(r.out, validationFailed)
		fmt.Fprintln(r.out)
		return
	}

	red.Fprintf(r.out, "✖ Found %d error(s).\n", len(verdict.Violations))
	for _, violation := range verdict.Violations {
		fmt.Fprintf(r.out, "- %s [%s]\n", violation.Message, violation.RuleID)
	}
	fmt.Fprintln(r.out)
}

// ExitCode maps a report to the process exit status.
func ExitCode(report lint.Report) int {
	if report.Valid {
		return 0
	}
	return 1
}
