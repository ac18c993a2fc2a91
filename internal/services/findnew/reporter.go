package findnew

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
)

// Reporter receives the events of a comparison run.
type Reporter interface {
	Start(info RunInfo)
	// Compared is called after each comparison with the progress before it.
	Compared(progress float64, newPath, oldPath string, distance float64)
	// Unique is called as soon as a new path is known to have no duplicate.
	Unique(progress float64, path string)
	Done(result Result)
}

// NopReporter discards every event.
type NopReporter struct{}

func (NopReporter) Start(RunInfo) {}

func (NopReporter) Compared(float64, string, string, float64) {}

func (NopReporter) Unique(float64, string) {}

func (NopReporter) Done(Result) {}

// TextReporter prints a run as human-readable terminal output.
type TextReporter struct {
	Out io.Writer
	// Verbose prints every comparison, not just unique hits.
	Verbose bool
	// NoColor disables colour even on a terminal.
	NoColor bool
}

// FormatProgress renders a ratio as a fixed-width percentage such as "04.2%".
// Ratios of one or more render as " 100%".
func FormatProgress(ratio float64) string {
	if ratio >= 1 {
		return " 100%"
	}
	return fmt.Sprintf("%04.1f%%", ratio*100)
}

func (r *TextReporter) Start(info RunInfo) {
	fmt.Fprintf(r.Out, "old: `%s' contains %d image files.\n", info.OldDir, info.OldCount)
	fmt.Fprintf(r.Out, "new: `%s' contains %d image files.\n", info.NewDir, info.NewCount)
	fmt.Fprintf(r.Out, "\nWe will make %s comparisons.\n", r.paint(color.FgCyan)(info.Planned))
	if r.Verbose {
		fmt.Fprintln(r.Out)
	}
}

func (r *TextReporter) Compared(progress float64, newPath, oldPath string, distance float64) {
	if !r.Verbose {
		return
	}
	gray := r.paint(color.FgHiBlack)
	fmt.Fprintf(r.Out, "[%s] comparing: `%s' to `%s': diff: %s\n",
		FormatProgress(progress), newPath, oldPath, gray(strconv.FormatFloat(distance, 'f', -1, 64)))
}

func (r *TextReporter) Unique(progress float64, path string) {
	green := r.paint(color.FgGreen)
	fmt.Fprintf(r.Out, "[%s] found unique image: `%s'.\n", FormatProgress(progress), green(path))
}

func (r *TextReporter) Done(result Result) {
	fmt.Fprintln(r.Out, "[ 100%] done.")
	if len(result.Unique) == 0 {
		fmt.Fprintf(r.Out, "\n%s\n", r.paint(color.FgYellow)("No unique images found."))
		return
	}
	bold := r.paint(color.FgCyan, color.Bold)
	fmt.Fprintf(r.Out, "\nAmount of unique images found in `new' directory: %s\n\n", bold(len(result.Unique)))
	for _, path := range result.Unique {
		fmt.Fprintf(r.Out, "    %s\n", path)
	}
	fmt.Fprintln(r.Out)
}

func (r *TextReporter) paint(attrs ...color.Attribute) func(a ...interface{}) string {
	c := color.New(attrs...)
	if r.NoColor {
		c.DisableColor()
	}
	return c.SprintFunc()
}
