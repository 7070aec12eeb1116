package report

import (
	"fmt"
	"io"

	"github.com/divsmith/zmk-keymap-tools/internal/keymap"
)

// A Reporter renders a validation report to a writer.
type Reporter interface {
	Write(w io.Writer, r *keymap.Report) error
}

// TextReporter implements Reporter for plain text output.
type TextReporter struct {
	Verbose   bool
	UseColour bool
}

const (
	colReset     = "\033[0m"
	colRed       = "\033[31m"
	colGreen     = "\033[32m"
	colGrey      = "\033[90m"
	colBoldRed   = "\033[1;31m"
	colBoldGreen = "\033[1;32m"
)

// cs returns a string which will render with the given colour
// if colourisation is enabled.
func (tr *TextReporter) cs(c, s string) string {
	if !tr.UseColour {
		return s
	}
	return c + s + colReset
}

func (tr *TextReporter) Write(w io.Writer, r *keymap.Report) error {
	if tr.Verbose && r.Failure == "" {
		for _, c := range r.Checks {
			mark := tr.cs(colGreen, "✓")
			if !c.Passed {
				mark = tr.cs(colRed, "✗")
			}
			fmt.Fprintf(w, "%s %s\n", mark, tr.cs(colGrey, c.Name))
		}
	}

	problems := r.Problems()
	if len(problems) > 0 {
		fmt.Fprintln(w, tr.cs(colBoldRed, "Errors found:"))
		for _, p := range problems {
			fmt.Fprintf(w, "  - %s\n", tr.cs(colRed, p))
		}
		return nil
	}

	fmt.Fprintln(w, tr.cs(colBoldGreen, "Keymap validation passed!"))
	return nil
}
