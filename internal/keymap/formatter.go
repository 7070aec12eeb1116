// Package keymap contains the core text operations for ZMK keymap source
// files: grid formatting of bindings blocks, structural presence checks,
// and the optional external-formatter filter.
//
// Nothing here parses device-tree syntax. All operations are deliberate
// best-effort regex surgery over the raw text, which keeps behaviour
// predictable on files the tools do not fully understand.
package keymap

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// DefaultColumns is the number of binding tokens per grid row.
	// Matches a 10-column keyboard half pair; override via config or flag.
	DefaultColumns = 10

	// DefaultFieldWidth is the minimum display width each token is padded to.
	DefaultFieldWidth = 12
)

// rowIndent is the leading whitespace of each continuation row inside a
// rewritten bindings block.
const rowIndent = "        "

var (
	// bindingsPattern matches a whole bindings block up to the first '>'.
	// The negated class spans newlines, so multi-line blocks are captured,
	// but a literal '>' inside the block body ends the match early.
	bindingsPattern = regexp.MustCompile(`bindings = <([^>]+)>`)

	// tokenPattern matches one behaviour reference, e.g. &kp or &mo.
	tokenPattern = regexp.MustCompile(`&[a-zA-Z0-9_]+`)
)

// GridFormatter rewrites every bindings block in a keymap source text into
// fixed-width columns so the source mirrors the physical key layout.
type GridFormatter struct {
	Columns    int
	FieldWidth int
}

// NewGridFormatter creates a GridFormatter. Non-positive values fall back
// to the package defaults.
func NewGridFormatter(columns, fieldWidth int) *GridFormatter {
	if columns < 1 {
		columns = DefaultColumns
	}
	if fieldWidth < 1 {
		fieldWidth = DefaultFieldWidth
	}
	return &GridFormatter{Columns: columns, FieldWidth: fieldWidth}
}

// Tokens returns the behaviour tokens of a bindings block body in their
// order of appearance. Arguments such as the A in "&kp A" are not tokens.
func Tokens(body string) []string {
	return tokenPattern.FindAllString(body, -1)
}

// FormatText rewrites every bindings block in content and returns the
// result. Text outside bindings blocks is left untouched; content with no
// bindings block passes through unchanged.
func (g *GridFormatter) FormatText(content string) string {
	return bindingsPattern.ReplaceAllStringFunc(content, func(block string) string {
		body := bindingsPattern.FindStringSubmatch(block)[1]
		return g.formatBlock(Tokens(body))
	})
}

// formatBlock renders an ordered token sequence as a continuation-line
// grid wrapped in bindings block syntax. An empty token list yields an
// empty grid body.
func (g *GridFormatter) formatBlock(tokens []string) string {
	rows := make([]string, 0, (len(tokens)+g.Columns-1)/g.Columns)
	for start := 0; start < len(tokens); start += g.Columns {
		end := start + g.Columns
		if end > len(tokens) {
			end = len(tokens)
		}
		fields := make([]string, 0, end-start)
		for _, tok := range tokens[start:end] {
			fields = append(fields, fmt.Sprintf("%-*s", g.FieldWidth, tok))
		}
		rows = append(rows, strings.Join(fields, " "))
	}

	return "bindings = <\\\n" + rowIndent + strings.Join(rows, "\\\n"+rowIndent) + "\\\n    >"
}

// FileResult is the outcome of formatting a single file in a batch.
// A failure on one file never aborts the rest of the batch; callers can
// aggregate results into an exit code if they choose to.
type FileResult struct {
	Path         string
	FilterStatus FilterStatus
	Err          error
}
