package keymap

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// FilterStatus reports the outcome of a TextFilter pass.
type FilterStatus int

const (
	// FilterSkipped means no filter ran (none configured, or the file
	// failed before the filter stage).
	FilterSkipped FilterStatus = iota
	// FilterApplied means the filter ran and its output was adopted.
	FilterApplied
	// FilterUnavailable means the external tool is not installed. This is
	// an expected condition, not an error.
	FilterUnavailable
	// FilterFailed means the tool ran but exited non-zero; the input text
	// is kept unchanged.
	FilterFailed
)

// A TextFilter post-processes grid-formatted keymap text, typically by
// piping it through an external code formatter. Implementations must
// return the input text unchanged for any status other than
// FilterApplied, so callers can always use the returned text.
type TextFilter interface {
	// Name identifies the filter in user-facing messages.
	Name() string
	// Apply transforms text, returning the resulting text and status.
	Apply(ctx context.Context, text string) (string, FilterStatus, error)
}

// ExecFilter runs an external formatter as a subprocess filter: the full
// text is written to its stdin and its stdout becomes the result. The
// call is synchronous with no timeout, matching the tool's strictly
// sequential model.
type ExecFilter struct {
	Command string
	Args    []string
}

// NewExecFilter creates an ExecFilter for the given command.
func NewExecFilter(command string, args ...string) *ExecFilter {
	return &ExecFilter{Command: command, Args: args}
}

func (f *ExecFilter) Name() string {
	return f.Command
}

func (f *ExecFilter) Apply(ctx context.Context, text string) (string, FilterStatus, error) {
	path, err := exec.LookPath(f.Command)
	if err != nil {
		return text, FilterUnavailable, err
	}

	cmd := exec.CommandContext(ctx, path, f.Args...)
	cmd.Stdin = strings.NewReader(text)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Stderr is captured for the error value but the caller is free
		// to drop it; a failed filter only means the grid output stands.
		return text, FilterFailed, &FilterError{
			Command: f.Command,
			Stderr:  stderr.String(),
			Wrapped: err,
		}
	}

	return stdout.String(), FilterApplied, nil
}
