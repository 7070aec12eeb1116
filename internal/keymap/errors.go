package keymap

import (
	"fmt"
	"strings"
)

// FilterError reports a non-zero exit from an external formatter.
type FilterError struct {
	Wrapped error
	Command string
	Stderr  string
}

func (e *FilterError) Error() string {
	msg := fmt.Sprintf("%s failed: %v", e.Command, e.Wrapped)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *FilterError) Unwrap() error {
	return e.Wrapped
}
