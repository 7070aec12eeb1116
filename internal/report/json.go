// Package report renders keymap validation reports as text or JSON.
package report

import (
	"encoding/json"
	"io"

	"github.com/divsmith/zmk-keymap-tools/internal/keymap"
)

// JSONReporter implements Reporter for JSON output.
type JSONReporter struct{}

type jsonCheck struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Error  string `json:"error,omitempty"`
}

type jsonOutput struct {
	File   string      `json:"file"`
	Valid  bool        `json:"valid"`
	Checks []jsonCheck `json:"checks,omitempty"`
	Errors []string    `json:"errors"`
}

func (jr *JSONReporter) Write(w io.Writer, r *keymap.Report) error {
	out := jsonOutput{
		File:   r.Path,
		Valid:  r.Valid(),
		Errors: []string{},
	}

	for _, c := range r.Checks {
		out.Checks = append(out.Checks, jsonCheck{
			Name:   c.Name,
			Passed: c.Passed,
			Error:  c.Diagnostic,
		})
	}
	out.Errors = append(out.Errors, r.Problems()...)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
