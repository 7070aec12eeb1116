package keymap

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// layerPattern matches a layer block declaration, e.g. "default_layer {".
var layerPattern = regexp.MustCompile(`\w+_layer\s*\{`)

// A Check is one presence probe over raw keymap text. Checks are pure
// containment tests: an include mentioned only inside a comment still
// counts as present. That is accepted behaviour, not a bug.
type Check struct {
	// Name is a short stable identifier, used in verbose and JSON output.
	Name string
	// Diagnostic is the fixed message reported when the check fails.
	Diagnostic string

	ok func(content string) bool
}

func containsCheck(name, needle, diagnostic string) Check {
	return Check{
		Name:       name,
		Diagnostic: diagnostic,
		ok: func(content string) bool {
			return strings.Contains(content, needle)
		},
	}
}

// DefaultChecks returns the standard ZMK keymap checks: the two required
// includes, the keymap node marker, and at least one layer block.
func DefaultChecks() []Check {
	return []Check{
		containsCheck("behaviors-include",
			"#include <behaviors.dtsi>",
			"Missing required include: #include <behaviors.dtsi>"),
		containsCheck("keys-include",
			"#include <dt-bindings/zmk/keys.h>",
			"Missing required include: #include <dt-bindings/zmk/keys.h>"),
		containsCheck("keymap-node",
			`compatible = "zmk,keymap"`,
			"Missing keymap node with compatible property"),
		{
			Name:       "layers",
			Diagnostic: "No layers found in keymap",
			ok: func(content string) bool {
				// Multiple layers all count together; only presence matters.
				return layerPattern.MatchString(content)
			},
		},
	}
}

// CheckResult records the outcome of a single check.
type CheckResult struct {
	Name       string
	Passed     bool
	Diagnostic string // set only when the check failed
}

// Report is the outcome of validating one keymap file.
type Report struct {
	Path   string
	Checks []CheckResult

	// Failure is set when the file could not be read at all. In that case
	// no checks were evaluated and Failure is the report's only problem.
	Failure string
}

// Valid reports whether the file passed every check.
func (r *Report) Valid() bool {
	if r.Failure != "" {
		return false
	}
	for _, c := range r.Checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

// Problems returns the ordered diagnostic messages for everything that
// went wrong, in check order.
func (r *Report) Problems() []string {
	if r.Failure != "" {
		return []string{r.Failure}
	}
	var problems []string
	for _, c := range r.Checks {
		if !c.Passed {
			problems = append(problems, c.Diagnostic)
		}
	}
	return problems
}

// Validator runs a fixed set of checks against keymap source text. All
// checks are always evaluated; there is no short-circuit on failure.
type Validator struct {
	checks []Check
}

// NewValidator creates a Validator with the default ZMK checks.
func NewValidator() *Validator {
	return &Validator{checks: DefaultChecks()}
}

// Validate runs every check against content and returns the report.
func (v *Validator) Validate(content string) *Report {
	r := &Report{Checks: make([]CheckResult, 0, len(v.checks))}
	for _, c := range v.checks {
		res := CheckResult{Name: c.Name, Passed: c.ok(content)}
		if !res.Passed {
			res.Diagnostic = c.Diagnostic
		}
		r.Checks = append(r.Checks, res)
	}
	return r
}

// ValidateFile reads path and validates its content. A read failure is
// reported through the normal report path as a single problem rather than
// as an error: the caller prints the same report either way.
func (v *Validator) ValidateFile(path string) *Report {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Report{
			Path:    path,
			Failure: fmt.Sprintf("Error reading file: %v", err),
		}
	}
	r := v.Validate(string(data))
	r.Path = path
	return r
}
