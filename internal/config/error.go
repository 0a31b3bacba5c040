package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid matches every *ConfigError under errors.Is.
var ErrInvalid = errors.New("invalid configuration")

// ConfigError collects every problem found in one config file.
type ConfigError struct {
	Path    string   // file the problems were found in
	Missing []string // unresolved ${VAR} references
	Errors  []string // failed rules, "field: message"
}

func (e *ConfigError) Error() string {
	if !e.HasErrors() {
		return ""
	}

	var b strings.Builder
	if e.Path != "" {
		b.WriteString(e.Path + ": ")
	}
	fmt.Fprintf(&b, "%d problem(s)", e.Count())

	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, "\nmissing environment variables: %s", strings.Join(e.Missing, ", "))
	}
	if len(e.Errors) > 0 {
		b.WriteString("\nvalidation failed:")
		for _, msg := range e.Errors {
			b.WriteString("\n  - " + msg)
		}
	}
	return b.String()
}

// Is reports whether target is ErrInvalid.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalid
}

// HasErrors returns true if there are any errors.
func (e *ConfigError) HasErrors() bool {
	return e.Count() > 0
}

// Count returns the number of problems.
func (e *ConfigError) Count() int {
	return len(e.Missing) + len(e.Errors)
}
