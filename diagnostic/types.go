package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"tori/scheme"
)

// Diagnostics holds all problems found by a catalog validation run. A zero
// value is ready to use.
type Diagnostics struct {
	Errors []Diagnostic
}

// Diagnostic represents a single validation problem.
type Diagnostic struct {
	// Code is a stable identifier for this type of problem.
	Code string
	// Message is the human-readable description.
	Message string
	// Kind identifies which element kind this relates to (if any).
	Kind scheme.Kind
	// Key is the identity key of the offending element (if any).
	Key string
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message string, kind scheme.Kind, key string) {
	d.Errors = append(d.Errors, Diagnostic{
		Code:    code,
		Message: message,
		Kind:    kind,
		Key:     key,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
}

// Strings returns the formatted message of every error, in detection order.
func (d *Diagnostics) Strings() []string {
	msgs := make([]string, len(d.Errors))
	for i, e := range d.Errors {
		msgs[i] = e.String()
	}

	return msgs
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	return errors.New(strings.Join(d.Strings(), "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Kind != 0 {
		prefix = append(prefix, "["+d.Kind.String()+"]")
	}

	if d.Key != "" {
		prefix = append(prefix, d.Key)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
