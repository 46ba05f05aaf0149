package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"shapecast/internal/common"
)

// Well-known diagnostic codes emitted by the casters.
const (
	// CodeDynamicAssignUnsupported marks a dynamic-assign request that
	// degraded to ignore because the target declares no overflow field.
	CodeDynamicAssignUnsupported = "dynamic-assign-unsupported"
)

// Severity represents the severity level of a notice.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Notice represents a single diagnostic message.
type Notice struct {
	// Severity of the notice.
	Severity Severity
	// Code is a unique identifier for this type of notice.
	Code string
	// Message is the human-readable description.
	Message string
	// TypePair identifies which source/target pair this relates to (if any).
	TypePair string
	// FieldPath identifies which field this relates to (if any).
	FieldPath string
}

// String returns a formatted notice string.
func (n Notice) String() string {
	var prefix []string
	if n.TypePair != "" {
		prefix = append(prefix, "["+n.TypePair+"]")
	}

	if n.FieldPath != "" {
		prefix = append(prefix, n.FieldPath)
	}

	msg := n.Message
	if n.Code != "" {
		msg = fmt.Sprintf("[%s] %s", n.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

// Diagnostics collects the notices emitted over one or more casts.
//
// The zero value is ready to use. A Diagnostics value is not safe for
// concurrent mutation; give each goroutine its own sink and Merge.
type Diagnostics struct {
	Errors   []Notice
	Warnings []Notice
	Infos    []Notice
}

// AddError adds an error notice.
func (d *Diagnostics) AddError(code, message, typePair, fieldPath string) {
	d.Errors = append(d.Errors, Notice{
		Severity:  SeverityError,
		Code:      code,
		Message:   message,
		TypePair:  typePair,
		FieldPath: fieldPath,
	})
}

// AddWarning adds a warning notice.
func (d *Diagnostics) AddWarning(code, message, typePair, fieldPath string) {
	d.Warnings = append(d.Warnings, Notice{
		Severity:  SeverityWarning,
		Code:      code,
		Message:   message,
		TypePair:  typePair,
		FieldPath: fieldPath,
	})
}

// AddInfo adds an info notice.
func (d *Diagnostics) AddInfo(code, message, typePair, fieldPath string) {
	d.Infos = append(d.Infos, Notice{
		Severity:  SeverityInfo,
		Code:      code,
		Message:   message,
		TypePair:  typePair,
		FieldPath: fieldPath,
	})
}

// HasErrors returns true if there are any error notices.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// HasCode returns true if any notice of any severity carries the given code.
func (d *Diagnostics) HasCode(code string) bool {
	for _, bucket := range [][]Notice{d.Errors, d.Warnings, d.Infos} {
		for _, n := range bucket {
			if n.Code == code {
				return true
			}
		}
	}

	return false
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Error returns a combined error from all error notices, or nil if there are none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}
