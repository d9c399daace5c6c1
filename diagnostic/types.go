package diagnostic

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/ssarabun/dozer/internal/common"
)

// Severity ranks a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

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

// Diagnostic is one finding of a check.
type Diagnostic struct {
	Severity Severity
	// Code is stable across releases, e.g. "incomplete_class_mapping".
	Code    string
	Message string
	// TypePair locates the class mapping, rendered "A->B". Optional.
	TypePair string
	// Field locates the rule inside the class mapping. Optional.
	Field string
}

// String renders "[A->B] field: [code] message", omitting absent parts.
func (d Diagnostic) String() string {
	var sb strings.Builder

	if d.TypePair != "" {
		sb.WriteString("[" + d.TypePair + "]")
	}

	if d.Field != "" {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteString(d.Field)
	}

	if sb.Len() > 0 {
		sb.WriteString(": ")
	}

	if d.Code != "" {
		sb.WriteString("[" + d.Code + "] ")
	}

	sb.WriteString(d.Message)

	return sb.String()
}

// Diagnostics groups the findings of one pass by severity.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

func (d *Diagnostics) add(sev Severity, code, message, typePair, field string) {
	diag := Diagnostic{Severity: sev, Code: code, Message: message, TypePair: typePair, Field: field}

	switch sev {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError records a defect that makes the checked value unusable.
func (d *Diagnostics) AddError(code, message, typePair, field string) {
	d.add(SeverityError, code, message, typePair, field)
}

// AddWarning records a suspicious but usable construct.
func (d *Diagnostics) AddWarning(code, message, typePair, field string) {
	d.add(SeverityWarning, code, message, typePair, field)
}

// AddInfo records a note.
func (d *Diagnostics) AddInfo(code, message, typePair, field string) {
	d.add(SeverityInfo, code, message, typePair, field)
}

// IsValid reports whether no error was recorded.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All lists every diagnostic, most severe first.
func (d *Diagnostics) All() []Diagnostic {
	return append(append(append(make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos)),
		d.Errors...), d.Warnings...), d.Infos...)
}

// HasCode reports whether a diagnostic of any severity carries code.
func (d *Diagnostics) HasCode(code string) bool {
	for _, diag := range d.All() {
		if diag.Code == code {
			return true
		}
	}

	return false
}

// Error folds the error diagnostics into one error; nil when valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	msgs := make([]string, len(d.Errors))
	for i, e := range d.Errors {
		msgs[i] = e.String()
	}

	return errors.Newf("%d validation error(s): %s", len(d.Errors), strings.Join(msgs, "; "))
}
