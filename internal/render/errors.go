// Package render turns a resume document into an HTML page for preview and
// PDF export. Rendering is a pure function of its inputs: identical document,
// template key, order, and hidden list always produce identical output.
package render

import "fmt"

// TemplateError represents an error parsing or executing a resume template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// UnknownTemplateError indicates a template key outside the fixed set
type UnknownTemplateError struct {
	Key string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown template key: %q", e.Key)
}
