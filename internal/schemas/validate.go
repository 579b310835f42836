// Package schemas provides JSON Schema validation for resume documents.
// The save path and the AI extraction path both run documents through the
// same schema before they are trusted.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume_data.schema.json
var resumeDataSchema string

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError represents a schema validation failure with field paths
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "schema validation failed"
	}
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "schema validation failed: " + strings.Join(parts, "; ")
}

var resumeSchema = gojsonschema.NewStringLoader(resumeDataSchema)

// ValidateResumeData validates a raw resume document against the ResumeData
// schema. Returns a *ValidationError describing every violation, or an
// ordinary error if the document or schema cannot be loaded.
func ValidateResumeData(document []byte) error {
	result, err := gojsonschema.Validate(resumeSchema, gojsonschema.NewBytesLoader(document))
	if err != nil {
		return fmt.Errorf("failed to run schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{}
	for _, desc := range result.Errors() {
		verr.Errors = append(verr.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return verr
}
