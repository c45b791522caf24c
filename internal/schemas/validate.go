// Package schemas provides JSON Schema validation for structured import
// documents.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed job_import.schema.json
var jobImportSchema string

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ImportJob is one job posting in a validated import document.
type ImportJob struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

// importDocument is the top-level shape of a job import file.
type importDocument struct {
	Jobs []ImportJob `json:"jobs"`
}

// JobImportValidator validates bulk job-import documents against the embedded
// JSON Schema before any database writes happen.
type JobImportValidator struct {
	schema *gojsonschema.Schema
}

// NewJobImportValidator compiles the embedded job import schema.
func NewJobImportValidator() (*JobImportValidator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(jobImportSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile job import schema: %w", err)
	}
	return &JobImportValidator{schema: schema}, nil
}

// Validate checks a job import document against the schema and returns the
// parsed jobs. Schema violations come back as a *ValidationError listing
// every failing field.
func (v *JobImportValidator) Validate(data []byte) ([]ImportJob, error) {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse import document: %w", err)
	}

	if !result.Valid() {
		validationErr := &ValidationError{
			Errors: make([]FieldError, 0, len(result.Errors())),
		}
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			validationErr.Errors = append(validationErr.Errors, FieldError{
				Field:   field,
				Message: desc.Description(),
			})
		}
		return nil, validationErr
	}

	var doc importDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode import document: %w", err)
	}
	return doc.Jobs, nil
}
