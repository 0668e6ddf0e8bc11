// Package schema checks serialized skill responses against the platform's
// response schema. The builder itself stays lenient; this is a diagnostic for
// catching unset required fields before the platform does.
package schema

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed response.schema.json
var responseSchema []byte

// Violation is one schema error, keyed by the JSON path of the offending field.
type Violation struct {
	Field   string
	Message string
}

// ValidationError lists every violation found in one document.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return "schema: " + strings.Join(parts, "; ")
}

type Validator struct {
	schema *gojsonschema.Schema
}

func NewValidator() (*Validator, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(responseSchema))
	if err != nil {
		return nil, fmt.Errorf("loading response schema: %w", err)
	}
	return &Validator{schema: s}, nil
}

// Validate returns a *ValidationError when doc does not conform, or a plain
// error when doc is not JSON at all.
func (v *Validator) Validate(doc []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("validating response: %w", err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if desc.Type() == "required" {
			field = fmt.Sprintf("%s.%v", field, desc.Details()["property"])
			field = strings.TrimPrefix(field, "(root).")
		}
		verr.Violations = append(verr.Violations, Violation{Field: field, Message: desc.Description()})
	}
	return verr
}
