package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one field-level failure reported to API clients.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the outcome of validating one entity.
type Result struct {
	Valid  bool
	Errors []FieldError
}

// Struct validates v with the given validator and returns a structured result.
func Struct(v *validator.Validate, s interface{}) Result {
	if err := v.Struct(s); err != nil {
		return Result{Valid: false, Errors: FormatValidationErrors(err)}
	}
	return Result{Valid: true}
}

// FormatValidationErrors converts binding and validator errors to field errors.
func FormatValidationErrors(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		out := make([]FieldError, 0, len(validationErrors))
		for _, e := range validationErrors {
			out = append(out, FieldError{Field: fieldPath(e), Message: formatSingleError(e)})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return []FieldError{{Field: field, Message: fmt.Sprintf("must be of type %s", jsonKind(typeErr.Type.Kind().String()))}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return []FieldError{{Field: "body", Message: "malformed JSON"}}
	}

	if errors.Is(err, io.EOF) {
		return []FieldError{{Field: "body", Message: "request body is required"}}
	}

	return []FieldError{{Field: "body", Message: err.Error()}}
}

// fieldPath drops the top-level struct name from the namespace:
// "CreateJobRequest.skills[0]" -> "skills[0]".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	param := e.Param()

	switch e.Tag() {
	case "required":
		return "is required"

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("must be at least %s characters", param)
		}
		if e.Kind().String() == "slice" {
			return fmt.Sprintf("must contain at least %s items", param)
		}
		return fmt.Sprintf("must be at least %s", param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("must be at most %s characters", param)
		}
		return fmt.Sprintf("must be at most %s", param)

	case "gt":
		return fmt.Sprintf("must be greater than %s", param)

	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", param)

	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(param), ", "))

	case "email":
		return "must be a valid email address"

	case "url":
		return "must be a valid URL"

	case "len":
		return fmt.Sprintf("must be exactly %s characters", param)

	case "valid_name":
		return "may only contain letters, spaces and . ' -"

	case "valid_username":
		return "may only contain letters, digits and . _ -"

	case "no_blank":
		return "must not be blank"

	case "no_emoji":
		return "must not contain emoji or symbols"

	default:
		return fmt.Sprintf("failed validation (%s)", e.Tag())
	}
}

func jsonKind(goKind string) string {
	switch goKind {
	case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64", "float32", "float64":
		return "number"
	case "slice", "array":
		return "array"
	case "map", "struct":
		return "object"
	case "bool":
		return "boolean"
	default:
		return goKind
	}
}
