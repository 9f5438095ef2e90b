// Package validation provides struct-tag validation backed by
// go-playground/validator, plus a response schema that decodes parsed HTTP
// payloads into typed, validated structs.
package validation

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Use json tag names for field names in error messages
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Validate validates a struct using `validate` tags.
func Validate(s any) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validation: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, e.Field()+" "+describe(e))
	}
	return fmt.Errorf("validation: %s", strings.Join(msgs, "; "))
}

// describe creates a human-readable message for one field error.
func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		return "must be at least " + e.Param()
	case "max":
		return "must be at most " + e.Param()
	case "oneof":
		return "must be one of: " + e.Param()
	default:
		return "is invalid"
	}
}

// Schema decodes a parsed response payload into T and validates it with
// struct tags. It satisfies the HTTP client's Schema contract: Parse returns
// the typed value or an error that propagates to the caller unchanged.
type Schema[T any] struct{}

// ForStruct creates a Schema for type T.
func ForStruct[T any]() Schema[T] {
	return Schema[T]{}
}

// Parse implements the schema contract.
func (Schema[T]) Parse(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("validation: encode payload: %w", err)
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("validation: decode payload: %w", err)
	}
	if err := Validate(out); err != nil {
		return nil, err
	}
	return out, nil
}
