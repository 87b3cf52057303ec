// Package validation wraps the shared struct validator. Request bodies are
// validated before any database access is attempted.
package validation

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Struct validates a struct using its `validate` tags.
func Struct(s interface{}) error {
	return validate.Struct(s)
}
