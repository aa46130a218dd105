package validation

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates a request DTO against its validate tags.
func Struct(s interface{}) error {
	return validate.Struct(s)
}

// FieldErrors flattens validator errors into a field → failed-rule map for
// the error response body. Nil when err is not a validation error.
func FieldErrors(err error) map[string]string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
