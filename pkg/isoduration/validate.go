package isoduration

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

// ValidationTag is the validator tag registered by RegisterValidation.
const ValidationTag = "iso8601duration"

// RegisterValidation registers the "iso8601duration" tag, which accepts
// string fields holding a parseable ISO 8601 duration.
func RegisterValidation(v *validator.Validate) error {
	return v.RegisterValidation(ValidationTag, validateString)
}

func validateString(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	_, err := Parse(field.String())
	return err == nil
}
