// Package validator envuelve go-playground/validator para validar DTOs de
// entrada con sus tags `validate`.
package validator

import "github.com/go-playground/validator/v10"

// FieldError describe un campo que no pasó la validación.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

var validate = validator.New()

// ValidateStruct valida los tags del struct y devuelve los campos fallidos
// (nil si todo es válido).
func ValidateStruct(data any) []FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	var out []FieldError
	for _, fe := range err.(validator.ValidationErrors) {
		out = append(out, FieldError{
			Field: fe.StructNamespace(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}
