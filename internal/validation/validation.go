// Package validation evaluates the declarative field constraints on inbound
// payloads and parameters. Violations are accumulated into per-field messages
// instead of failing on the first one.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/bvqadmin/montos-api/internal/models"
	"github.com/go-playground/validator/v10"
)

const maxRMVLength = 50

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report violations by payload key, not Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct runs the `validate` tags of a bound request struct and returns every
// violation. A nil result means the payload passed.
func Struct(v any) []models.FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []models.FieldError{{Field: "", Message: err.Error()}}
	}

	fieldErrors := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return fieldErrors
}

// RMVParam validates the path identity: a non-empty string of at most 50
// characters, matching the key column's width.
func RMVParam(rmv string) []models.FieldError {
	var fieldErrors []models.FieldError
	if rmv == "" {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field: "rmv", Message: "el RMV es obligatorio",
		})
	}
	if len(rmv) > maxRMVLength {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field: "rmv", Message: fmt.Sprintf("el RMV no puede superar %d caracteres", maxRMVLength),
		})
	}
	return fieldErrors
}

// messageFor renders a client-facing Spanish message for one violation.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("no puede superar %s caracteres", fe.Param())
		}
		return fmt.Sprintf("no puede ser mayor que %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("debe tener al menos %s caracteres", fe.Param())
		}
		return fmt.Sprintf("debe ser un número mayor o igual a %s", fe.Param())
	default:
		return fmt.Sprintf("no cumple la restricción %s", fe.Tag())
	}
}
