package handler

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator builds the request validator shared by all handlers. Error
// details report fields by their json names.
func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}
