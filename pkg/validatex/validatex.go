// Package validatex wraps go-playground/validator and reports failures as errx validation errors.
package validatex

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/Abraxas-365/careersync/pkg/errx"
	"github.com/go-playground/validator/v10"
)

var ErrRegistry = errx.NewRegistry("VALIDATION")

var CodeInvalidInput = ErrRegistry.Register("INVALID_INPUT", errx.TypeValidation, http.StatusBadRequest, "Invalid input")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their JSON name so clients can map errors to form inputs
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct validates s and returns nil or an *errx.Error whose details map field → rule
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errx.Wrap(err, "validation failed", errx.TypeInternal)
	}

	out := ErrRegistry.New(CodeInvalidInput)
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg := describe(fe)
		out.WithDetail(fe.Field(), msg)
		messages = append(messages, msg)
	}
	return out.WithReason(strings.Join(messages, "; "))
}

// Var validates a single value against a tag such as "email"
func Var(field string, value any, tag string) error {
	if err := validate.Var(value, tag); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			msg := describe(fieldErrs[0])
			return ErrRegistry.New(CodeInvalidInput).
				WithDetail(field, strings.Replace(msg, "value", field, 1)).
				WithReason(strings.Replace(msg, "value", field, 1))
		}
		return errx.Wrap(err, "validation failed", errx.TypeInternal)
	}
	return nil
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	if field == "" {
		field = "value"
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed on '%s'", field, fe.Tag())
	}
}
