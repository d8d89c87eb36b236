// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "marketplace/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// RequestValidator validates bound request structs.
type RequestValidator struct {
	validate *playground.Validate
}

// New creates a validator that reports fields by their JSON names.
func New() *RequestValidator {
	validate := playground.New(playground.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param", "form"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}

		return field.Name
	})

	// decimal.Decimal is a struct, so numeric tags cannot reach it.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if value, ok := field.Interface().(decimal.Decimal); ok {
			return value.InexactFloat64()
		}

		return nil
	}, decimal.Decimal{})

	return &RequestValidator{validate: validate}
}

// Validate implements echo.Validator. Failures come back as VALIDATION_FAILED
// with one "field: rule" entry per violated constraint.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		details = append(details, describe(fieldErr))
	}

	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; ")))
}

func describe(fieldErr playground.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + ": is required"
	case "oneof":
		return fmt.Sprintf("%s: must be one of [%s]", fieldErr.Field(), fieldErr.Param())
	case "email":
		return fieldErr.Field() + ": must be a valid email"
	case "min", "gte":
		return fmt.Sprintf("%s: must be at least %s", fieldErr.Field(), fieldErr.Param())
	case "gt":
		return fmt.Sprintf("%s: must be greater than %s", fieldErr.Field(), fieldErr.Param())
	case "max", "lte":
		return fmt.Sprintf("%s: must be at most %s", fieldErr.Field(), fieldErr.Param())
	default:
		return fmt.Sprintf("%s: failed %s", fieldErr.Field(), fieldErr.Tag())
	}
}
