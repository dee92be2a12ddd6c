package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/go-playground/validator/v10"
)

// fieldMessages holds the message reported for a failed rule of a request
// field, keyed by the field's JSON name.
var fieldMessages = map[string]string{
	"name":     MsgNameRequired,
	"email":    MsgEmailInvalid,
	"password": MsgPasswordTooShort,
}

// ruleMessages overrides fieldMessages for a single rule, keyed by
// "<json name>.<tag>".
var ruleMessages = map[string]string{
	"password.max": MsgPasswordTooLong,
}

type requestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator returns a Validator for tagged request structs. A
// failed validation returns FieldErrors.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &requestValidator{validate: v}
}

// Validate checks every rule of input and reports one entry per failed
// field.
func (r *requestValidator) Validate(ctx context.Context, input any) error {
	err := r.validate.StructCtx(ctx, input)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, input)
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	result := make(FieldErrors, 0, len(validationErrors))
	for _, fe := range validationErrors {
		result = append(result, models.FieldError{Msg: messageFor(fe), Path: fe.Field()})
	}

	if len(result) == 0 {
		return nil
	}
	return result
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := ruleMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := fieldMessages[fe.Field()]; ok {
		return msg
	}
	return MsgInvalidValue
}
