// Package validator plugs go-playground/validator into echo.
package validator

import (
	"reflect"
	"regexp"
	"strings"

	domainerrors "pawpost/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// topicPattern matches the topic names accepted by Firebase Cloud Messaging
var topicPattern = regexp.MustCompile(`^[a-zA-Z0-9\-_.~%]{1,900}$`)

// CustomValidator implements echo.Validator
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their JSON names
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
	// registration only fails for an empty tag or a nil func
	_ = validate.RegisterValidation("topic", func(fl validator.FieldLevel) bool {
		return topicPattern.MatchString(fl.Field().String())
	})

	return &CustomValidator{validate: validate}
}

// Validate checks i against its validate tags. Failures are tagged as validation errors.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.Validation("validate request", err)
	}

	return nil
}
