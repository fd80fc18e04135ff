package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/manav03panchal/quotd/internal/errors"
)

var validate = newValidator()

// newValidator reports fields by their config key rather than the Go name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "" || name == "-" {
			return strings.ToLower(f.Name)
		}
		return name
	})
	return v
}

// Validate checks the loaded settings. The returned error is a UserError
// listing every bad key, wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}

	return &errors.UserError{
		Message:    "invalid configuration:\n  " + strings.Join(problems, "\n  "),
		Suggestion: errors.GetSuggestion(errors.ErrInvalidConfig),
		Cause:      errors.ErrInvalidConfig,
	}
}

func describe(fe validator.FieldError) string {
	key := configKey(fe.Namespace())
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return key + " is required"
	case "required_if":
		return key + " is required when file logging is enabled"
	case "min":
		return fmt.Sprintf("%s must be at least %s (got %v)", key, param, fe.Value())
	case "max":
		return fmt.Sprintf("%s must be at most %s (got %v)", key, param, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s (got %q)", key, strings.ReplaceAll(param, " ", ", "), fe.Value())
	}
	return fmt.Sprintf("%s is invalid (%s)", key, fe.Tag())
}

// configKey turns "Config.log.file.path" into "log.file.path".
func configKey(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}
