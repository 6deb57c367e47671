package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Environment constants
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func configValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.Split(f.Tag.Get("koanf"), ",")[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate checks cfg against the validate tags of its fields and reports the
// first failure as a *ConfigError.
func Validate(cfg *Config) error {
	if cfg == nil {
		return &ConfigError{Category: "invalid", Message: "config is nil"}
	}

	err := configValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}
	return toConfigError(errs[0])
}

func toConfigError(fe validator.FieldError) *ConfigError {
	field := keyPath(fe.Namespace())

	switch fe.Tag() {
	case "required":
		return NewMissingFieldError(field)
	case "oneof":
		return NewInvalidFieldError(field, fmt.Sprintf("unsupported value '%v'", fe.Value()), strings.Fields(fe.Param()))
	case "min", "gte":
		return NewInvalidFieldError(field, fmt.Sprintf("must be at least %s", fe.Param()), nil)
	case "max", "lte":
		return NewInvalidFieldError(field, fmt.Sprintf("must be at most %s", fe.Param()), nil)
	case "contains":
		return NewInvalidFieldError(field, fmt.Sprintf("'%v' must contain %s", fe.Value(), fe.Param()), nil)
	default:
		return NewInvalidFieldError(field, fmt.Sprintf("failed %s validation", fe.Tag()), nil)
	}
}

// keyPath turns "Config.server.port" into "server.port" and
// "Config.descriptions.patterns[1]" into "descriptions.patterns".
func keyPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		namespace = namespace[i+1:]
	}
	if i := strings.IndexByte(namespace, '['); i >= 0 {
		namespace = namespace[:i]
	}
	return namespace
}
