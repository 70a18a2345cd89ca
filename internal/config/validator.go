package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/huekit/internal/colorpicker"
	"github.com/alexisbeaulieu97/huekit/pkg/color"
	huekiterrors "github.com/alexisbeaulieu97/huekit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the validator shared across the
// package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("color_mode", func(fl validator.FieldLevel) bool {
			_, err := color.ParseModeName(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("color_value", func(fl validator.FieldLevel) bool {
			_, _, err := color.Parse(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("picker_action", func(fl validator.FieldLevel) bool {
			_, err := colorpicker.ParseAction(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the document against its schema.
func Validate(cfg *PanelConfig) error {
	if cfg == nil {
		return huekiterrors.NewValidationError("config", "configuration is nil", nil)
	}
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	if cfg.DeriveDefault && cfg.DefaultValue != "" {
		return huekiterrors.NewValidationError("derive_default", "derive_default conflicts with default_value", nil)
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := fieldPath(fe)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
		if value, ok := fe.Value().(string); ok && value != "" {
			msg = fmt.Sprintf("%s: %q is not a valid %s", field, value, tagSubject(fe.Tag()))
		}
		return huekiterrors.NewValidationError(field, msg, err)
	}
	return huekiterrors.NewValidationError("config", err.Error(), err)
}

// fieldPath drops the root struct name: "PanelConfig.modes[1]" becomes
// "modes[1]".
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Namespace()
	}
	return path
}

func tagSubject(tag string) string {
	switch tag {
	case "color_mode":
		return "color mode"
	case "color_value":
		return "color"
	case "picker_action":
		return "action"
	default:
		return tag + " value"
	}
}
