package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/olivier-w/gooey/internal/easing"
	"github.com/olivier-w/gooey/internal/editor"
	"github.com/olivier-w/gooey/internal/geometry"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used across
// the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("size", func(fl validator.FieldLevel) bool {
			_, err := geometry.ParseSize(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("preset", func(fl validator.FieldLevel) bool {
			_, ok := easing.PresetByName(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("bezier", func(fl validator.FieldLevel) bool {
			pts, ok := fl.Field().Interface().([]float64)
			if !ok || len(pts) != 4 {
				return false
			}
			for i, p := range pts {
				lo, hi := editor.BezierBounds(i)
				if p < lo || p > hi {
					return false
				}
			}
			return true
		})

		validateInst = v
	})
	return validateInst
}

// convertValidationError normalizes validator errors into ValidationErrors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		field := yamlFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return NewValidationError(field, msg, err)
	}
	return NewValidationError("config", err.Error(), err)
}

func yamlFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
