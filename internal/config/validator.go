package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/magicalendar/internal/calendar"
	calerrors "github.com/alexisbeaulieu97/magicalendar/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("civil_date", func(fl validator.FieldLevel) bool {
			_, err := calendar.ParseDate(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
			_, err := calendar.ParseWeekday(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("event_color", func(fl validator.FieldLevel) bool {
			_, err := calendar.ParseEventColor(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("event_type", func(fl validator.FieldLevel) bool {
			_, err := calendar.ParseEventType(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return calerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	s := cfg.Calendar
	if s.MinimumDate != "" && s.MaximumDate != "" {
		lo, _ := calendar.ParseDate(s.MinimumDate)
		hi, _ := calendar.ParseDate(s.MaximumDate)
		if lo.After(hi) {
			return calerrors.NewValidationError("calendar.minimum_date",
				fmt.Sprintf("minimum_date %s is after maximum_date %s", lo, hi), nil)
		}
	}

	if s.AllowPastSelection != nil && s.AllowFutureSelection != nil &&
		!*s.AllowPastSelection && !*s.AllowFutureSelection && s.SelectionMode == "range" {
		return calerrors.NewValidationError("calendar.selection_mode",
			"range selection needs past or future selection to be allowed", nil)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg += fmt.Sprintf(" (%s)", ve.Param())
		}
		return calerrors.NewValidationError(field, msg, err)
	}

	return calerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct name from the namespace, leaving the
// yaml path such as "calendar.minimum_date" or "events[0].date".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
