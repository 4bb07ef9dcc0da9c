// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/encrypt/internal/errors"
)

var (
	// metricNameRegex matches a valid Prometheus metric name prefix
	metricNameRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// LogLevel validates that a string names a supported slog level
var LogLevel = validation.In("debug", "info", "warn", "error").
	Error("must be one of debug, info, warn, error")

// MetricName validates that a string can prefix Prometheus metric names
var MetricName = validation.NewStringRuleWithError(
	func(s string) bool {
		return metricNameRegex.MatchString(s)
	},
	validation.NewError("validation_metric_name", "must be a valid metric name"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
