package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their config keys.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("koanf")
	})
	v.RegisterStructValidation(validateTelemetry, TelemetryConfig{})
	return v
}

// Validate checks every section and joins one error per bad key, e.g.
// "server.port must be between 1 and 65535, got 0".
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating config: %w", err)
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, fmt.Errorf("%s %s", configKey(fe), describe(fe)))
	}
	return errors.Join(errs...)
}

// validateTelemetry applies the exporter rules only while telemetry is on.
func validateTelemetry(sl validator.StructLevel) {
	t, _ := sl.Current().Interface().(TelemetryConfig)
	if !t.Enabled {
		return
	}

	switch t.Exporter {
	case "stdout":
	case "otlp":
		if t.Endpoint == "" {
			sl.ReportError(t.Endpoint, "endpoint", "Endpoint", "required_with_otlp", "")
		}
	default:
		sl.ReportError(t.Exporter, "exporter", "Exporter", "oneof", "stdout otlp")
	}
	if t.ServiceName == "" {
		sl.ReportError(t.ServiceName, "service_name", "ServiceName", "required", "")
	}
}

// configKey turns "Config.server.port" into "server.port".
func configKey(fe validator.FieldError) string {
	_, key, _ := strings.Cut(fe.Namespace(), ".")
	return key
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "required_with_otlp":
		return "must not be empty when exporter is otlp"
	case "min":
		if fe.Field() == "port" {
			return fmt.Sprintf("must be between 1 and 65535, got %v", fe.Value())
		}
		return fmt.Sprintf("must be >= %s, got %v", fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("must be between 1 and %s, got %v", fe.Param(), fe.Value())
	case "gt":
		return "must be positive"
	case "gte":
		return "must not be negative"
	case "oneof":
		return fmt.Sprintf("must be one of: %s; got %q",
			strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	case "ltfield":
		return fmt.Sprintf("(%v) must be shorter than %s", fe.Value(), siblingKey(fe))
	case "ltefield":
		return fmt.Sprintf("must not exceed %s, got %v", siblingKey(fe), fe.Value())
	default:
		return "is invalid"
	}
}

// siblingKey names the field a cross-field rule compared against, e.g.
// WriteTimeout next to server.request_timeout is server.write_timeout.
func siblingKey(fe validator.FieldError) string {
	key := configKey(fe)
	section, _, _ := strings.Cut(key, ".")

	var b strings.Builder
	for i, r := range fe.Param() {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return section + "." + b.String()
}
