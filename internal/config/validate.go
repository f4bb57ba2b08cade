package config

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	xerrors "github.com/xala-technologies/xala-cli/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	nsmClassifications = []string{"OPEN", "RESTRICTED", "CONFIDENTIAL", "SECRET"}
)

// ValidationResult lists every violation found in a config.
type ValidationResult struct {
	Valid  bool                       `json:"valid"`
	Errors []*xerrors.ValidationError `json:"errors,omitempty"`
}

// Messages renders each violation as "field: message".
func (r ValidationResult) Messages() []string {
	out := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		out[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return out
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
			return IsSupportedPlatform(fl.Field().String())
		})

		_ = v.RegisterValidation("nsm", func(fl validator.FieldLevel) bool {
			return slices.Contains(nsmClassifications, fl.Field().String())
		})

		v.RegisterStructValidation(validateIntegrations, ProjectConfig{})

		validateInst = v
	})

	return validateInst
}

// IsSupportedPlatform reports whether platform is on the allow-list.
func IsSupportedPlatform(platform string) bool {
	return slices.Contains(SupportedPlatforms, platform)
}

func validateIntegrations(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(ProjectConfig)
	if xaheen, ok := cfg.Integrations[IntegrationXaheen]; ok && xaheen.Enabled && strings.TrimSpace(xaheen.Version) == "" {
		sl.ReportError(xaheen.Version, "integrations."+IntegrationXaheen+".version", "Version", "xaheen_version", "")
	}
}

// Validate checks cfg and reports all violations at once.
func Validate(cfg ProjectConfig) ValidationResult {
	err := validatorInstance().Struct(cfg)
	if err == nil {
		return ValidationResult{Valid: true}
	}

	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationResult{Errors: []*xerrors.ValidationError{{Field: "config", Message: err.Error(), Err: err}}}
	}

	issues := make([]*xerrors.ValidationError, 0, len(ves))
	for _, fe := range ves {
		issues = append(issues, &xerrors.ValidationError{
			Field:   fieldPath(fe.Namespace()),
			Message: describe(fe),
			Err:     fe,
		})
	}
	return ValidationResult{Errors: issues}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "platform":
		return fmt.Sprintf("unsupported platform %q (supported: %s)", fe.Value(), strings.Join(SupportedPlatforms, ", "))
	case "nsm":
		return fmt.Sprintf("%q must be one of %s", fe.Value(), strings.Join(nsmClassifications, ", "))
	case "oneof":
		return fmt.Sprintf("%q must be one of %s", fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "xaheen_version":
		return "is required when the xaheen integration is enabled"
	case "min", "max":
		return fmt.Sprintf("must be between 1 and 65535, got %v", fe.Value())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
