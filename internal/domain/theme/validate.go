package theme

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	xerrors "github.com/xala-technologies/xala-cli/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(jsonFieldName)

		_ = v.RegisterValidation("theme_slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the structural rules of a theme config: a slug name usable
// as a filename and a known accessibility level. Colours are deliberately not
// checked; unparseable values flow through the palette unchanged.
func Validate(cfg Config) error {
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		fe := ves[0]
		field := fieldPath(fe.Namespace())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "theme_slug":
			msg = fmt.Sprintf("%q must be lower-case letters, digits and single dashes", fe.Value())
		case "oneof":
			msg = fmt.Sprintf("%q must be one of %s", fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
		default:
			msg = fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
		}
		return xerrors.NewValidationError(field, msg, err)
	}
	return xerrors.NewValidationError("theme", err.Error(), err)
}

func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
