package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// report fields under their query/JSON name, e.g. "q" rather than "Query"
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// rejects whitespace-only strings, which "required" lets through
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
}

// ValidateStruct checks the `validate` tags of s.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ErrorsToJson flattens validator failures into {"field":"tag"}.
// Any other error is returned unchanged.
func ErrorsToJson(validationErrs error) (string, error) {
	var fieldErrs validator.ValidationErrors
	if !errors.As(validationErrs, &fieldErrs) {
		return "", validationErrs
	}

	errsMap := make(map[string]string, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		errsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	errsJson, err := json.Marshal(errsMap)
	if err != nil {
		return "", err
	}
	return string(errsJson), nil
}
