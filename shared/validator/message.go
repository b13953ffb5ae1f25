package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":     "missing required field: {field}",
		"notblank":     "missing required field: {field}",
		"gte":          "{field} must be greater than or equal to {param}",
		"lte":          "{field} must be less than or equal to {param}",
		"oneof":        "{field} must be one of {param}",
		"max":          "{field} must be less than or equal to {param}",
		"min":          "{field} must be greater than or equal to {param}",
		"email":        "{field} must be a valid email address",
		"calendardate": "{field} must be a date formatted as YYYY-MM-DD",
	}
)

// fieldPath drops the root struct name from the namespace, e.g. "customerInfo.email".
func fieldPath(valErr val.FieldError) string {
	namespace := valErr.Namespace()
	if _, rest, found := strings.Cut(namespace, "."); found {
		return rest
	}

	if valErr.Field() != "" {
		return valErr.Field()
	}

	return "value"
}

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			errStr := messages[valErr.Tag()]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", fieldPath(valErr))
				errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
