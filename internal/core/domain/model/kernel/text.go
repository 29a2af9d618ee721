package kernel

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"eshift/internal/pkg/errs"
)

// RequiredText trims value and checks it is non-empty and at most maxLen characters long.
func RequiredText(paramName, value string, maxLen int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errs.NewValueIsRequiredError(paramName)
	}
	return checkLength(paramName, value, maxLen)
}

// OptionalText trims value and checks it is at most maxLen characters long. Empty is allowed.
func OptionalText(paramName, value string, maxLen int) (string, error) {
	return checkLength(paramName, strings.TrimSpace(value), maxLen)
}

func checkLength(paramName, value string, maxLen int) (string, error) {
	if n := utf8.RuneCountInString(value); n > maxLen {
		return "", errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("%d characters exceed the limit of %d", n, maxLen),
		)
	}
	return value, nil
}
