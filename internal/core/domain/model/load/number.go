package load

import (
	"strings"

	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/pkg/errs"
	"eshift/internal/pkg/guard"

	"github.com/google/uuid"
)

const (
	// NumberMaxLength bounds stored load numbers.
	NumberMaxLength = 50

	generatedNumberLength = 8
)

var ErrNumberIsNotConstructed = errs.NewValueIsRequiredError("load number must be created via NewNumber or NumberFromString")

// Number is the human-facing reference printed on load paperwork, e.g. "9F86D081".
// It is not guaranteed unique; identity is the load's UUID.
type Number struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewNumber generates a fresh token: the first eight hex digits of a random UUID, upper-cased.
func NewNumber() Number {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return Number{
		value: strings.ToUpper(raw[:generatedNumberLength]),
		guard: guard.NewConstructorGuard(),
	}
}

// NumberFromString restores a stored load number.
func NumberFromString(s string) (Number, error) {
	v, err := kernel.RequiredText("loadNumber", s, NumberMaxLength)
	if err != nil {
		return Number{}, err
	}
	return Number{value: v, guard: guard.NewConstructorGuard()}, nil
}

func (n Number) String() string {
	return n.value
}

func (n Number) Validate() error {
	return n.guard.Validate(ErrNumberIsNotConstructed)
}
