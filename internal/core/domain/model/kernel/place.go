package kernel

import (
	"eshift/internal/pkg/errs"
	"eshift/internal/pkg/guard"
)

// PlaceMaxLength bounds pickup and delivery location descriptions.
const PlaceMaxLength = 100

// ErrPlaceIsNotConstructed is returned when a zero-value Place is used.
var ErrPlaceIsNotConstructed = errs.NewValueIsRequiredError("place must be created via NewPlace constructor")

// Place is a free-form location a job starts from or delivers to, e.g. "12 Galle Road, Colombo 03".
// It is an immutable value object; the zero value is invalid.
type Place struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewPlace trims the description and enforces 1..PlaceMaxLength characters.
//
// Example:
//
//	start, err := kernel.NewPlace("startLocation", "Kandy")
//	if err != nil {
//	    return err
//	}
func NewPlace(paramName, value string) (Place, error) {
	v, err := RequiredText(paramName, value, PlaceMaxLength)
	if err != nil {
		return Place{}, err
	}
	return Place{value: v, guard: guard.NewConstructorGuard()}, nil
}

func (p Place) String() string {
	return p.value
}

func (p Place) IsEqual(other Place) bool {
	return p.value == other.value
}

func (p Place) Validate() error {
	return p.guard.Validate(ErrPlaceIsNotConstructed)
}
