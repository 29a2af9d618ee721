package kernel

import (
	"fmt"

	"eshift/internal/pkg/errs"
	"eshift/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrWeightIsNotConstructed is returned when a zero-value Weight is used.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError("weight must be created via NewWeight constructor")

// MinWeightKg is the smallest weight any load or product may declare.
var MinWeightKg = decimal.RequireFromString("0.01")

// Weight is a mass in kilograms with two decimal places, as declared by a customer.
// Each owner supplies its own upper bound (a whole load may weigh more than a single product).
type Weight struct { //nolint:recvcheck //using for validation
	kg    decimal.Decimal
	guard guard.ConstructorGuard
}

// NewWeight rounds kg to two decimals and checks MinWeightKg <= kg <= maxKg.
//
// Parameters:
//   - paramName: the field reported in validation errors
//   - kg: the declared weight
//   - maxKg: the owner's upper bound
//
// Example:
//
//	w, err := kernel.NewWeight("weightKg", decimal.RequireFromString("12.5"), decimal.NewFromInt(1000))
func NewWeight(paramName string, kg decimal.Decimal, maxKg decimal.Decimal) (Weight, error) {
	rounded := kg.Round(2)
	if rounded.LessThan(MinWeightKg) || rounded.GreaterThan(maxKg) {
		return Weight{}, errs.NewValueIsOutOfRangeError(paramName, rounded.String(), MinWeightKg.String(), maxKg.String())
	}
	return Weight{kg: rounded, guard: guard.NewConstructorGuard()}, nil
}

// WeightFromString parses a decimal string such as "250.75" and applies NewWeight.
func WeightFromString(paramName, s string, maxKg decimal.Decimal) (Weight, error) {
	kg, err := decimal.NewFromString(s)
	if err != nil {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%q is not a number", s))
	}
	return NewWeight(paramName, kg, maxKg)
}

// Kg returns the weight as a decimal.
func (w Weight) Kg() decimal.Decimal {
	return w.kg
}

// Times returns the total weight of n units.
func (w Weight) Times(n int) decimal.Decimal {
	return w.kg.Mul(decimal.NewFromInt(int64(n)))
}

func (w Weight) String() string {
	return w.kg.StringFixed(2)
}

func (w Weight) IsEqual(other Weight) bool {
	return w.kg.Equal(other.kg)
}

func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}
