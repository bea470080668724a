package kernel

import (
	"fmt"
	"strings"
	"unicode"

	"fleetlog/internal/pkg/errs"
	"fleetlog/internal/pkg/guard"
)

const (
	// PlateMinLength is the minimum length of a normalized plate number.
	PlateMinLength = 4
	// PlateMaxLength is the maximum length of a normalized plate number.
	PlateMaxLength = 16
)

// ErrPlateIsNotConstructed is returned when attempting to use an improperly
// initialized Plate. Plates must be created via the NewPlate constructor.
var ErrPlateIsNotConstructed = errs.NewValueIsRequiredError(
	"plate must be created via NewPlate constructor")

// Plate represents a normalized vehicle plate number. Normalization trims
// surrounding whitespace and uppercases the value, so "abcd-123 " and
// "ABCD-123" are the same plate. Uniqueness checks across the fleet always
// operate on the normalized form.
//
// Plate is an immutable value object; the zero value is invalid.
//
// Example:
//
//	plate, err := kernel.NewPlate(" abcd-123 ")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(plate.String()) // Output: ABCD-123
type Plate struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewPlate creates a Plate from raw input, normalizing it first.
// The normalized value must be 4 to 16 characters of letters, digits and
// dashes; anything else fails with a validation error.
func NewPlate(raw string) (Plate, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))

	if normalized == "" {
		return Plate{}, errs.NewValueIsRequiredError("plateNumber")
	}
	if len(normalized) < PlateMinLength || len(normalized) > PlateMaxLength {
		return Plate{}, errs.NewValueIsOutOfRangeError(
			"plateNumber length", len(normalized), PlateMinLength, PlateMaxLength)
	}
	for _, r := range normalized {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' {
			return Plate{}, errs.NewValueIsInvalidErrorWithCause(
				"plateNumber", fmt.Errorf("character %q is not allowed", r))
		}
	}

	return Plate{
		value: normalized,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the normalized plate number.
func (p Plate) String() string {
	return p.value
}

// IsEqual reports whether two plates represent the same normalized value.
func (p Plate) IsEqual(other Plate) bool {
	return p.value == other.value
}

// Validate returns ErrPlateIsNotConstructed for a zero-value Plate.
func (p Plate) Validate() error {
	return p.guard.Validate(ErrPlateIsNotConstructed)
}
