package torque

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is wrapped by every error returned from Validate.
var ErrInvalidInput = errors.New("invalid input")

// Validate reports every negative or non-finite length and mass.
// Calc does not call it.
func Validate(links [NumLinks]Link, servos ServoMasses) error {
	var errs []error
	for i, l := range links {
		if err := CheckValue(l.LengthMM); err != nil {
			errs = append(errs, fmt.Errorf("link %d length: %w", i, err))
		}
		if err := CheckValue(l.MassG); err != nil {
			errs = append(errs, fmt.Errorf("link %d mass: %w", i, err))
		}
	}
	if err := CheckValue(servos.Base); err != nil {
		errs = append(errs, fmt.Errorf("base servo mass: %w", err))
	}
	if err := CheckValue(servos.Joint); err != nil {
		errs = append(errs, fmt.Errorf("joint servo mass: %w", err))
	}
	return errors.Join(errs...)
}

// CheckValue rejects negative and non-finite lengths or masses.
func CheckValue(v float64) error {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return fmt.Errorf("%w: %v is not finite", ErrInvalidInput, v)
	case v < 0:
		return fmt.Errorf("%w: %v is negative", ErrInvalidInput, v)
	}
	return nil
}
