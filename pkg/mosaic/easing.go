package mosaic

import (
	"math"

	"github.com/matzehuels/mosaic/pkg/errors"
)

// Easing maps raw progress in [0,1] to a blend factor in [0,1]. Every
// easing returns 0 at 0 and 1 at 1.
type Easing func(t float64) float64

// Easing names accepted by [EasingByName].
const (
	EasingLinear     = "linear"
	EasingInOutQuad  = "easeInOutQuad"
	EasingInOutCubic = "easeInOutCubic"
)

// EasingNames lists the supported easing names.
var EasingNames = []string{EasingLinear, EasingInOutQuad, EasingInOutCubic}

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseInOutQuad accelerates quadratically then decelerates.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// EaseInOutCubic accelerates cubically then decelerates.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EasingByName returns the named easing.
func EasingByName(name string) (Easing, error) {
	switch name {
	case EasingLinear:
		return Linear, nil
	case EasingInOutQuad:
		return EaseInOutQuad, nil
	case EasingInOutCubic:
		return EaseInOutCubic, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidEasing,
			"invalid easing: %q (must be one of: linear, easeInOutQuad, easeInOutCubic)", name)
	}
}
