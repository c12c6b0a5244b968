package snappea

import (
	"math"
	"math/cmplx"
)

// Helpers for complex values. Holonomies and complex lengths are plain
// complex128 values; only the operations that go beyond native
// arithmetic live here.

// maxDecimalPlaces is the precision ceiling reported by
// DecimalPlacesOfAccuracy. A float64 carries roughly 15-16 significant
// decimal digits, so claiming more agreement than that is meaningless.
const maxDecimalPlaces = 15

// DecimalPlacesOfAccuracy estimates how many leading decimal digits
// two complex values have in common, measured as
// floor(log10(|x| / |x - y|)) and clamped to [0, 15].
//
// It is used as a confidence indicator: feeding it the results of two
// successive solution refinements says how many digits of the answer
// can be trusted. Identical inputs report the full 15 digits.
func DecimalPlacesOfAccuracy(x, y complex128) int {
	diff := cmplx.Abs(x - y)
	size := cmplx.Abs(x)

	if diff == 0 {
		return maxDecimalPlaces
	}
	if size == 0 {
		return 0
	}

	digits := int(math.Floor(math.Log10(size / diff)))
	if digits < 0 {
		return 0
	}
	if digits > maxDecimalPlaces {
		return maxDecimalPlaces
	}
	return digits
}
