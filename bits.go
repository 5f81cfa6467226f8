package nan

import (
	"math"
)

// BitsOf returns the exact bit pattern of f. Unlike arithmetic or formatting,
// this never normalises a NaN payload away.
func BitsOf(f float64) uint64 { return math.Float64bits(f) }

// FromBits is the counterpart of BitsOf.
func FromBits(u uint64) float64 { return math.Float64frombits(u) }

// IsNaN reports whether f is a NaN: the exponent is all ones and the mantissa
// is nonzero. The classification works on the bit pattern only, so it does
// not depend on how the hardware compares NaNs.
func IsNaN(f float64) bool {
	u := math.Float64bits(f)
	return u&ExponentMask == ExponentMask && u&MantissaMask != 0
}
