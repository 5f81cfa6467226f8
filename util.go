package nan

import (
	"math"
)

type RandSource interface {
	Uint64() uint64
}

// RandNaN generates a NaN with random sign, quiet bit and payload from an
// external source. The result always satisfies IsNaN: if the source yields an
// empty mantissa, the payload is set to 1.
func RandNaN(source RandSource) float64 {
	u := source.Uint64() | ExponentMask
	if u&MantissaMask == 0 {
		u |= 1
	}
	return math.Float64frombits(u)
}
