package nan

import (
	"math"
)

// Codec reads and builds NaNs, reporting advisory diagnostics to Sink. The
// zero value is ready to use and reports to DefaultSink().
//
// Every method is total: diagnostics never prevent a result from being
// returned. Values that are not NaNs are interpreted through the same masks
// as real NaNs.
type Codec struct {
	Sink Sink
}

// std backs the package-level functions.
var std Codec

func (c Codec) sink() Sink {
	if c.Sink != nil {
		return c.Sink
	}
	return DefaultSink()
}

// check is advisory only. It never changes what the caller computes.
func (c Codec) check(f float64, caller string) {
	if !IsNaN(f) {
		c.sink().Diagnose(Diagnostic{Kind: NotNaN, Caller: caller, Value: f})
	}
}

// IsNegative reports whether the sign bit of nan is set.
func (c Codec) IsNegative(nan float64) bool {
	c.check(nan, CallerIsNegative)
	return math.Float64bits(nan)&SignMask != 0
}

// IsQuiet reports whether the quiet bit of nan is set.
func (c Codec) IsQuiet(nan float64) bool {
	c.check(nan, CallerIsQuiet)
	return math.Float64bits(nan)&QuietMask != 0
}

// Payload returns the low 51 bits of nan.
func (c Codec) Payload(nan float64) uint64 {
	c.check(nan, CallerPayload)
	return math.Float64bits(nan) & PayloadMask
}

// Equal reports whether a and b have identical bit patterns. This is not IEEE
// equality: a NaN is Equal to itself, and 0 is not Equal to -0.
func (c Codec) Equal(a, b float64) bool {
	c.check(a, CallerEqual)
	c.check(b, CallerEqual)
	return math.Float64bits(a) == math.Float64bits(b)
}

// Make returns a NaN with the given sign, quiet bit and payload.
//
// A payload above MaxPayload is reported as an InvalidPayload diagnostic and
// dropped: the result carries a zero payload rather than a truncated one.
//
// Make(neg, false, 0) has an empty mantissa, so it is an infinity rather than
// a NaN. It is returned as is.
func (c Codec) Make(negative, quiet bool, payload uint64) float64 {
	u := canonicalBits
	if negative {
		u |= SignMask
	}
	if quiet {
		u |= QuietMask
	}
	if payload > MaxPayload {
		c.sink().Diagnose(Diagnostic{Kind: InvalidPayload, Caller: CallerMake, Payload: payload})
	} else {
		u |= payload
	}
	return math.Float64frombits(u)
}

// Decompose returns all three fields of nan, reporting at most one NotNaN
// diagnostic.
func (c Codec) Decompose(nan float64) Fields {
	c.check(nan, CallerDecompose)
	u := math.Float64bits(nan)
	return Fields{
		Negative: u&SignMask != 0,
		Quiet:    u&QuietMask != 0,
		Payload:  u & PayloadMask,
	}
}
