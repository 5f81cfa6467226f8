package nan

// IsNegative reports whether the sign bit of nan is set. Diagnostics go to
// DefaultSink().
func IsNegative(nan float64) bool { return std.IsNegative(nan) }

// IsQuiet reports whether the quiet bit of nan is set.
func IsQuiet(nan float64) bool { return std.IsQuiet(nan) }

// Payload returns the 51-bit payload of nan.
func Payload(nan float64) uint64 { return std.Payload(nan) }

// Equal reports whether a and b share the same bit pattern.
func Equal(a, b float64) bool { return std.Equal(a, b) }

// Make builds a NaN. See Codec.Make.
func Make(negative, quiet bool, payload uint64) float64 {
	return std.Make(negative, quiet, payload)
}

func Decompose(nan float64) Fields { return std.Decompose(nan) }
