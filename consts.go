package nan

// Bit layout of an IEEE 754 binary64 value as seen by this package.
const (
	SignMask     uint64 = 1 << 63
	QuietMask    uint64 = 1 << 51
	PayloadMask  uint64 = QuietMask - 1
	ExponentMask uint64 = 0x7FF << mantissaBits
	MantissaMask uint64 = 1<<mantissaBits - 1

	// MaxPayload is the largest payload Make will accept.
	MaxPayload = PayloadMask

	mantissaBits = 64 - 11 - 1

	// canonicalBits seeds every NaN built by Make. Only the exponent is set, so
	// the sign, quiet and payload arguments fully determine the result.
	canonicalBits = ExponentMask
)

// Caller labels used in NotNaN diagnostics. They follow the names of the
// numeric tower primitives each operation implements.
const (
	CallerIsNegative = "is_negative"
	CallerIsQuiet    = "is_quiet"
	CallerPayload    = "payload_of"
	CallerEqual      = "nan_equal"
	CallerMake       = "make_nan"
	CallerDecompose  = "decompose"
)
