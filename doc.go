/*
Package nan provides bit-level access to IEEE 754 double-precision NaNs: the
sign bit, the quiet bit and the 51-bit payload.

	Bit  63     sign     0x8000000000000000
	Bit  51     quiet    0x0008000000000000
	Bits 0..50  payload  0x0007FFFFFFFFFFFF

Simple example:

	n := nan.Make(true, true, 42)
	fmt.Println(nan.IsNegative(n), nan.IsQuiet(n), nan.Payload(n))
	// Output: true true 42

All operations are total. Passing a value that is not a NaN, or a payload that
does not fit in 51 bits, produces an advisory Diagnostic on a Sink but never
stops a value from being returned:

	IsNegative(nan float64) bool
	IsQuiet(nan float64) bool
	Payload(nan float64) uint64
	Equal(a, b float64) bool
	Make(negative, quiet bool, payload uint64) float64

The package-level functions report to DefaultSink(), which starts out writing
to os.Stderr. Use a Codec to choose a sink per caller, or SetDefaultSink to
replace it globally.

Equal compares bit patterns, not IEEE values: a NaN is Equal to itself.
*/
package nan
