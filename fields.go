package nan

import (
	"strconv"
)

// Fields holds the three parts of a NaN this package cares about.
type Fields struct {
	Negative bool   `json:"negative"`
	Quiet    bool   `json:"quiet"`
	Payload  uint64 `json:"payload"`
}

// NaN builds the value described by n. Diagnostics go to DefaultSink().
func (n Fields) NaN() float64 {
	return std.Make(n.Negative, n.Quiet, n.Payload)
}

// String renders n like "-qNaN(42)" or "+sNaN(0)".
func (n Fields) String() string {
	var buf = make([]byte, 0, 32)
	if n.Negative {
		buf = append(buf, '-')
	} else {
		buf = append(buf, '+')
	}
	if n.Quiet {
		buf = append(buf, 'q')
	} else {
		buf = append(buf, 's')
	}
	buf = append(buf, "NaN("...)
	buf = strconv.AppendUint(buf, n.Payload, 10)
	buf = append(buf, ')')
	return string(buf)
}
