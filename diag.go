package nan

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// Kind identifies one of the two advisory conditions this package reports.
type Kind int

const (
	// NotNaN is reported when an accessor receives a value that fails the
	// NaN classification. The accessor still returns a result.
	NotNaN Kind = iota + 1

	// InvalidPayload is reported when Make receives a payload wider than 51
	// bits. The payload is dropped and Make still returns a value.
	InvalidPayload
)

func (k Kind) String() string {
	switch k {
	case NotNaN:
		return "not-nan"
	case InvalidPayload:
		return "invalid-payload"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Diagnostic describes a single advisory condition. Diagnostics never change
// the value an operation returns.
type Diagnostic struct {
	Kind   Kind
	Caller string

	// Value is the offending operand of a NotNaN diagnostic.
	Value float64

	// Payload is the rejected payload of an InvalidPayload diagnostic.
	Payload uint64
}

func (d Diagnostic) String() string {
	if d.Kind == InvalidPayload {
		return fmt.Sprintf("%s: %x: invalid payload", d.Caller, d.Payload)
	}
	return fmt.Sprintf("%s: %f is not a NaN value.", d.Caller, d.Value)
}

// Sink receives diagnostics. Implementations must be safe for concurrent use
// if the Codec using them is shared between goroutines.
type Sink interface {
	Diagnose(d Diagnostic)
}

// SinkFunc adapts an ordinary function to a Sink.
type SinkFunc func(d Diagnostic)

func (fn SinkFunc) Diagnose(d Diagnostic) { fn(d) }

// Discard drops every diagnostic.
var Discard Sink = SinkFunc(func(Diagnostic) {})

// Stderr writes one line per diagnostic to os.Stderr. It is the initial
// default sink.
var Stderr Sink = NewWriterSink(os.Stderr)

// WriterSink writes one line per diagnostic to an io.Writer. Writes are
// serialised, so lines from concurrent callers are never torn, though their
// order is unspecified.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (ws *WriterSink) Diagnose(d Diagnostic) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	// Write errors are ignored.
	_, _ = fmt.Fprintln(ws.w, d.String())
}

// atomic.Value requires every Store to use the same concrete type.
type sinkHolder struct{ Sink }

var defaultSink atomic.Value

func init() {
	defaultSink.Store(sinkHolder{Stderr})
}

// DefaultSink returns the sink used by the package-level functions and by any
// Codec with a nil Sink.
func DefaultSink() Sink {
	return defaultSink.Load().(sinkHolder).Sink
}

// SetDefaultSink replaces the default sink and returns the previous one. A nil
// sink is treated as Discard.
func SetDefaultSink(s Sink) (prev Sink) {
	if s == nil {
		s = Discard
	}
	return defaultSink.Swap(sinkHolder{s}).(sinkHolder).Sink
}
