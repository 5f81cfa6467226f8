package cli

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	nan "github.com/shabbyrobe/go-nan"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatDump = "dump"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// report is what inspect and make print for each value.
type report struct {
	Input    string `json:"input,omitempty"`
	Bits     string `json:"bits"`
	NaN      bool   `json:"nan"`
	Negative bool   `json:"negative"`
	Quiet    bool   `json:"quiet"`
	Payload  uint64 `json:"payload"`
}

func newReport(input string, v float64, fields nan.Fields) report {
	return report{
		Input:    input,
		Bits:     fmt.Sprintf("%#016x", nan.BitsOf(v)),
		NaN:      nan.IsNaN(v),
		Negative: fields.Negative,
		Quiet:    fields.Quiet,
		Payload:  fields.Payload,
	}
}

type equalReport struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Equal bool   `json:"equal"`
}

type printer interface {
	Report(w io.Writer, r report) error
	Equal(w io.Writer, r equalReport) error
}

func newPrinter(format string) (printer, error) {
	switch format {
	case formatText:
		return textPrinter{}, nil
	case formatJSON:
		return jsonPrinter{}, nil
	case formatDump:
		return dumpPrinter{}, nil
	default:
		return nil, errors.Errorf("unknown format %q", format)
	}
}

type textPrinter struct{}

func (textPrinter) Report(w io.Writer, r report) error {
	_, err := fmt.Fprintf(w, "%s nan=%t negative=%t quiet=%t payload=%d\n",
		r.Bits, r.NaN, r.Negative, r.Quiet, r.Payload)
	return err
}

func (textPrinter) Equal(w io.Writer, r equalReport) error {
	_, err := fmt.Fprintln(w, r.Equal)
	return err
}

type jsonPrinter struct{}

func (jsonPrinter) Report(w io.Writer, r report) error {
	return errors.WithStack(json.NewEncoder(w).Encode(r))
}

func (jsonPrinter) Equal(w io.Writer, r equalReport) error {
	return errors.WithStack(json.NewEncoder(w).Encode(r))
}

var dumpConfig = spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}

type dumpPrinter struct{}

func (dumpPrinter) Report(w io.Writer, r report) error {
	dumpConfig.Fdump(w, r)
	return nil
}

func (dumpPrinter) Equal(w io.Writer, r equalReport) error {
	dumpConfig.Fdump(w, r)
	return nil
}
