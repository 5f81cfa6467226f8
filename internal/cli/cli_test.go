package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func run(args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	cmd := NewRootCommand(&out, &errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootFlags(t *testing.T) {
	tt := assert.WrapTB(t)
	cmd := NewRootCommand(&bytes.Buffer{}, &bytes.Buffer{})
	flags := cmd.PersistentFlags()
	tt.MustEqual(DEFAULT_FORMAT, flags.Lookup("format").Value.String())
	tt.MustEqual(DEFAULT_LOG_LEVEL, flags.Lookup("log-level").Value.String())
	tt.MustEqual("false", flags.Lookup("quiet-diagnostics").Value.String())
}

func TestInspect(t *testing.T) {
	for _, tc := range []struct {
		args []string
		out  string
		diag string
	}{
		{
			args: []string{"inspect", "0x7ff800000000002a"},
			out:  "0x7ff800000000002a nan=true negative=false quiet=true payload=42\n",
		},
		{
			args: []string{"inspect", "0XFFF0000000000001"},
			out:  "0xfff0000000000001 nan=true negative=true quiet=false payload=1\n",
		},
		{
			args: []string{"inspect", "NaN"},
			out:  "0x7ff8000000000001 nan=true negative=false quiet=true payload=1\n",
		},
		{
			args: []string{"inspect", "0x7ff8000000000000", "0xfff8000000000000"},
			out: "" +
				"0x7ff8000000000000 nan=true negative=false quiet=true payload=0\n" +
				"0xfff8000000000000 nan=true negative=true quiet=true payload=0\n",
		},
		{
			args: []string{"inspect", "1"},
			out:  "0x3ff0000000000000 nan=false negative=false quiet=false payload=0\n",
			diag: "decompose: 1.000000 is not a NaN value.",
		},
		{
			args: []string{"inspect", "--", "-Inf"},
			out:  "0xfff0000000000000 nan=false negative=true quiet=false payload=0\n",
			diag: "decompose: -Inf is not a NaN value.",
		},
	} {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, errOut, err := run(tc.args...)
			tt.MustOK(err)
			tt.MustEqual(tc.out, out)
			if tc.diag == "" {
				tt.MustEqual("", errOut)
			} else {
				tt.MustAssert(strings.Contains(errOut, tc.diag), "stderr: %q", errOut)
				tt.MustAssert(strings.Contains(errOut, "WARN"), "stderr: %q", errOut)
			}
		})
	}
}

func TestMake(t *testing.T) {
	for _, tc := range []struct {
		args []string
		out  string
		diag string
	}{
		{
			args: []string{"make", "--negative", "--quiet", "--payload", "42"},
			out:  "0xfff800000000002a nan=true negative=true quiet=true payload=42\n",
		},
		{
			args: []string{"make", "-q"},
			out:  "0x7ff8000000000000 nan=true negative=false quiet=true payload=0\n",
		},
		{
			args: []string{"make", "-p", "0b101"},
			out:  "0x7ff0000000000005 nan=true negative=false quiet=false payload=5\n",
		},
		{
			args: []string{"make", "-p", "0x7ffffffffffff"},
			out:  "0x7ff7ffffffffffff nan=true negative=false quiet=false payload=2251799813685247\n",
		},
		{
			// An empty mantissa is an infinity; make prints it without complaint.
			args: []string{"make"},
			out:  "0x7ff0000000000000 nan=false negative=false quiet=false payload=0\n",
		},
		{
			args: []string{"make", "-q", "-p", "0x8000000000000"},
			out:  "0x7ff8000000000000 nan=true negative=false quiet=true payload=0\n",
			diag: "make_nan: 8000000000000: invalid payload",
		},
	} {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, errOut, err := run(tc.args...)
			tt.MustOK(err)
			tt.MustEqual(tc.out, out)
			if tc.diag == "" {
				tt.MustEqual("", errOut)
			} else {
				tt.MustAssert(strings.Contains(errOut, tc.diag), "stderr: %q", errOut)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	for _, tc := range []struct {
		a, b  string
		out   string
		diags int
	}{
		{"NaN", "NaN", "true\n", 0},
		{"0x7ff8000000000001", "NaN", "true\n", 0},
		{"0x7ff8000000000001", "0xfff8000000000001", "false\n", 0},
		{"0", "-0", "false\n", 2},
		{"1.5", "0x3ff8000000000000", "true\n", 2},
	} {
		t.Run(tc.a+"=="+tc.b, func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, errOut, err := run("equal", "--", tc.a, tc.b)
			tt.MustOK(err)
			tt.MustEqual(tc.out, out)
			tt.MustEqual(tc.diags, strings.Count(errOut, "nan_equal:"))
		})
	}
}

func TestQuietDiagnostics(t *testing.T) {
	tt := assert.WrapTB(t)
	out, errOut, err := run("--quiet-diagnostics", "make", "-p", "0xffffffffffffffff")
	tt.MustOK(err)
	tt.MustEqual("0x7ff0000000000000 nan=false negative=false quiet=false payload=0\n", out)
	tt.MustEqual("", errOut)

	_, errOut, err = run("--quiet-diagnostics", "inspect", "1")
	tt.MustOK(err)
	tt.MustEqual("", errOut)
}

func TestLogLevelHidesDiagnostics(t *testing.T) {
	tt := assert.WrapTB(t)
	_, errOut, err := run("--log-level", "error", "inspect", "1")
	tt.MustOK(err)
	tt.MustEqual("", errOut)
}

func TestFormatJSON(t *testing.T) {
	tt := assert.WrapTB(t)

	out, _, err := run("--format", "json", "inspect", "0x7ff8000000000001")
	tt.MustOK(err)
	tt.MustEqual(`{"input":"0x7ff8000000000001","bits":"0x7ff8000000000001","nan":true,"negative":false,"quiet":true,"payload":1}`+"\n", out)

	out, _, err = run("--format", "json", "make", "-n", "-p", "9")
	tt.MustOK(err)
	tt.MustEqual(`{"bits":"0xfff0000000000009","nan":true,"negative":true,"quiet":false,"payload":9}`+"\n", out)

	out, _, err = run("--format", "json", "equal", "NaN", "NaN")
	tt.MustOK(err)
	tt.MustEqual(`{"a":"NaN","b":"NaN","equal":true}`+"\n", out)
}

func TestFormatDump(t *testing.T) {
	tt := assert.WrapTB(t)
	out, _, err := run("--format", "dump", "make", "-q", "-p", "42")
	tt.MustOK(err)
	tt.MustAssert(strings.Contains(out, `Bits: (string) (len=18) "0x7ff800000000002a"`), out)
	tt.MustAssert(strings.Contains(out, "Payload: (uint64) 42"), out)

	out, _, err = run("--format", "dump", "equal", "NaN", "1")
	tt.MustOK(err)
	tt.MustAssert(strings.Contains(out, "Equal: (bool) false"), out)
}

func TestErrors(t *testing.T) {
	for _, tc := range []struct {
		args []string
		err  string
	}{
		{[]string{"inspect", "zzz"}, `invalid value "zzz"`},
		{[]string{"inspect", "0xzz"}, `invalid bit pattern "0xzz"`},
		{[]string{"inspect", "0x1ffffffffffffffff"}, `invalid bit pattern "0x1ffffffffffffffff"`},
		{[]string{"inspect"}, "requires at least 1 arg"},
		{[]string{"equal", "NaN"}, "accepts 2 arg"},
		{[]string{"make", "-p", "-1"}, `invalid payload "-1"`},
		{[]string{"make", "extra"}, "unknown command"},
		{[]string{"--format", "xml", "inspect", "1"}, `unknown format "xml"`},
		{[]string{"--log-level", "loud", "inspect", "1"}, `invalid log level "loud"`},
	} {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, _, err := run(tc.args...)
			tt.MustAssert(err != nil)
			tt.MustAssert(strings.Contains(err.Error(), tc.err), "error: %v", err)
			tt.MustEqual("", out)
		})
	}
}
