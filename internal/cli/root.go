package cli

import (
	"io"

	nan "github.com/shabbyrobe/go-nan"
	"github.com/shabbyrobe/go-nan/zapsink"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	DEFAULT_FORMAT    = formatText
	DEFAULT_LOG_LEVEL = "warn"
)

// Options holds the persistent flags shared by every subcommand.
type Options struct {
	Format           string
	LogLevel         string
	QuietDiagnostics bool
}

type app struct {
	opts   Options
	out    io.Writer
	errOut io.Writer
	logger *zap.Logger
	codec  nan.Codec
	print  printer
}

// NewRootCommand builds the nanbits command tree. Results are written to out,
// diagnostics and log output to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	rootCmd := &cobra.Command{
		Use:   "nanbits",
		Short: "Inspect and build IEEE 754 NaN bit patterns",
		Long: `nanbits reads and builds double-precision NaNs, showing the sign bit,
the quiet bit and the 51-bit payload.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVar(&a.opts.Format, "format", DEFAULT_FORMAT, "output format: text, json or dump.")
	rootCmd.PersistentFlags().StringVar(&a.opts.LogLevel, "log-level", DEFAULT_LOG_LEVEL, "minimum level of log output: debug, info, warn or error.")
	rootCmd.PersistentFlags().BoolVar(&a.opts.QuietDiagnostics, "quiet-diagnostics", false, "do not report non-NaN inputs or invalid payloads.")

	rootCmd.AddCommand(
		newInspectCommand(a),
		newMakeCommand(a),
		newEqualCommand(a),
	)
	return rootCmd
}

func (a *app) setup() error {
	p, err := newPrinter(a.opts.Format)
	if err != nil {
		return err
	}
	a.print = p

	logger, err := newLogger(a.errOut, a.opts.LogLevel)
	if err != nil {
		return err
	}
	a.logger = logger

	if a.opts.QuietDiagnostics {
		a.codec = nan.Codec{Sink: nan.Discard}
	} else {
		a.codec = nan.Codec{Sink: zapsink.New(logger)}
	}
	return nil
}

func (a *app) silentCodec() nan.Codec {
	return nan.Codec{Sink: nan.Discard}
}
