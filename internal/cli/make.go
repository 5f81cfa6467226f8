package cli

import (
	"github.com/spf13/cobra"
)

type makeFlags struct {
	Negative bool
	Quiet    bool
	Payload  string
}

func newMakeCommand(a *app) *cobra.Command {
	var flags makeFlags

	cmd := &cobra.Command{
		Use:   "make",
		Short: "Build a NaN from a sign, a quiet bit and a payload",
		Long: `Build a NaN and print its bit pattern. Payloads wider than 51 bits are
reported and dropped, leaving a zero payload.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := parsePayload(flags.Payload)
			if err != nil {
				return err
			}
			v := a.codec.Make(flags.Negative, flags.Quiet, payload)

			// v was just built; decoding it must not repeat a diagnostic
			// for the Make(x, false, 0) infinity.
			r := newReport("", v, a.silentCodec().Decompose(v))
			return a.print.Report(a.out, r)
		},
	}

	cmd.Flags().BoolVarP(&flags.Negative, "negative", "n", false, "set the sign bit.")
	cmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "set the quiet bit.")
	cmd.Flags().StringVarP(&flags.Payload, "payload", "p", "0", "payload, in any base with a 0x, 0o or 0b prefix.")
	return cmd
}
