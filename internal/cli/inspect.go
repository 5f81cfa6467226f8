package cli

import (
	"github.com/spf13/cobra"
)

func newInspectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect VALUE...",
		Short: "Show the sign, quiet bit and payload of each value",
		Long: `Each VALUE is either a raw bit pattern with a 0x prefix
(0x7ff800000000002a) or a floating point literal (NaN, -Inf, 1.5).
Values that are not NaNs are reported but still decoded.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				v, err := parseValue(arg)
				if err != nil {
					return err
				}
				if err := a.print.Report(a.out, newReport(arg, v, a.codec.Decompose(v))); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
