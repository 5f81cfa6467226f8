package cli

import (
	"github.com/spf13/cobra"
)

func newEqualCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "equal A B",
		Short: "Report whether two values have identical bit patterns",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			va, err := parseValue(args[0])
			if err != nil {
				return err
			}
			vb, err := parseValue(args[1])
			if err != nil {
				return err
			}
			return a.print.Equal(a.out, equalReport{A: args[0], B: args[1], Equal: a.codec.Equal(va, vb)})
		},
	}
}
