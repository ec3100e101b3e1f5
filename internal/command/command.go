package command

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rugwirobaker/uptime/internal/flag"
)

type Runner func(context.Context) error

// New returns a command that takes no positional arguments and hands fn a
// context carrying the command's flags.
func New(usage, short, long string, fn Runner) *cobra.Command {
	return &cobra.Command{
		Use:   usage,
		Short: short,
		Long:  long,
		Args:  cobra.NoArgs,
		RunE:  newRunE(fn),
	}
}

func newRunE(fn Runner) func(*cobra.Command, []string) error {
	if fn == nil {
		return nil
	}
	return func(cmd *cobra.Command, args []string) error {
		ctx := flag.NewContext(cmd.Context(), cmd.Flags())
		return fn(ctx)
	}
}
