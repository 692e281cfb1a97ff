package main

import (
	"github.com/spf13/cobra"
)

func newProcessCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "process <transcript.json>...",
		Short: "Process transcript files once and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureDirectories(ctx.cfg); err != nil {
				return err
			}
			proc, st, err := ctx.buildProcessor(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer st.Close()
			return proc.ProcessAll(cmd.Context(), args)
		},
	}
}
