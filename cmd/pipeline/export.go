package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/episode-flow/internal/export"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export <project-id>",
		Short: "Write a stored project's content kit as markdown and docx",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := ctx.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			p, err := st.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if p == nil || p.Content == nil {
				return fmt.Errorf("project %s has no content", args[0])
			}

			if dir == "" {
				dir = ctx.cfg.Paths.Exports
			}
			title := p.Title
			if title == "" {
				title = p.ID
			}
			path, err := export.New(dir, ctx.log).Export(cmd.Context(), p.ID, title, p.Content)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "out", "o", "", "Output directory (defaults to paths.exports)")
	return cmd
}
