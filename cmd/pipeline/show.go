package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/episode-flow/internal/content"
	"github.com/nguyentantai21042004/episode-flow/internal/export"
	"github.com/nguyentantai21042004/episode-flow/internal/store"
	"github.com/nguyentantai21042004/episode-flow/internal/transcript"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var (
		asJSON bool
		status string
	)

	cmd := &cobra.Command{
		Use:   "show [project-id]",
		Short: "List projects or show one project's content",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := ctx.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				var filter []content.Status
				if status != "" {
					filter = append(filter, content.Status(status))
				}
				projects, err := st.List(cmd.Context(), filter...)
				if err != nil {
					return err
				}
				return renderProjectList(out, projects)
			}

			p, err := st.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("project %s not found", args[0])
			}
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(p.Content)
			}
			return renderProject(out, p)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the stored bundle as JSON")
	cmd.Flags().StringVar(&status, "status", "", "Filter the list by status")
	return cmd
}

func renderProjectList(w io.Writer, projects []*store.Project) error {
	if len(projects) == 0 {
		_, err := fmt.Fprintln(w, "No projects")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PROJECT\tSTATUS\tUPDATED\tTITLE")
	for _, p := range projects {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Status, p.UpdatedAt.Local().Format("2006-01-02 15:04"), p.Title)
	}
	return tw.Flush()
}

func renderProject(w io.Writer, p *store.Project) error {
	fmt.Fprintf(w, "Project: %s\nStatus:  %s\n", p.ID, p.Status)
	if p.Error != "" {
		fmt.Fprintf(w, "Error:   %s\n", p.Error)
	}
	if secs := transcript.EstimateDurationFromSize(p.SizeBytes); secs > 0 {
		fmt.Fprintf(w, "Length:  ~%s\n", content.FormatTimestamp(float64(secs), content.FormatOptions{}))
	}
	if p.Content == nil {
		_, err := fmt.Fprintln(w, "\nNo content stored yet.")
		return err
	}
	title := p.Title
	if title == "" {
		title = p.ID
	}
	_, err := fmt.Fprintf(w, "\n%s", export.RenderMarkdown(title, p.Content))
	return err
}
