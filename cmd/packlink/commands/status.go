package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/packlink/internal/core/domain"
	"go.trai.ch/packlink/internal/ui/style"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the packages linked so far",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := c.app.Status(cmd.Context())
			if err != nil {
				return err
			}
			renderStatus(cmd.OutOrStdout(), records)
			return nil
		},
	}
}

func renderStatus(w io.Writer, records []domain.LinkRecord) {
	if len(records) == 0 {
		_, _ = fmt.Fprintln(w, style.Muted.Render("No links recorded."))
		return
	}

	for _, r := range records {
		_, _ = fmt.Fprintf(w, "%s %s %s\n",
			style.Success.Render(style.Dot),
			style.Heading.Render(r.Name+"@"+r.Version),
			style.Muted.Render(r.Source),
		)
		for _, target := range r.Targets {
			_, _ = fmt.Fprintf(w, "    %s %s\n", style.Arrow, target)
		}
		_, _ = fmt.Fprintln(w, style.Muted.Render(fmt.Sprintf(
			"    archive %s, linked %s", r.ArchiveHash, r.Timestamp.Format(time.RFC3339),
		)))
	}
}
