package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/nitfix/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show pending fixes, engine state, and recent activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := wire.FixService().ListFixes(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println("nitfix status")
			fmt.Println()
			if len(records) == 0 {
				fmt.Println("Pending fixes: (none)")
			} else {
				fmt.Printf("Pending fixes: %d\n", len(records))
				perRepo := make(map[string]int)
				for _, rec := range records {
					perRepo[rec.Reponame]++
				}
				for repo, n := range perRepo {
					fmt.Printf("  %s: %d\n", color.New(color.FgCyan).Sprint(repo), n)
				}
			}
			fmt.Println()

			if started := wire.Interaction().StartedAt(); started.IsZero() {
				fmt.Printf("Engine: %s\n", color.New(color.FgYellow).Sprint("stopped"))
			} else {
				fmt.Printf("Engine: %s (since %s), %d queued\n",
					color.New(color.FgGreen).Sprint("running"),
					started.Format("15:04:05"),
					wire.Controller().Pending())
			}
			fmt.Println()

			entries, err := wire.ActivityLog().Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("Recent activity: (none)")
				return nil
			}
			fmt.Println("Recent activity:")
			for _, e := range entries {
				fmt.Printf("  %s  %s %s  %s\n",
					e.CreatedAt,
					eventColor(e.Event),
					color.New(color.FgCyan).Sprint(e.Reponame),
					strings.TrimSpace(e.Detail))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "number of activity entries to show")
	return cmd
}

func eventColor(event string) string {
	switch event {
	case "submitted":
		return color.New(color.FgGreen).Sprint(event)
	case "failed":
		return color.New(color.FgRed).Sprint(event)
	case "cleaned":
		return color.New(color.FgBlue).Sprint(event)
	}
	return color.New(color.FgYellow).Sprint(event)
}
