package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/nitfix/internal/wire"
)

// FixCmd returns the fix command group
func FixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Manage the saved-fix store",
	}
	cmd.AddCommand(fixAddCmd())
	cmd.AddCommand(fixListCmd())
	cmd.AddCommand(fixClearCmd())
	return cmd
}

func fixAddCmd() *cobra.Command {
	var repoPath string

	cmd := &cobra.Command{
		Use:   "add <owner/repo>",
		Short: "Save the staged correction of a working copy",
		Long: `Read the staged diff of the working copy, extract the correction
(the first differing word pair and the touched files), and save it for a
later submit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reponame := args[0]
			if repoPath == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("failed to get working directory: %w", err)
				}
				repoPath = cwd
			}

			rec, err := wire.FixService().StageFix(cmd.Context(), reponame, repoPath)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Saved fix for %s: %s -> %s\n", reponame,
				color.New(color.FgRed).Sprint(rec.DelWord),
				color.New(color.FgGreen).Sprint(rec.AddWord))
			fmt.Printf("  files: %s\n", strings.Join(rec.FilePaths, ", "))
			return nil
		},
	}

	cmd.Flags().StringVar(&repoPath, "repo", "", "working copy path (default: current directory)")
	return cmd
}

func fixListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pending fixes across all repositories",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := wire.FixService().ListFixes(cmd.Context())
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("No pending fixes.")
				return nil
			}
			for _, rec := range records {
				fmt.Printf("%s  %s -> %s  (%s)\n",
					color.New(color.FgCyan).Sprint(rec.Reponame),
					color.New(color.FgRed).Sprint(rec.DelWord),
					color.New(color.FgGreen).Sprint(rec.AddWord),
					strings.Join(rec.FilePaths, ", "))
			}
			return nil
		},
	}
}

func fixClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Drop all pending fixes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.FixService().ClearFixes(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("✓ Cleared pending fixes")
			return nil
		},
	}
}
