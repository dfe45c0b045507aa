// Package cli implements the nitfix cobra commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/nitfix/internal/config"
	"github.com/example/nitfix/internal/db"
	"github.com/example/nitfix/internal/version"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var githubUser string
	var workspaceDir string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the nitfix state directory",
		Long:  `Initialize ~/.nitfix with the database and a default config.json.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing nitfix database at %s\n", dbPath)
			if _, err := db.GetDB(); err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			fmt.Println("✓ Database initialized successfully")

			cfg := &config.Config{
				Version:      version.String(),
				GithubUser:   githubUser,
				WebAddr:      config.DefaultWebAddr,
				BaseBranch:   config.DefaultBaseBranch,
				WorkspaceDir: workspaceDir,
			}
			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Println("✓ Config file created at ~/.nitfix/config.json")
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  stage a correction in a working copy, then: nitfix fix add <owner/repo>")
			fmt.Println("  nitfix status")

			return nil
		},
	}

	cmd.Flags().StringVar(&githubUser, "github-user", "", "fork owner used for prepared-branch links")
	cmd.Flags().StringVar(&workspaceDir, "workspace-dir", "", "directory where working copies are checked out")
	return cmd
}
