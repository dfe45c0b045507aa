package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/nitfix/internal/cli"
	"github.com/example/nitfix/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "nitfix",
		Short:   "nitfix - semi-automated typo fix submissions",
		Version: version.String(),
		Long: `nitfix stages small textual corrections from working copies and drives
them through issue and pull request submission, asking the operator through
a web form when a decision is needed.`,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.FixCmd())
	rootCmd.AddCommand(cli.SubmitCmd())
	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.AttachCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
