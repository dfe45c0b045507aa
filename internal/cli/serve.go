package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/nitfix/internal/wire"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the engine and the operator web form",
		Long: `Start the task worker and serve the operator form until interrupted.
The form shows the message log and any question a task is blocked on.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			interaction := wire.Interaction()
			interaction.Start(wire.Controller())
			defer interaction.Stop()

			cfg := wire.Config()
			errCh := make(chan error, 1)
			go func() {
				errCh <- wire.WebServer().ListenAndServe(cfg.WebAddr)
			}()
			fmt.Printf("Serving operator form at http://%s/\n", cfg.WebAddr)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			select {
			case <-ctx.Done():
				fmt.Println("Shutting down")
				return nil
			case err := <-errCh:
				return err
			}
		},
	}
}
