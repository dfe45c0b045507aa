package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/nitfix/internal/wire"
)

// SubmitCmd returns the submit command
func SubmitCmd() *cobra.Command {
	var keepServing bool

	cmd := &cobra.Command{
		Use:   "submit <owner/repo>",
		Short: "Submit the pending fixes for a repository",
		Long: `Queue a submit task for the repository's saved fixes and run the
engine with the operator web form until the submission finishes. Interactive
questions (path choice, cleanup) are answered through the form.

With --serve the process keeps running after the queue drains, so further
submissions can be queued from the form side.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reponame := args[0]

			interaction := wire.Interaction()
			interaction.Start(wire.Controller())
			defer interaction.Stop()

			cfg := wire.Config()
			go func() {
				if err := wire.WebServer().ListenAndServe(cfg.WebAddr); err != nil {
					fmt.Println(err)
				}
			}()

			if err := wire.SubmitService().EnqueueSubmit(reponame); err != nil {
				return err
			}
			fmt.Printf("Submitting %s. Answer questions at http://%s/\n", reponame, cfg.WebAddr)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if keepServing {
				<-ctx.Done()
			} else if err := waitForDrain(ctx); err != nil {
				return err
			}

			for _, line := range interaction.Render().Messages {
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&keepServing, "serve", false, "keep the engine and web form running after the queue drains")
	return cmd
}

// waitForDrain blocks until the task queue is empty and no question is
// outstanding, or the context is canceled. The double check with a settle
// delay covers the window where the worker holds a dequeued task.
func waitForDrain(ctx context.Context) error {
	idle := func() bool {
		return wire.Controller().Pending() == 0 && wire.Interaction().Render().Question == nil
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(200 * time.Millisecond):
		}
		if !idle() {
			continue
		}
		time.Sleep(500 * time.Millisecond)
		if idle() {
			return nil
		}
	}
}
