package cli

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pacmaze/internal/server"
	"github.com/matzehuels/pacmaze/pkg/storage"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered graphs over HTTP",
		Long: `Serve starts an HTTP server that renders graphs on request:

  GET /users/{login}/graph.svg?theme=light&seed=42
  GET /users/{login}/latest.svg
  GET /users/{login}/calendar.json
  GET /themes
  GET /healthz

Renders are archived in MongoDB when PACMAZE_MONGO_URI is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.settings().Server.Addr
			}
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string) error {
	sc := c.settings().Server
	store, err := storage.Open(ctx, sc.MongoURI, sc.MongoDB)
	if err != nil {
		return err
	}
	if sc.MongoURI != "" {
		c.Logger.Info("archiving renders", "database", sc.MongoDB, "collection", storage.Collection)
	}

	runner, err := c.newRunner(false, store)
	if err != nil {
		store.Close()
		return err
	}
	defer runner.Close()
	if runner.Source == nil {
		printWarning("GITHUB_TOKEN is not set; graph requests will fail with 401")
	}

	err = server.New(runner, c.Logger).ListenAndServe(ctx, addr)
	if stderrors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
