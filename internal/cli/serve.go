package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridkit/internal/server"
	"github.com/matzehuels/gridkit/pkg/board"
)

// serveCommand creates the serve command for exposing a board over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		configPath string
		boardPath  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a board over HTTP",
		Long: `Serve a board over HTTP.

The serve command holds a board in memory and exposes it through a JSON
API: read the packed layout, append, remove, resize, and reorder tiles,
and query the content height. The board starts empty unless a board file
is given with -b.

The server runs until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, configPath, boardPath)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "listen address")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "grid metrics TOML file")
	cmd.Flags().StringVarP(&boardPath, "board", "b", "", "board file to load on startup (.json, .yaml)")

	return cmd
}

// runServe builds the server and blocks until the context is canceled.
func (c *CLI) runServe(ctx context.Context, addr, configPath, boardPath string) error {
	var b board.Board
	if boardPath != "" {
		loaded, err := board.ReadFile(boardPath)
		if err != nil {
			return fmt.Errorf("load board %s: %w", boardPath, err)
		}
		b = loaded
	}

	cfg, err := resolveConfig(configPath, b)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	srv := server.New(c.Logger, cfg, b.Items())

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr, "tiles", len(b.Tiles))
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		c.Logger.Info("server stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	}
}
