package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/storygraph/storygraph/internal/server"
)

const shutdownTimeout = 10 * time.Second

// newServeCmd creates the serve command, running the HTTP graph generation
// API until the context is cancelled.
func newServeCmd(flags *rootFlags) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP graph generation server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			rt, err := setup(ctx, flags)
			if err != nil {
				return err
			}
			defer rt.close()

			addr := rt.cfg.Server.Listen
			if listen != "" {
				addr = listen
			}

			srv := &http.Server{
				Addr:    addr,
				Handler: server.New(rt.runner(), rt.gw, logger).Handler(),
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening", "addr", addr, "backend", rt.gw.BaseURL())
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides config)")

	return cmd
}
