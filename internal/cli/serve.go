package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"libdb.so/hserve"

	"github.com/jaminalder/tttai/internal/app"
	"github.com/jaminalder/tttai/internal/web"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the AI over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, logger, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if addr != "" {
				conf.HTTPAddr = addr
			}
			mark, err := conf.Mark()
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			svc := app.NewService(logger)
			handler := web.NewServer(svc, mark, logger)
			return serve(ctx, logger, conf.HTTPAddr, handler, svc, conf.GameTTL)
		},
	}

	cmd.Flags().StringVarP(&addr, "listen-addr", "l", "", "address to listen on (overrides http-addr)")
	return cmd
}

func serve(ctx context.Context, logger *slog.Logger, addr string, handler http.Handler, svc *app.Service, ttl time.Duration) error {
	errg, ctx := errgroup.WithContext(ctx)

	errg.Go(func() error {
		pruneGames(ctx, svc, ttl)
		return nil
	})

	errg.Go(func() error {
		logger.Info(
			"listening via HTTP",
			"addr", addr)

		if err := hserve.ListenAndServe(ctx, addr, handler); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(
				"failed to listen and serve",
				"err", err)
			return err
		}

		return ctx.Err()
	})

	err := errg.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("server stopped")
	return nil
}

// pruneGames drops games idle for longer than ttl until ctx is done.
func pruneGames(ctx context.Context, svc *app.Service, ttl time.Duration) {
	interval := ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			svc.Prune(now.Add(-ttl))
		}
	}
}
