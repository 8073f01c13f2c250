package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lancelocker.dev/internal/handlers"
	"lancelocker.dev/internal/services"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var (
		addr  string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		Long: `The serve command starts the HTTP server. With --watch the locker document
is reloaded whenever it changes on disk; otherwise it is read on every request.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			if watch {
				a.cfg.Locker.Watch = true
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			lockers := services.NewLockerService(a.cfg.Locker.Path, a.logger)
			if a.cfg.Locker.Watch {
				if err := lockers.Watch(ctx); err != nil {
					return err
				}
			}

			router, err := handlers.SetupRoutes(a.cfg, lockers, a.logger)
			if err != nil {
				return fmt.Errorf("setup routes: %w", err)
			}

			srv := &http.Server{
				Addr:              a.cfg.Server.Addr,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       15 * time.Second,
				WriteTimeout:      15 * time.Second,
				IdleTimeout:       60 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				a.logger.Info("locker listening",
					zap.String("addr", srv.Addr),
					zap.String("locker", lockers.Path()),
					zap.Bool("watch", a.cfg.Locker.Watch),
					zap.Bool("dev", a.cfg.Dev),
				)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("listen: %w", err)
			case <-ctx.Done():
			}

			a.logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address, overrides server.addr")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the locker document when it changes")
	return cmd
}
