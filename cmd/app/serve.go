package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"dispatch/cmd"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API, the inventory consumer and the background jobs",
	RunE: func(c *cobra.Command, _ []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		root, err := cmd.NewCompositionRoot(cfg, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := root.Close(); err != nil {
				logger.Error("shutdown", "error", err)
			}
		}()

		return serve(c.Context(), cfg, root)
	},
}

func serve(ctx context.Context, cfg cmd.Config, root *cmd.CompositionRoot) error {
	router, err := root.CreateRouter(ctx)
	if err != nil {
		return err
	}
	consumer, err := root.CreateInventoryConsumer()
	if err != nil {
		return err
	}
	listener, err := root.CreateOutboxListener()
	if err != nil {
		return err
	}
	jobManager, err := root.CreateJobManager()
	if err != nil {
		return err
	}
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
		if err := router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return router.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return ignoreCanceled(consumer.Run(gctx))
	})

	if listener != nil {
		g.Go(func() error {
			return listener.Run(gctx, jobManager.WakeOutboxRelay)
		})
	}

	return g.Wait()
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
