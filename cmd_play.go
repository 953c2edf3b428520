package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/utils"
)

const metricsShutdownTimeout = 5 * time.Second

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Animate a world in the terminal until interrupted",
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := utils.NewMetrics()
	g, err := initializeGame(cmd.OutOrStdout(), config, metrics)
	if err != nil {
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)
	if config.MetricsAddr != "" {
		server := &http.Server{
			Addr:              config.MetricsAddr,
			Handler:           metricsMux(metrics),
			ReadHeaderTimeout: 5 * time.Second,
		}
		eg.Go(func() error {
			logger.Info("serving metrics", "addr", config.MetricsAddr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return errors.Wrapf(err, "[runPlay] metrics server on %s", config.MetricsAddr)
			}
			return nil
		})
		eg.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		})
	}

	eg.Go(func() error {
		defer stop()
		return g.run(ctx)
	})

	return eg.Wait()
}

func metricsMux(metrics *utils.Metrics) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	return mux
}
