package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/vincentkyalomusembi/PathFinder/internal/analytics"
	"github.com/vincentkyalomusembi/PathFinder/internal/api"
	"github.com/vincentkyalomusembi/PathFinder/internal/cache"
	"github.com/vincentkyalomusembi/PathFinder/internal/config"
	"github.com/vincentkyalomusembi/PathFinder/internal/events"
	"github.com/vincentkyalomusembi/PathFinder/internal/orchestrator"
	"github.com/vincentkyalomusembi/PathFinder/internal/scraper"
	"github.com/vincentkyalomusembi/PathFinder/internal/synth"
	"github.com/vincentkyalomusembi/PathFinder/internal/telemetry"
)

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return zap.NewProduction()
}

func newFetcher(chain *scraper.Chain) orchestrator.Fetcher {
	return chain
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			newLogger,
			cache.New,
			scraper.NewChain,
			newFetcher,
			synth.NewGenerator,
			events.NewPublisher,
			orchestrator.New,
			analytics.NewEngine,
			api.NewServer,
		),
		fx.Invoke(
			func(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger, server *api.Server, store *cache.Store, publisher events.Publisher) {
				var shutdownTracer func()
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						if cfg.OTLPEndpoint != "" {
							shutdown, err := telemetry.InitTracer(ctx, "pathfinder-api", cfg.OTLPEndpoint)
							if err != nil {
								logger.Warn("tracing disabled", zap.Error(err))
							} else {
								shutdownTracer = shutdown
							}
						}
						server.Start()
						return nil
					},
					OnStop: func(ctx context.Context) error {
						if err := server.Stop(ctx); err != nil {
							logger.Warn("server shutdown failed", zap.Error(err))
						}
						publisher.Close()
						if shutdownTracer != nil {
							shutdownTracer()
						}
						return store.Close()
					},
				})
			},
		),
	)

	startCtx := context.Background()
	if err := app.Start(startCtx); err != nil {
		log.Fatal(err)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	stopCtx := context.Background()
	if err := app.Stop(stopCtx); err != nil {
		log.Fatal(err)
	}
}
