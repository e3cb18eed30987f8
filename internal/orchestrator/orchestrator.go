// Package orchestrator decides, per request, whether the cached snapshot
// is fresh enough to serve or a new acquisition cycle is needed.
package orchestrator

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/vincentkyalomusembi/PathFinder/internal/cache"
	"github.com/vincentkyalomusembi/PathFinder/internal/config"
	"github.com/vincentkyalomusembi/PathFinder/internal/events"
	"github.com/vincentkyalomusembi/PathFinder/internal/models"
	"github.com/vincentkyalomusembi/PathFinder/internal/synth"
	"github.com/vincentkyalomusembi/PathFinder/internal/telemetry"
)

var tracer = telemetry.GetTracer("pathfinder/orchestrator")

// Fetcher is the source adapter chain as the orchestrator sees it.
type Fetcher interface {
	Fetch(ctx context.Context, target int) []models.JobPosting
}

type Orchestrator struct {
	chain     Fetcher
	generator *synth.Generator
	store     *cache.Store
	publisher events.Publisher
	logger    *zap.Logger

	targetCount int
	minSnapshot int
	snapshotTTL time.Duration
	snapshotKey string
}

func New(chain Fetcher, generator *synth.Generator, store *cache.Store, publisher events.Publisher, logger *zap.Logger, cfg *config.Config) *Orchestrator {
	return &Orchestrator{
		chain:       chain,
		generator:   generator,
		store:       store,
		publisher:   publisher,
		logger:      logger,
		targetCount: cfg.TargetJobCount,
		minSnapshot: cfg.MinSnapshotSize,
		snapshotTTL: cfg.SnapshotTTL,
		snapshotKey: cache.DeriveKey("scraped_jobs", nil),
	}
}

// FetchSnapshot serves the cached snapshot when it holds at least the
// minimum number of postings, and otherwise runs an acquisition cycle:
// scrape, pad with generated postings when the real yield is thin, cache,
// announce. The second return reports whether the snapshot came from
// cache. Acquisition never fails; in the worst case the snapshot is fully
// synthetic.
//
// Concurrent callers may both observe a thin snapshot and both refresh;
// the last cache write wins. Acquisition is idempotent, so this race is
// tolerated rather than locked away.
func (o *Orchestrator) FetchSnapshot(ctx context.Context, targetCount int) ([]models.JobPosting, bool) {
	ctx, span := tracer.Start(ctx, "Orchestrator.FetchSnapshot")
	defer span.End()

	if targetCount <= 0 {
		targetCount = o.targetCount
	}
	span.SetAttributes(telemetry.Int("snapshot.target", targetCount))

	if cached, ok := o.CachedSnapshot(ctx); ok && len(cached) >= o.minSnapshot {
		span.SetAttributes(
			telemetry.String("cache.result", "hit"),
			telemetry.Int("snapshot.size", len(cached)),
		)
		o.logger.Debug("serving cached snapshot", zap.Int("count", len(cached)))
		return cached, true
	}
	span.SetAttributes(telemetry.String("cache.result", "miss"))

	postings := o.chain.Fetch(ctx, targetCount)
	scraped := len(postings)
	o.logger.Info("scraped listings", zap.Int("count", scraped))

	if len(postings) < o.minSnapshot {
		generated := o.generator.Generate(targetCount - len(postings))
		o.logger.Info("padding snapshot with generated listings",
			zap.Int("scraped", scraped),
			zap.Int("generated", len(generated)))
		postings = append(postings, generated...)
	}
	if len(postings) > targetCount {
		postings = postings[:targetCount]
	}

	if !o.store.Set(ctx, o.snapshotKey, postings, o.snapshotTTL) {
		o.logger.Warn("snapshot not cached, serving uncached result")
	}

	if err := o.publisher.PublishSnapshotRefresh(ctx, postings); err != nil {
		o.logger.Warn("snapshot event not published", zap.Error(err))
	}

	span.SetAttributes(
		telemetry.Int("snapshot.size", len(postings)),
		telemetry.Int("snapshot.scraped", scraped),
	)
	return postings, false
}

// CachedSnapshot returns the cached snapshot without triggering
// acquisition. The second return is false when nothing usable is cached.
func (o *Orchestrator) CachedSnapshot(ctx context.Context) ([]models.JobPosting, bool) {
	var snapshot []models.JobPosting
	if !o.store.GetJSON(ctx, o.snapshotKey, &snapshot) {
		return nil, false
	}
	return snapshot, true
}
