// Package scraper acquires raw listings from external job sites. Each site
// gets its own adapter; the Chain runs them in order, isolating every
// adapter failure from its siblings.
package scraper

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/vincentkyalomusembi/PathFinder/internal/config"
	"github.com/vincentkyalomusembi/PathFinder/internal/models"
	"github.com/vincentkyalomusembi/PathFinder/internal/telemetry"
)

var tracer = telemetry.GetTracer("pathfinder/scraper")

// Adapter is one fetch strategy against a single external source. A failed
// adapter returns an error; it never panics and it never affects siblings.
type Adapter interface {
	Name() string
	Fetch(ctx context.Context, limit int) ([]models.JobPosting, error)
}

// Chain holds the ordered adapter list. Fetch splits the target count
// evenly, converts adapter errors into empty contributions, and inserts a
// randomized politeness delay between adapters.
type Chain struct {
	adapters []Adapter
	logger   *zap.Logger
	delayMin time.Duration
	delayMax time.Duration
}

func NewChain(cfg *config.Config, logger *zap.Logger) *Chain {
	client := &http.Client{Timeout: cfg.ScrapeTimeout}
	return &Chain{
		adapters: []Adapter{
			NewBrighterMondayAdapter(client),
			NewMyJobMagAdapter(client),
			NewFuzuAdapter(client),
		},
		logger:   logger,
		delayMin: cfg.PolitenessMin,
		delayMax: cfg.PolitenessMax,
	}
}

// NewChainWithAdapters builds a chain over an explicit adapter list with no
// politeness delay.
func NewChainWithAdapters(adapters []Adapter, logger *zap.Logger) *Chain {
	return &Chain{
		adapters: adapters,
		logger:   logger,
	}
}

// Fetch returns up to target postings concatenated across all adapters.
// It never fails: a source that errors contributes nothing this cycle.
func (c *Chain) Fetch(ctx context.Context, target int) []models.JobPosting {
	ctx, span := tracer.Start(ctx, "Chain.Fetch")
	defer span.End()
	span.SetAttributes(telemetry.Int("fetch.target", target))

	if target <= 0 || len(c.adapters) == 0 {
		return nil
	}

	share := target / len(c.adapters)

	var all []models.JobPosting
	for i, adapter := range c.adapters {
		if i > 0 {
			c.politenessWait(ctx)
		}

		postings, err := adapter.Fetch(ctx, share)
		if err != nil {
			span.RecordError(err)
			c.logger.Warn("source fetch failed",
				zap.String("source", adapter.Name()),
				zap.Error(err))
			continue
		}

		c.logger.Debug("source fetch succeeded",
			zap.String("source", adapter.Name()),
			zap.Int("count", len(postings)))
		all = append(all, postings...)
	}

	if len(all) > target {
		all = all[:target]
	}

	span.SetAttributes(telemetry.Int("fetch.count", len(all)))
	return all
}

func (c *Chain) politenessWait(ctx context.Context) {
	delay := c.delayMin
	if c.delayMax > c.delayMin {
		delay += time.Duration(rand.Int63n(int64(c.delayMax - c.delayMin)))
	}
	if delay <= 0 {
		return
	}

	select {
	case <-ctx.Done():
	case <-time.After(delay):
	}
}
