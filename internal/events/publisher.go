// Package events announces snapshot refreshes on NATS. Publishing is
// best-effort: an unreachable broker downgrades the publisher to a no-op,
// mirroring how the rest of the pipeline degrades.
package events

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/vincentkyalomusembi/PathFinder/internal/config"
	"github.com/vincentkyalomusembi/PathFinder/internal/errors"
	"github.com/vincentkyalomusembi/PathFinder/internal/models"
)

const SnapshotSubject = "jobs.snapshot.refreshed"

type Publisher interface {
	PublishSnapshotRefresh(ctx context.Context, postings []models.JobPosting) error
	Close()
}

type snapshotEvent struct {
	Count       int       `json:"count"`
	Sources     []string  `json:"sources"`
	RefreshedAt time.Time `json:"refreshed_at"`
}

type natsPublisher struct {
	conn   *nats.Conn
	logger *zap.Logger
}

func NewPublisher(logger *zap.Logger, cfg *config.Config) Publisher {
	opts := []nats.Option{
		nats.Timeout(cfg.NATSConnTimeout),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
	}

	conn, err := nats.Connect(cfg.NATSURL, opts...)
	if err != nil {
		logger.Warn("nats unreachable, snapshot events disabled", zap.Error(err))
		return noopPublisher{}
	}

	return &natsPublisher{
		conn:   conn,
		logger: logger,
	}
}

func (p *natsPublisher) PublishSnapshotRefresh(ctx context.Context, postings []models.JobPosting) error {
	sources := models.Sources(postings)
	sort.Strings(sources)

	data, err := json.Marshal(snapshotEvent{
		Count:       len(postings),
		Sources:     sources,
		RefreshedAt: time.Now().UTC(),
	})
	if err != nil {
		return errors.Internal("marshaling snapshot event", err)
	}

	if err := p.conn.Publish(SnapshotSubject, data); err != nil {
		p.logger.Error("failed to publish snapshot event",
			zap.Int("count", len(postings)),
			zap.Error(err))
		return errors.Internal("publishing to NATS", err)
	}

	p.logger.Debug("published snapshot event", zap.Int("count", len(postings)))
	return nil
}

func (p *natsPublisher) Close() {
	p.conn.Close()
}

// NewNoop returns a publisher that drops everything.
func NewNoop() Publisher {
	return noopPublisher{}
}

type noopPublisher struct{}

func (noopPublisher) PublishSnapshotRefresh(context.Context, []models.JobPosting) error {
	return nil
}

func (noopPublisher) Close() {}
