package analytics

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/vincentkyalomusembi/PathFinder/internal/cache"
	"github.com/vincentkyalomusembi/PathFinder/internal/config"
	"github.com/vincentkyalomusembi/PathFinder/internal/errors"
	"github.com/vincentkyalomusembi/PathFinder/internal/models"
	"github.com/vincentkyalomusembi/PathFinder/internal/telemetry"
)

var tracer = telemetry.GetTracer("pathfinder/analytics")

// View names accepted by ComputeView.
const (
	ViewDemandTrend          = "demand"
	ViewSalaryByCategory     = "salary"
	ViewSkillFrequency       = "skills"
	ViewCategoryDistribution = "categories"
)

// Compute runs one view by name. An unknown name is a contract violation
// and the only error this package surfaces.
func Compute(view string, snapshot []models.JobPosting) (any, error) {
	switch view {
	case ViewDemandTrend:
		return DemandTrend(snapshot), nil
	case ViewSalaryByCategory:
		return SalaryByCategory(snapshot), nil
	case ViewSkillFrequency:
		return SkillFrequency(snapshot), nil
	case ViewCategoryDistribution:
		return CategoryDistribution(snapshot), nil
	default:
		return nil, errors.InvalidInput("unknown analytics view: "+view, nil)
	}
}

// Engine caches each view result independently of the snapshot cache,
// keyed by view name plus request parameters, with a short TTL.
type Engine struct {
	store  *cache.Store
	logger *zap.Logger
	ttl    time.Duration
}

func NewEngine(store *cache.Store, logger *zap.Logger, cfg *config.Config) *Engine {
	return &Engine{
		store:  store,
		logger: logger,
		ttl:    cfg.AnalyticsTTL,
	}
}

func (e *Engine) ComputeView(ctx context.Context, view string, snapshot []models.JobPosting, params map[string]any) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "Engine.ComputeView")
	defer span.End()
	span.SetAttributes(telemetry.String("view", view))

	key := cache.DeriveKey("analytics_"+view, params)

	var cached json.RawMessage
	if e.store.GetJSON(ctx, key, &cached) {
		span.SetAttributes(telemetry.String("cache.result", "hit"))
		e.logger.Debug("analytics cache hit", zap.String("view", view))
		return cached, nil
	}
	span.SetAttributes(telemetry.String("cache.result", "miss"))

	result, err := Compute(view, snapshot)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	data, err := json.Marshal(result)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Internal("marshaling analytics view", err)
	}

	if !e.store.Set(ctx, key, data, e.ttl) {
		e.logger.Debug("analytics result not cached", zap.String("view", view))
	}

	return data, nil
}
