package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vincentkyalomusembi/PathFinder/internal/cache"
	"github.com/vincentkyalomusembi/PathFinder/internal/config"
)

func newTestEngine(t *testing.T) (*Engine, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	cfg := &config.Config{
		RedisAddr:    mr.Addr(),
		SessionTTL:   time.Hour,
		AnalyticsTTL: 5 * time.Minute,
	}
	store := cache.New(cfg, zap.NewNop())
	t.Cleanup(func() { store.Close() })
	return NewEngine(store, zap.NewNop(), cfg), mr
}

func TestComputeView_SecondCallServedFromCache(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()
	params := map[string]any{"category": "all"}

	first, err := engine.ComputeView(ctx, ViewSkillFrequency, sampleSnapshot(), params)
	require.NoError(t, err)

	// A different snapshot would compute a different result; identical
	// bytes prove the cached value was served instead.
	second, err := engine.ComputeView(ctx, ViewSkillFrequency, nil, params)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestComputeView_RecomputesAfterTTL(t *testing.T) {
	engine, mr := newTestEngine(t)
	ctx := context.Background()

	first, err := engine.ComputeView(ctx, ViewCategoryDistribution, sampleSnapshot(), nil)
	require.NoError(t, err)

	mr.FastForward(10 * time.Minute)

	second, err := engine.ComputeView(ctx, ViewCategoryDistribution, nil, nil)
	require.NoError(t, err)
	assert.NotEqual(t, string(first), string(second), "expected a recomputed baseline result after expiry")
}

func TestComputeView_ParamsSelectDistinctEntries(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	all, err := engine.ComputeView(ctx, ViewSalaryByCategory, sampleSnapshot(), map[string]any{"category": "all"})
	require.NoError(t, err)

	// Different params miss the first entry and recompute from whatever
	// snapshot they are handed.
	filtered, err := engine.ComputeView(ctx, ViewSalaryByCategory, nil, map[string]any{"category": "tech"})
	require.NoError(t, err)
	assert.NotEqual(t, string(all), string(filtered), "distinct params should not share a cache entry")
}

func TestComputeView_UnknownViewErrors(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.ComputeView(context.Background(), "velocity", nil, nil)
	assert.Error(t, err)
}

func TestComputeView_UncachedModeComputesEveryCall(t *testing.T) {
	cfg := &config.Config{
		RedisAddr:    "127.0.0.1:1",
		SessionTTL:   time.Hour,
		AnalyticsTTL: 5 * time.Minute,
	}
	store := cache.New(cfg, zap.NewNop())
	engine := NewEngine(store, zap.NewNop(), cfg)
	ctx := context.Background()

	first, err := engine.ComputeView(ctx, ViewDemandTrend, sampleSnapshot(), nil)
	require.NoError(t, err)
	second, err := engine.ComputeView(ctx, ViewDemandTrend, nil, nil)
	require.NoError(t, err)
	assert.NotEqual(t, string(first), string(second), "without a cache each call computes from its own snapshot")
}
