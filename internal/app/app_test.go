package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titleguard/internal/cache"
	"titleguard/internal/config"
	"titleguard/internal/models"
	"titleguard/internal/nlp"
)

func testConfig(engine, backend string) *config.Config {
	cfg := &config.Config{}
	cfg.Classifier.Threshold = 10
	cfg.Tagger.Engine = engine
	cfg.Tagger.SegmentSentences = true
	cfg.Cache.Backend = backend
	cfg.Database.Path = ":memory:"
	cfg.Redis.Address = "127.0.0.1:6379"
	return cfg
}

func TestNewApp_Lexicon(t *testing.T) {
	ctx := context.Background()
	a, err := NewApp(ctx, testConfig(config.EngineLexicon, config.CacheMemory))
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	assert.IsType(t, &nlp.LexiconTagger{}, a.Tagger)
	assert.IsType(t, &cache.Memory{}, a.Cache)
	require.NoError(t, a.Store.Ping(ctx))

	// End to end through the filter: rule, then heuristic.
	_, err = a.RuleService.AddRule(ctx, "pasta")
	require.NoError(t, err)

	d, err := a.Filter.Decide(ctx, models.Video{Title: "How to Cook Pasta - Simple Tutorial"})
	require.NoError(t, err)
	assert.Equal(t, models.BlockedByRule, d.Source)

	d, err = a.Filter.Decide(ctx, models.Video{Title: "You need this trick"})
	require.NoError(t, err)
	assert.Equal(t, models.BlockedByHeuristic, d.Source)
}

func TestNewApp_ProseNoCache(t *testing.T) {
	a, err := NewApp(context.Background(), testConfig(config.EngineProse, config.CacheNone))
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	assert.IsType(t, &nlp.ProseTagger{}, a.Tagger)
	assert.Equal(t, cache.Nop{}, a.Cache)
	assert.Equal(t, "127.0.0.1:6379", a.RedisClientOpt().Addr)
}

func TestClose_Idempotent(t *testing.T) {
	a, err := NewApp(context.Background(), testConfig(config.EngineLexicon, config.CacheNone))
	require.NoError(t, err)
	require.NoError(t, a.Close())
	assert.NoError(t, a.Close())
}
