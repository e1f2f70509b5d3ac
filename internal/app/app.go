package app

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"

	"titleguard/internal/cache"
	"titleguard/internal/config"
	"titleguard/internal/filter"
	"titleguard/internal/heuristics"
	"titleguard/internal/nlp"
	"titleguard/internal/services"
	"titleguard/internal/store"
	"titleguard/internal/store/primary"
)

type App struct {
	Config *config.Config

	Store     store.PrimaryStore
	Cache     cache.ResultCache
	JobClient store.JobClient

	Tagger     nlp.Tagger
	Classifier *heuristics.Classifier

	// --- Initialized Services ---
	ClassificationService *services.ClassificationService
	RuleService           *services.RuleService
	BlocklistService      *services.BlocklistService
	Filter                *filter.Filter

	closers []func() error
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	if err := app.initPrimaryStore(ctx); err != nil {
		return nil, err
	}
	if err := app.initCache(ctx); err != nil {
		app.Close()
		return nil, err
	}
	if err := app.initClassifier(); err != nil {
		app.Close()
		return nil, err
	}
	if err := app.initCoreServices(); err != nil {
		app.Close()
		return nil, err
	}
	app.initJobClient()

	log.WithFields(log.Fields{
		"tagger":    cfg.Tagger.Engine,
		"cache":     cfg.Cache.Backend,
		"threshold": app.Classifier.Threshold(),
	}).Debug("Application initialization complete.")
	return app, nil
}

// --- Private Helper Methods ---

func (a *App) initPrimaryStore(ctx context.Context) error {
	path, err := config.ResolveDatabasePath(a.Config.Database.Path)
	if err != nil {
		return fmt.Errorf("init primary store: %w", err)
	}
	ps, err := primary.NewPrimaryStore(ctx, path)
	if err != nil {
		return fmt.Errorf("init primary store: %w", err)
	}
	a.Store = ps
	a.closers = append(a.closers, ps.Close)
	return nil
}

func (a *App) initCache(ctx context.Context) error {
	switch a.Config.Cache.Backend {
	case config.CacheRedis:
		rc, err := cache.NewRedis(ctx, cache.RedisOptions{
			Address:  a.Config.Redis.Address,
			Password: a.Config.Redis.Password,
			DB:       a.Config.Redis.DB,
			Prefix:   cache.Namespace(a.Config.Cache.Prefix, a.Config.Tagger.Engine, a.Config.Classifier.Threshold),
			TTL:      a.Config.Cache.TTL,
		})
		if err != nil {
			return fmt.Errorf("init cache: %w", err)
		}
		a.Cache = rc
		a.closers = append(a.closers, rc.Close)
	case config.CacheNone:
		a.Cache = cache.Nop{}
	default:
		a.Cache = cache.NewMemory(a.Config.Cache.TTL)
	}
	return nil
}

func (a *App) initClassifier() error {
	var seg nlp.Segmenter
	if a.Config.Tagger.SegmentSentences {
		punkt, err := nlp.NewPunktSegmenter()
		if err != nil {
			// Classification still works on the whole title as one sentence.
			log.WithError(err).Warn("sentence segmenter unavailable, treating titles as one sentence")
		} else {
			seg = punkt
		}
	}

	switch a.Config.Tagger.Engine {
	case config.EngineProse:
		tagger, err := nlp.NewProseTagger(seg)
		if err != nil {
			return err
		}
		a.Tagger = tagger
	default:
		var opts []nlp.LexiconOption
		if seg != nil {
			opts = append(opts, nlp.WithSegmenter(seg))
		}
		a.Tagger = nlp.NewLexiconTagger(opts...)
	}
	a.Classifier = heuristics.New(a.Tagger, heuristics.Config{Threshold: a.Config.Classifier.Threshold})
	return nil
}

func (a *App) initCoreServices() error {
	cs, err := services.NewClassificationService(services.ClassificationServiceDeps{
		Classifier:  a.Classifier,
		Cache:       a.Cache,
		Parallelism: a.Config.Batch.Parallelism,
	})
	if err != nil {
		return fmt.Errorf("init classification service: %w", err)
	}
	a.ClassificationService = cs
	a.RuleService = services.NewRuleService(a.Store)
	a.BlocklistService = services.NewBlocklistService(a.Store)
	a.Filter = filter.New(a.RuleService, a.BlocklistService, a.ClassificationService)
	if a.Config.Filter.Paused {
		a.Filter.SetEnabled(false)
	}
	return nil
}

// initJobClient never dials; asynq connects on first enqueue.
func (a *App) initJobClient() {
	jc := store.NewAsynqJobClient(a.RedisClientOpt(), "")
	a.JobClient = jc
	a.closers = append(a.closers, jc.Close)
}

// RedisClientOpt is shared by the job client and the worker server.
func (a *App) RedisClientOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     a.Config.Redis.Address,
		Password: a.Config.Redis.Password,
		DB:       a.Config.Redis.DB,
	}
}

// Close releases everything NewApp opened, in reverse order.
func (a *App) Close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}
