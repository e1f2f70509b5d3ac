package services

import (
	"context"
	"fmt"
	"runtime"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"titleguard/internal/cache"
	"titleguard/internal/heuristics"
	"titleguard/internal/util"
)

// ClassificationService fronts the classifier with a result cache and
// collapses concurrent requests for the same title into one evaluation.
type ClassificationService struct {
	classifier  *heuristics.Classifier
	cache       cache.ResultCache
	parallelism int
	group       singleflight.Group
}

type ClassificationServiceDeps struct {
	Classifier *heuristics.Classifier
	Cache      cache.ResultCache // nil disables caching
	// Parallelism bounds ClassifyBatch; zero means GOMAXPROCS.
	Parallelism int
}

func NewClassificationService(deps ClassificationServiceDeps) (*ClassificationService, error) {
	if deps.Classifier == nil {
		return nil, fmt.Errorf("classifier cannot be nil for ClassificationService")
	}
	c := deps.Cache
	if c == nil {
		c = cache.Nop{}
	}
	p := deps.Parallelism
	if p <= 0 {
		p = runtime.GOMAXPROCS(0)
	}
	return &ClassificationService{classifier: deps.Classifier, cache: c, parallelism: p}, nil
}

// Threshold is the classifier's block threshold.
func (s *ClassificationService) Threshold() int {
	return s.classifier.Threshold()
}

// ClassifyTitle scores a single title. Cache failures are logged and
// bypassed; degraded results are never cached so a recovered tagger is
// picked up on the next call.
func (s *ClassificationService) ClassifyTitle(ctx context.Context, title string) (heuristics.Result, error) {
	if err := ctx.Err(); err != nil {
		return heuristics.Result{}, err
	}
	key := util.NormalizeTitle(title)

	if res, ok, err := s.cache.Get(ctx, key); err != nil {
		log.WithError(err).Warn("result cache lookup failed")
	} else if ok {
		// blocked always follows this classifier's threshold
		res.Blocked = res.Score >= s.classifier.Threshold()
		return res, nil
	}

	v, _, _ := s.group.Do(key, func() (interface{}, error) {
		res := s.classifier.Classify(key)
		if res.Degraded() {
			log.WithField("title", key).Warnf("classification degraded: %s", res.Diagnostic)
			return res, nil
		}
		if err := s.cache.Set(ctx, key, res); err != nil {
			log.WithError(err).Warn("result cache store failed")
		}
		return res, nil
	})
	res := v.(heuristics.Result)
	log.WithFields(log.Fields{
		"title":   key,
		"score":   res.Score,
		"blocked": res.Blocked,
	}).Debug("title classified")
	return res, nil
}

// ClassifyBatch scores titles concurrently and returns results in input
// order.
func (s *ClassificationService) ClassifyBatch(ctx context.Context, titles []string) ([]heuristics.Result, error) {
	results := make([]heuristics.Result, len(titles))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)
	for i, title := range titles {
		i, title := i, title
		g.Go(func() error {
			res, err := s.ClassifyTitle(gctx, title)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("classify batch: %w", err)
	}
	return results, nil
}
