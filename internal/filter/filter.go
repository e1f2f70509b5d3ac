package filter

import (
	"context"
	"fmt"
	"sync/atomic"

	log "github.com/sirupsen/logrus"

	"titleguard/internal/heuristics"
	"titleguard/internal/models"
)

// RuleLister supplies the current title rules.
type RuleLister interface {
	ListRules(ctx context.Context) ([]models.TitleRule, error)
}

// BlockChecker answers whether a video id is explicitly blocked.
type BlockChecker interface {
	IsBlocked(ctx context.Context, videoID string) (bool, error)
}

// Scorer runs the heuristic classifier.
type Scorer interface {
	ClassifyTitle(ctx context.Context, title string) (heuristics.Result, error)
}

// Decision is the filter's verdict for one video.
type Decision struct {
	Blocked      bool               `json:"blocked"`
	Source       models.BlockSource `json:"source,omitempty"`
	VideoID      string             `json:"video_id,omitempty"`
	MatchedRules []string           `json:"matched_rules,omitempty"`
	Heuristic    *heuristics.Result `json:"heuristic,omitempty"`
}

// Filter combines the three blocking mechanisms. Any of the dependencies may
// be nil, which disables that mechanism.
type Filter struct {
	rules   RuleLister
	blocked BlockChecker
	scorer  Scorer

	enabled atomic.Bool
	count   atomic.Int64
}

// Stats is the filter's switch state and how many videos it has blocked
// since the process started.
type Stats struct {
	Enabled      bool  `json:"enabled"`
	BlockedCount int64 `json:"blocked_count"`
}

// New creates an enabled filter.
func New(rules RuleLister, blocked BlockChecker, scorer Scorer) *Filter {
	f := &Filter{rules: rules, blocked: blocked, scorer: scorer}
	f.enabled.Store(true)
	return f
}

// SetEnabled turns filtering on or off. A disabled filter lets every video
// through without consulting rules, blocklist or classifier.
func (f *Filter) SetEnabled(on bool) {
	f.enabled.Store(on)
	log.WithField("enabled", on).Info("filter switched")
}

func (f *Filter) Stats() Stats {
	return Stats{Enabled: f.enabled.Load(), BlockedCount: f.count.Load()}
}

// Decide evaluates a video. The source is attributed in priority order: a
// user rule, then the blocklist, then the classifier. The heuristic result
// is always attached when a scorer is configured. Every blocked decision
// increments the blocked count.
func (f *Filter) Decide(ctx context.Context, v models.Video) (Decision, error) {
	var d Decision
	if !f.enabled.Load() {
		return d, nil
	}

	if f.rules != nil {
		rules, err := f.rules.ListRules(ctx)
		if err != nil {
			return d, fmt.Errorf("list rules: %w", err)
		}
		phrases := make([]string, 0, len(rules))
		for _, r := range rules {
			phrases = append(phrases, r.Phrase)
		}
		d.MatchedRules = MatchRules(v.Title, phrases)
		if len(d.MatchedRules) > 0 {
			d.Blocked, d.Source = true, models.BlockedByRule
		}
	}

	if id, ok := ExtractVideoID(v.URL); ok {
		d.VideoID = id
		if f.blocked != nil && !d.Blocked {
			isBlocked, err := f.blocked.IsBlocked(ctx, id)
			if err != nil {
				return d, fmt.Errorf("check blocklist: %w", err)
			}
			if isBlocked {
				d.Blocked, d.Source = true, models.BlockedByVideoID
			}
		}
	}

	if f.scorer != nil {
		res, err := f.scorer.ClassifyTitle(ctx, v.Title)
		if err != nil {
			return d, fmt.Errorf("classify title: %w", err)
		}
		d.Heuristic = &res
		if res.Blocked && !d.Blocked {
			d.Blocked, d.Source = true, models.BlockedByHeuristic
		}
	}

	if d.Blocked {
		f.count.Add(1)
		log.WithFields(log.Fields{
			"title":    v.Title,
			"video_id": d.VideoID,
			"source":   d.Source,
		}).Debug("video blocked")
	}
	return d, nil
}
