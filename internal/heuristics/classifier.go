// Package heuristics implements the title heuristic classifier: a
// deterministic rule engine that scores a video title for clickbait and vague
// phrasing using part-of-speech patterns.
//
// Classification is a pure function of the title. It performs no I/O, keeps
// no state between calls and is safe for concurrent use.
package heuristics

import (
	"fmt"
	"strings"

	"titleguard/internal/models"
	"titleguard/internal/nlp"
	"titleguard/internal/util"
)

// DefaultThreshold is the score at which a title is blocked.
const DefaultThreshold = 10

// Config holds the classifier's tunables.
type Config struct {
	Threshold int
}

// Result is the outcome of classifying one title.
type Result struct {
	Score   int      `json:"score"`
	Blocked bool     `json:"blocked"`
	Reasons []string `json:"reasons"`
	// Diagnostic is set when classification degraded, e.g. the tagger failed.
	Diagnostic string `json:"diagnostic,omitempty"`
}

// ReasonText joins the reasons in evaluation order.
func (r Result) ReasonText() string {
	return strings.Join(r.Reasons, ", ")
}

// Degraded reports whether the result was produced without running the rules.
func (r Result) Degraded() bool {
	return r.Diagnostic != ""
}

// Classifier scores titles against the rule registry.
type Classifier struct {
	tagger    nlp.Tagger
	threshold int
	rules     []Rule
}

// New creates a classifier around tagger. A non-positive threshold falls back
// to DefaultThreshold.
func New(tagger nlp.Tagger, cfg Config) *Classifier {
	threshold := cfg.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Classifier{
		tagger:    tagger,
		threshold: threshold,
		rules:     Registry(),
	}
}

// Threshold returns the block threshold in effect.
func (c *Classifier) Threshold() int {
	return c.threshold
}

// Classify scores a title. It never panics: if the tagger is missing or
// fails, the title is reported as not blocked with a diagnostic.
func (c *Classifier) Classify(title string) (res Result) {
	res = Result{Reasons: []string{}}
	title = util.NormalizeTitle(title)
	if title == "" {
		return res
	}
	if c.tagger == nil {
		res.Diagnostic = models.ErrTaggerUnavailable.Error()
		return res
	}

	defer func() {
		if r := recover(); r != nil {
			res = Result{
				Reasons:    []string{},
				Diagnostic: fmt.Sprintf("%v: %v", models.ErrTaggerUnavailable, r),
			}
		}
	}()

	doc, err := c.tagger.Tag(title)
	if err != nil {
		res.Diagnostic = fmt.Errorf("%w: %v", models.ErrTaggerUnavailable, err).Error()
		return res
	}
	if doc.Len() == 0 {
		return res
	}

	in := newInput(title, doc)
	fired := make(map[string]bool)
	for _, rule := range c.rules {
		if rule.Group != "" && fired[rule.Group] {
			continue
		}
		if !rule.Match(in) {
			continue
		}
		if rule.Group != "" {
			fired[rule.Group] = true
		}
		res.Score += rule.Delta
		res.Reasons = append(res.Reasons, rule.reason(in))
	}
	res.Blocked = res.Score >= c.threshold
	return res
}

// ClassifyAny accepts arbitrary input; anything that is not a string is
// treated as an empty title.
func (c *Classifier) ClassifyAny(v any) Result {
	s, _ := v.(string)
	return c.Classify(s)
}
