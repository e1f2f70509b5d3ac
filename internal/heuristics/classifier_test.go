package heuristics

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titleguard/internal/nlp"
)

func newTestClassifier() *Classifier {
	return New(nlp.NewLexiconTagger(), Config{Threshold: DefaultThreshold})
}

func TestClassify_Scenarios(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name    string
		title   string
		score   int
		blocked bool
		reasons []string
	}{
		{
			name:    "explainer opener is not vague",
			title:   "This is how to cook pasta",
			score:   0,
			blocked: false,
			reasons: []string{},
		},
		{
			name:    "deictic followed by noun",
			title:   "You need this trick",
			score:   20,
			blocked: true,
			reasons: []string{ReasonDeicticNoun, ReasonNoAnchor},
		},
		{
			name:    "shouting",
			title:   "SCAMMER Gets EXPOSED!!!",
			score:   20,
			blocked: true,
			reasons: []string{ReasonClickbait, "Multiple ALL CAPS words (2)"},
		},
		{
			name:    "plain tutorial",
			title:   "How to Cook Pasta - Simple Tutorial",
			score:   0,
			blocked: false,
			reasons: []string{},
		},
		{
			name:    "clickbait despite anchors",
			title:   "I Tried the Viral Money Hack – Insane Results!",
			score:   10,
			blocked: true,
			reasons: []string{ReasonClickbait},
		},
		{
			name:    "vague predicate adjective",
			title:   "This is INSANE",
			score:   35,
			blocked: true,
			reasons: []string{ReasonVaguePredicate, ReasonNoAnchor, ReasonVagueOpener, ReasonSingleCaps},
		},
		{
			name:    "standalone deictic",
			title:   "You won't believe this",
			score:   30,
			blocked: true,
			reasons: []string{ReasonClickbait, ReasonStandaloneDeictic, ReasonNoAnchor},
		},
		{
			name:    "hidden object with teaser",
			title:   "Are you ready for this?",
			score:   35,
			blocked: true,
			reasons: []string{ReasonStandaloneDeictic, ReasonNoAnchor, ReasonTrailingTeaser, ReasonHiddenObject},
		},
		{
			name:    "first person about a deictic",
			title:   "I did this",
			score:   20,
			blocked: true,
			reasons: []string{ReasonStandaloneDeictic, ReasonNoAnchor},
		},
		{
			name:    "deictic group fires once",
			title:   "This trick works",
			score:   20,
			blocked: true,
			reasons: []string{ReasonDeicticNoun, ReasonVagueOpener},
		},
		{
			name:    "connector use is benign",
			title:   "The car that changed everything",
			score:   0,
			blocked: false,
			reasons: []string{},
		},
		{
			name:    "time reference is benign",
			title:   "Watch this week in Tokyo",
			score:   0,
			blocked: false,
			reasons: []string{},
		},
		{
			name:    "presentational use is benign",
			title:   "This is Tokyo at night",
			score:   0,
			blocked: false,
			reasons: []string{},
		},
		{
			name:    "bare name after this is",
			title:   "This is Paris",
			score:   10,
			blocked: true,
			reasons: []string{ReasonStandaloneDeictic},
		},
		{
			name:    "deictic before a proper noun",
			title:   "I visited this London market",
			score:   0,
			blocked: false,
			reasons: []string{},
		},
		{
			name:    "imperative teaser with unknown verb",
			title:   "Grab this deal",
			score:   20,
			blocked: true,
			reasons: []string{ReasonDeicticNoun, ReasonNoAnchor},
		},
		{
			name:    "vague predicate with adverb",
			title:   "This is so good",
			score:   30,
			blocked: true,
			reasons: []string{ReasonVaguePredicate, ReasonNoAnchor, ReasonVagueOpener},
		},
		{
			name:    "pronoun opener",
			title:   "They finally fixed the bridge",
			score:   10,
			blocked: true,
			reasons: []string{ReasonVagueOpener},
		},
		{
			name:    "opener idiom it's been",
			title:   "It's been a long year",
			score:   0,
			blocked: false,
			reasons: []string{},
		},
		{
			name:    "opener idiom it's time",
			title:   "It’s time to upgrade your kitchen",
			score:   0,
			blocked: false,
			reasons: []string{},
		},
		{
			name:    "single caps word",
			title:   "Street food tour in Tokyo gets WILD",
			score:   5,
			blocked: false,
			reasons: []string{ReasonSingleCaps},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.Classify(tt.title)
			assert.Equal(t, tt.reasons, res.Reasons)
			assert.Equal(t, tt.score, res.Score)
			assert.Equal(t, tt.blocked, res.Blocked)
			assert.Empty(t, res.Diagnostic)
		})
	}
}

func TestClassify_ThresholdBoundary(t *testing.T) {
	c := newTestClassifier()

	teaser := c.Classify("Best pasta recipe for beginners?")
	assert.Equal(t, 5, teaser.Score)
	assert.False(t, teaser.Blocked, "a 5-point teaser alone must not block")

	something := c.Classify("Something strange happened in Paris")
	assert.Equal(t, 10, something.Score)
	assert.True(t, something.Blocked, "a single 10-point heuristic blocks")
	assert.Equal(t, []string{ReasonVagueSomething}, something.Reasons)
}

func TestClassify_CustomThreshold(t *testing.T) {
	strict := New(nlp.NewLexiconTagger(), Config{Threshold: 25})
	res := strict.Classify("You need this trick")
	assert.Equal(t, 20, res.Score)
	assert.False(t, res.Blocked)
	assert.Equal(t, 25, strict.Threshold())

	assert.Equal(t, DefaultThreshold, New(nlp.NewLexiconTagger(), Config{}).Threshold())
}

func TestClassify_SomethingIsCaseInsensitive(t *testing.T) {
	c := newTestClassifier()
	for _, title := range []string{
		"Something about Paris",
		"i found something in Tokyo",
		"We Built SoMeThInG in London",
		"SOMETHING in London",
	} {
		assert.Contains(t, c.Classify(title).Reasons, ReasonVagueSomething, title)
	}
}

func TestClassify_CapsTiersAreExclusive(t *testing.T) {
	c := newTestClassifier()

	multi := c.Classify("HUGE NEWS from the London office")
	assert.Contains(t, multi.Reasons, "Multiple ALL CAPS words (2)")
	assert.NotContains(t, multi.Reasons, ReasonSingleCaps)

	// three-letter acronyms are not shouting
	none := c.Classify("The new GTA map in NYC")
	assert.NotContains(t, none.Reasons, ReasonSingleCaps)
}

func TestClassify_NoFalsePositivesOnNamedTitles(t *testing.T) {
	c := newTestClassifier()
	names := []string{"Tokyo", "Taylor Swift", "Paris", "Gordon Ramsay", "London", "Lisbon"}
	fillers := []string{
		"%s travel guide",
		"Cooking with %s",
		"%s street food tour",
		"A weekend in %s",
		"%s live concert highlights",
		"Morning walk around %s",
	}
	for _, name := range names {
		for _, f := range fillers {
			title := fmt.Sprintf(f, name)
			res := c.Classify(title)
			assert.False(t, res.Blocked, "%q blocked with %v", title, res.Reasons)
		}
	}
}

func TestClassify_MalformedInput(t *testing.T) {
	c := newTestClassifier()
	for _, title := range []string{"", "   ", "!!!???", "🔥🔥🔥", "... - ...", "東京の夜 ラーメン", "\xff\xfe"} {
		res := c.Classify(title)
		assert.Zero(t, res.Score, "%q", title)
		assert.False(t, res.Blocked, "%q", title)
		assert.NotNil(t, res.Reasons)
	}

	assert.Zero(t, c.ClassifyAny(nil).Score)
	assert.Zero(t, c.ClassifyAny(42).Score)
	assert.Equal(t, 20, c.ClassifyAny("You need this trick").Score)
}

type failingTagger struct{ err error }

func (f failingTagger) Tag(string) (*nlp.Doc, error) { return nil, f.err }

type panickingTagger struct{}

func (panickingTagger) Tag(string) (*nlp.Doc, error) { panic("model not loaded") }

func TestClassify_TaggerUnavailable(t *testing.T) {
	tests := map[string]nlp.Tagger{
		"nil tagger":       nil,
		"tagger error":     failingTagger{err: errors.New("boom")},
		"tagger panicking": panickingTagger{},
	}
	for name, tagger := range tests {
		t.Run(name, func(t *testing.T) {
			res := New(tagger, Config{}).Classify("You need this trick")
			assert.Zero(t, res.Score)
			assert.False(t, res.Blocked)
			assert.True(t, res.Degraded())
			assert.Contains(t, res.Diagnostic, "tagger unavailable")
		})
	}
}

func TestClassify_DeterministicAndConcurrent(t *testing.T) {
	c := newTestClassifier()
	titles := []string{
		"This is how to cook pasta",
		"You need this trick",
		"SCAMMER Gets EXPOSED!!!",
		"How to Cook Pasta - Simple Tutorial",
		"I Tried the Viral Money Hack – Insane Results!",
	}
	want := make([]Result, len(titles))
	for i, title := range titles {
		want[i] = c.Classify(title)
	}

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, title := range titles {
				assert.Equal(t, want[i], c.Classify(title))
			}
		}()
	}
	wg.Wait()
}

func TestResult_ReasonText(t *testing.T) {
	res := newTestClassifier().Classify("You need this trick")
	assert.Equal(t, "Deictic pointing to undefined noun, No specific subject/anchor detected", res.ReasonText())
	assert.Equal(t, "", Result{}.ReasonText())
}

func TestRegistry_Order(t *testing.T) {
	var ids []string
	for _, r := range Registry() {
		ids = append(ids, r.ID)
	}
	require.Equal(t, []string{
		"clickbait-phrase",
		"deictic-noun", "deictic-predicate", "deictic-standalone",
		"missing-anchor",
		"vague-something", "vague-opener", "trailing-teaser",
		"caps-multi", "caps-single",
		"hidden-object",
	}, ids)
}

func TestClassify_WithSentenceSegmenter(t *testing.T) {
	seg, err := nlp.NewPunktSegmenter()
	require.NoError(t, err)
	c := New(nlp.NewLexiconTagger(nlp.WithSegmenter(seg)), Config{})

	res := c.Classify("How to Cook Pasta - Simple Tutorial")
	assert.Zero(t, res.Score)
}

func TestClassify_SegmentationKeepsTitleAnchors(t *testing.T) {
	seg, err := nlp.NewPunktSegmenter()
	require.NoError(t, err)
	plain := newTestClassifier()
	segmented := New(nlp.NewLexiconTagger(nlp.WithSegmenter(seg)), Config{Threshold: DefaultThreshold})

	for _, title := range []string{
		"Are you ready for this? Paris 2024 vlog",
		"Look at this! Tokyo street food",
	} {
		t.Run(title, func(t *testing.T) {
			got := segmented.Classify(title)
			assert.Equal(t, plain.Classify(title).Score, got.Score)
			assert.NotContains(t, got.Reasons, ReasonStandaloneDeictic)
			assert.NotContains(t, got.Reasons, ReasonHiddenObject)
		})
	}
}
