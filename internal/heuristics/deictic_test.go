package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titleguard/internal/nlp"
)

func tag(t *testing.T, title string) *nlp.Doc {
	t.Helper()
	doc, err := nlp.NewLexiconTagger().Tag(title)
	require.NoError(t, err)
	return doc
}

func TestAnalyzeDeictic(t *testing.T) {
	tests := []struct {
		title string
		want  DeicticVerdict
	}{
		{"How to Cook Pasta - Simple Tutorial", DeicticAbsent},
		{"The car that changed everything", DeicticConnector},
		{"The price went this high", DeicticAdverbial},
		{"Watch this week", DeicticTimeReference},
		{"This is Tokyo at night", DeicticPresentational},
		{"You need this trick", DeicticUndefinedNoun},
		{"This is INSANE", DeicticVaguePredicate},
		{"That is so weird", DeicticVaguePredicate},
		{"You won't believe this", DeicticStandalone},
		{"Those were the days", DeicticStandalone},
		{"This is how to cook pasta", DeicticUnclassified},
		{"This is the end", DeicticUnclassified},
		{"This is so good", DeicticVaguePredicate},
		{"I visited this London market", DeicticUnclassified},
		{"We toured this Tokyo neighborhood", DeicticUnclassified},
		{"This is Paris", DeicticStandalone},
		{"This is Taylor Swift", DeicticStandalone},
		{"Grab this deal", DeicticUndefinedNoun},
		{"Steal this idea", DeicticUndefinedNoun},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, analyzeDeictic(tag(t, tt.title)))
		})
	}
}

func TestAnalyzeDeictic_PriorityOrder(t *testing.T) {
	// connector outranks the undefined-noun violation later in the title
	assert.Equal(t, DeicticConnector, analyzeDeictic(tag(t, "The pasta that this trick makes")))
	// time reference outranks a title starting with "this"
	assert.Equal(t, DeicticTimeReference, analyzeDeictic(tag(t, "This week in Paris")))
}

func TestDeicticVerdict_Benign(t *testing.T) {
	for _, v := range []DeicticVerdict{DeicticConnector, DeicticAdverbial, DeicticTimeReference, DeicticPresentational} {
		assert.True(t, v.Benign(), v.String())
	}
	for _, v := range []DeicticVerdict{DeicticAbsent, DeicticUndefinedNoun, DeicticVaguePredicate, DeicticStandalone, DeicticUnclassified} {
		assert.False(t, v.Benign(), v.String())
	}
	assert.Equal(t, "vague-predicate", DeicticVaguePredicate.String())
}

func TestInput_DeicticComputedOnce(t *testing.T) {
	in := newInput("You need this trick", tag(t, "You need this trick"))
	assert.Equal(t, DeicticUndefinedNoun, in.Deictic())
	in.Doc = nil
	assert.Equal(t, DeicticUndefinedNoun, in.Deictic(), "verdict is memoized per call")
}

func TestAnalyzeDeictic_ProperNounAfterDeictic(t *testing.T) {
	// a later common-noun use still counts
	assert.Equal(t, DeicticUndefinedNoun, analyzeDeictic(tag(t, "We left this Paris hotel for this trick")))
	assert.False(t, pointsToCommonNoun(tag(t, "I visited this London market")))
}
