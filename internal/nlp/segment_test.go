package nlp

import (
	"testing"

	"github.com/jdkato/prose/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPunktSegmenter(t *testing.T) {
	seg, err := NewPunktSegmenter()
	require.NoError(t, err)

	parts := seg.Segment("I moved to Tokyo. You will not believe what happened next.")
	require.Len(t, parts, 2)
	assert.Equal(t, "I moved to Tokyo.", parts[0])

	assert.Len(t, seg.Segment("How to Cook Pasta - Simple Tutorial"), 1)
}

func TestLexiconTagger_WithSegmenter(t *testing.T) {
	seg, err := NewPunktSegmenter()
	require.NoError(t, err)

	doc, err := NewLexiconTagger(WithSegmenter(seg)).Tag("We tried it. This is insane")
	require.NoError(t, err)
	require.Len(t, doc.Sentences, 2)
	assert.False(t, MustCompile("^this is #Adjective").Found(doc), "^ anchors to the title, not each sentence")
	assert.True(t, MustCompile("this is #Adjective$").Found(doc))
}

type stubSegmenter []string

func (s stubSegmenter) Segment(string) []string { return s }

func TestSegment_FallsBackToWholeText(t *testing.T) {
	assert.Equal(t, []string{"a b"}, segment(nil, "a b"))
	assert.Equal(t, []string{"a b"}, segment(stubSegmenter(nil), "a b"))
	assert.Equal(t, []string{"x", "y"}, segment(stubSegmenter{"x", "y"}, "a b"))
}

func TestPennTags(t *testing.T) {
	tests := map[string]Tag{
		"NN":   Noun,
		"NNS":  Noun,
		"NNP":  ProperNoun | Noun,
		"JJS":  Adjective,
		"RB":   Adverb,
		"CD":   Value,
		"PRP$": Pronoun,
		"VBD":  Verb,
		"MD":   Verb,
		"IN":   Preposition,
		"DT":   Determiner,
		"WRB":  QuestionWord,
		".":    0,
	}
	for penn, want := range tests {
		assert.Equal(t, want, pennTags(penn), penn)
	}
}

func TestEntityTags(t *testing.T) {
	assert.Equal(t, Place|ProperNoun|Noun, entityTags("B-GPE"))
	assert.Equal(t, Person|ProperNoun|Noun, entityTags("I-PERSON"))
	assert.Zero(t, entityTags("O"))
}

func TestProseTagger_ClosedClassWordsMatchLexicon(t *testing.T) {
	tagger, err := NewProseTagger(nil)
	require.NoError(t, err)
	doc, err := tagger.Tag("This is how it works")
	require.NoError(t, err)
	toks := doc.Tokens()
	require.NotEmpty(t, toks)
	assert.Equal(t, "this", toks[0].Normal)
	assert.Equal(t, Pronoun|Determiner, toks[0].Tags)
	assert.True(t, MustCompile("^this is (how|why|what|where|the)").Found(doc))
}

func TestProseTagger_ContractionsMatchLexicon(t *testing.T) {
	tagger, err := NewProseTagger(nil)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		doc, err := tagger.Tag("You won't believe what I'm doing")
		require.NoError(t, err)
		var normals []string
		for _, tok := range doc.Tokens() {
			normals = append(normals, tok.Normal)
		}
		assert.Contains(t, normals, "won't")
		assert.Contains(t, normals, "i'm")
		assert.NotContains(t, normals, "wo")
	}
}

func TestMergeContractions(t *testing.T) {
	in := []prose.Token{
		{Text: "It", Tag: "PRP"}, {Text: "'s", Tag: "VBZ"},
		{Text: "wo", Tag: "MD"}, {Text: "n't", Tag: "RB"},
		{Text: "Tokyo", Tag: "NNP", Label: "B-GPE"}, {Text: "’s", Tag: "POS"},
		{Text: "''", Tag: "''"},
	}
	got := mergeContractions(in)
	require.Len(t, got, 4)
	assert.Equal(t, "It's", got[0].Text)
	assert.Equal(t, "PRP", got[0].Tag)
	assert.Equal(t, "won't", got[1].Text)
	assert.Equal(t, "Tokyo’s", got[2].Text)
	assert.Equal(t, "B-GPE", got[2].Label)
	assert.Equal(t, "''", got[3].Text)
}
