package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tagged(t *testing.T, text string) *Doc {
	t.Helper()
	doc, err := NewLexiconTagger().Tag(text)
	require.NoError(t, err)
	return doc
}

func TestCompile_Errors(t *testing.T) {
	for _, p := range []string{"", "(this|that", "this)", "#Nonsense", "(a||b)", "!"} {
		_, err := Compile(p)
		assert.Error(t, err, "pattern %q should not compile", p)
	}
}

func TestQuery_Match(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    bool
		span    Span
	}{
		{"literal", "trick", "You need this trick", true, Span{0, 3, 4}},
		{"alternation", "(this|that) #Noun", "You need this trick", true, Span{0, 2, 4}},
		{"start anchor hit", "^this is", "This is how to cook pasta", true, Span{0, 0, 2}},
		{"start anchor miss", "^is", "This is how", false, Span{}},
		{"end anchor hit", "(this|that) #Noun$", "You need this trick", true, Span{0, 2, 4}},
		{"end anchor miss", "(this|that)$", "You need this trick", false, Span{}},
		{"zero or more", "^this is #Adverb* #Adjective", "This is really very crazy", true, Span{0, 0, 5}},
		{"zero or more empty", "^this is #Adverb* #Adjective", "This is crazy", true, Span{0, 0, 3}},
		{"optional", "(this|that) #Adverb? #Adjective?$", "Nobody saw this", true, Span{0, 2, 3}},
		{"negated term", "this #Adjective !#Noun", "go this far now", true, Span{0, 1, 4}},
		{"negated term rejects", "this #Adjective !#Noun", "this simple trick", false, Span{}},
		{"any", "need . trick", "You need this trick", true, Span{0, 1, 4}},
		{"tag in group", "(#Place|#Person)", "Street food in Tokyo", true, Span{0, 3, 4}},
		{"value", "#Value", "I spent $100 on this", true, Span{0, 2, 3}},
		{"trailing punctuation ignored", "this$", "Are you ready for this?", true, Span{0, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, ok := MustCompile(tt.pattern).Match(tagged(t, tt.text))
			assert.Equal(t, tt.want, ok)
			if tt.want {
				assert.Equal(t, tt.span, span)
			}
		})
	}
}

func TestQuery_Not(t *testing.T) {
	concrete := MustCompile("#Noun").Not("(something|everything|things)")

	assert.False(t, concrete.Found(tagged(t, "things happen")), "only excluded nouns present")
	assert.True(t, concrete.Found(tagged(t, "things and pasta")), "pasta survives the filter")
	assert.Equal(t, "#Noun.not((something|everything|things))", concrete.String())
}

func TestQuery_AnchorsApplyToWholeTitle(t *testing.T) {
	doc := &Doc{Sentences: [][]Token{
		{{Normal: "look", Tags: Verb}, {Normal: "at", Tags: Preposition}, {Normal: "this", Tags: Pronoun | Determiner}},
		{{Normal: "this", Tags: Pronoun | Determiner}, {Normal: "is", Tags: Copula}, {Normal: "tokyo", Tags: Place | ProperNoun | Noun}},
	}}

	assert.False(t, MustCompile("^this is").Found(doc), "second sentence start is not the title start")
	assert.False(t, MustCompile("#Preposition this$").Found(doc), "first sentence end is not the title end")

	span, ok := MustCompile("^look at").Match(doc)
	require.True(t, ok)
	assert.Equal(t, Span{Sentence: 0, Start: 0, End: 2}, span)

	span, ok = MustCompile("is #Place$").Match(doc)
	require.True(t, ok)
	assert.Equal(t, Span{Sentence: 1, Start: 1, End: 3}, span)
}

func TestQuery_MatchAll(t *testing.T) {
	doc := tagged(t, "this trick and that hack")
	spans := MustCompile("(this|that) #Noun").MatchAll(doc)
	assert.Equal(t, []Span{{0, 0, 2}, {0, 3, 5}}, spans)
	assert.Empty(t, MustCompile("pasta").MatchAll(doc))
}

func TestQuery_NilSafe(t *testing.T) {
	var q *Query
	assert.False(t, q.Found(&Doc{}))
	assert.False(t, MustCompile("this").Found(nil))
}

func TestMustCompile_Panics(t *testing.T) {
	assert.Panics(t, func() { MustCompile("#Bogus") })
}
