package nlp

import (
	"fmt"
	"unicode/utf8"
)

// LexiconTagger is a deterministic rule-and-dictionary tagger. It needs no
// model files, which makes it the default engine and the one tests rely on.
type LexiconTagger struct {
	segmenter Segmenter
}

// LexiconOption configures a LexiconTagger.
type LexiconOption func(*LexiconTagger)

// WithSegmenter sets how titles are split into sentences. A nil segmenter
// treats every title as a single sentence.
func WithSegmenter(s Segmenter) LexiconOption {
	return func(t *LexiconTagger) { t.segmenter = s }
}

// NewLexiconTagger creates a tagger. Without options it treats each title as
// one sentence.
func NewLexiconTagger(opts ...LexiconOption) *LexiconTagger {
	t := &LexiconTagger{}
	for _, o := range opts {
		o(t)
	}
	return t
}

var _ Tagger = (*LexiconTagger)(nil)

// Tag tokenizes and tags text.
func (t *LexiconTagger) Tag(text string) (*Doc, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("nlp: text is not valid UTF-8")
	}
	doc := &Doc{Text: text}
	for _, sent := range segment(t.segmenter, text) {
		toks := SplitWords(sent)
		if len(toks) == 0 {
			continue
		}
		titleCase := isTitleCased(toks)
		for i := range toks {
			toks[i].Tags = lexiconTags(toks[i], i == 0, titleCase)
		}
		doc.Sentences = append(doc.Sentences, toks)
	}
	return doc, nil
}

// lexiconTags decides the tags of one token. Order matters: function words,
// numbers, known names, dictionary words, suffixes, capitalization, and
// finally the Noun default.
func lexiconTags(tok Token, sentenceStart, titleCase bool) Tag {
	w := tok.Normal
	if tags, ok := closedClass[w]; ok {
		return tags
	}
	if numericWord.MatchString(w) {
		return Value
	}
	if tags, ok := gazetteer[w]; ok {
		return tags
	}
	if tags, ok := openClass[w]; ok {
		return tags
	}
	if tags := guessBySuffix(w); tags != 0 {
		return tags
	}
	if isAllCaps(tok.Text) {
		// short all-caps words are usually acronyms (NASA, GTA); longer ones shouting
		if n := utf8.RuneCountInString(tok.Text); n >= 2 && n <= 4 {
			return ProperNoun | Noun
		}
		return Noun
	}
	if !sentenceStart && !titleCase && isCapitalized(tok.Text) {
		return ProperNoun | Noun
	}
	return Noun
}
