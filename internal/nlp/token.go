// Package nlp provides the lexical tagging capability the title heuristics
// consume: tokenization, part-of-speech tags and a small tag-pattern query
// language. Taggers are interchangeable behind the Tagger interface.
package nlp

import (
	"sort"
	"strings"
)

// Tag is a single lexical category. Tags are bit flags so a token can carry
// several at once (a Place is also a ProperNoun and a Noun).
type Tag uint32

const (
	Noun Tag = 1 << iota
	ProperNoun
	Adjective
	Adverb
	Value
	Place
	Person
	Pronoun
	Verb
	Copula
	Preposition
	Determiner
	Conjunction
	QuestionWord
)

var tagNames = map[Tag]string{
	Noun:         "Noun",
	ProperNoun:   "ProperNoun",
	Adjective:    "Adjective",
	Adverb:       "Adverb",
	Value:        "Value",
	Place:        "Place",
	Person:       "Person",
	Pronoun:      "Pronoun",
	Verb:         "Verb",
	Copula:       "Copula",
	Preposition:  "Preposition",
	Determiner:   "Determiner",
	Conjunction:  "Conjunction",
	QuestionWord: "QuestionWord",
}

// ParseTag resolves a tag name (without the leading '#').
func ParseTag(name string) (Tag, bool) {
	for t, n := range tagNames {
		if strings.EqualFold(n, name) {
			return t, true
		}
	}
	return 0, false
}

// String lists the names of all flags set, sorted.
func (t Tag) String() string {
	var names []string
	for flag, name := range tagNames {
		if t&flag != 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

// Token is one lexical unit of a title.
type Token struct {
	Text   string // as written, surrounding punctuation removed
	Normal string // lower-cased, typographic apostrophes folded
	Pre    string // punctuation before the word
	Post   string // punctuation after the word
	Tags   Tag
}

// Has reports whether the token carries any of the given tags.
func (t Token) Has(tags Tag) bool {
	return t.Tags&tags != 0
}

// Doc is a tagged title: a list of sentences, each a list of tokens.
// Pattern anchors (^ and $) apply to the title as a whole.
type Doc struct {
	Text      string
	Sentences [][]Token
}

// Tokens returns all tokens of the document in order.
func (d *Doc) Tokens() []Token {
	if d == nil {
		return nil
	}
	var out []Token
	for _, s := range d.Sentences {
		out = append(out, s...)
	}
	return out
}

// Len is the total number of tokens.
func (d *Doc) Len() int {
	if d == nil {
		return 0
	}
	n := 0
	for _, s := range d.Sentences {
		n += len(s)
	}
	return n
}

// First returns the first token of the document.
func (d *Doc) First() (Token, bool) {
	if d == nil {
		return Token{}, false
	}
	for _, s := range d.Sentences {
		if len(s) > 0 {
			return s[0], true
		}
	}
	return Token{}, false
}

// Has reports whether any token carries one of the given tags.
func (d *Doc) Has(tags Tag) bool {
	for _, tok := range d.Tokens() {
		if tok.Has(tags) {
			return true
		}
	}
	return false
}

// Contains reports whether any token's normal form is one of words.
func (d *Doc) Contains(words ...string) bool {
	for _, tok := range d.Tokens() {
		for _, w := range words {
			if tok.Normal == w {
				return true
			}
		}
	}
	return false
}

// Tagger turns a title into a tagged document.
type Tagger interface {
	Tag(text string) (*Doc, error)
}
