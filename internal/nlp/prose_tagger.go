package nlp

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

// ProseTagger tags with prose's averaged-perceptron POS model and its named
// entity recognizer. Function words still come from the closed-class lexicon,
// and prose's split contractions ("wo" + "n't") are joined back, so pattern
// literals like "this is" or "won't" behave the same under both engines.
type ProseTagger struct {
	segmenter Segmenter
	model     *prose.Model
}

// NewProseTagger loads prose's POS and entity models once; every Tag call
// reuses them. The models are read-only after loading, so the tagger is safe
// for concurrent use.
func NewProseTagger(seg Segmenter) (*ProseTagger, error) {
	warm, err := prose.NewDocument("model warm up", prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("nlp: load prose model: %w", err)
	}
	return &ProseTagger{segmenter: seg, model: warm.Model}, nil
}

var _ Tagger = (*ProseTagger)(nil)

// Tag implements Tagger.
func (p *ProseTagger) Tag(text string) (*Doc, error) {
	out := &Doc{Text: text}
	for _, sent := range segment(p.segmenter, text) {
		pd, err := prose.NewDocument(sent, prose.WithSegmentation(false), prose.UsingModel(p.model))
		if err != nil {
			return nil, fmt.Errorf("nlp: prose: %w", err)
		}
		var toks []Token
		for _, pt := range mergeContractions(pd.Tokens()) {
			words := SplitWords(pt.Text)
			if len(words) == 0 {
				continue
			}
			tok := words[0]
			if tags, ok := closedClass[tok.Normal]; ok {
				tok.Tags = tags
			} else {
				tok.Tags = pennTags(pt.Tag) | entityTags(pt.Label)
			}
			toks = append(toks, tok)
		}
		if len(toks) > 0 {
			out.Sentences = append(out.Sentences, toks)
		}
	}
	return out, nil
}

// mergeContractions glues clitics prose splits off ("n't", "'m", "'s") back
// onto the preceding token, which keeps its tag and label.
func mergeContractions(toks []prose.Token) []prose.Token {
	out := make([]prose.Token, 0, len(toks))
	for _, t := range toks {
		if len(out) > 0 && isClitic(t.Text) {
			out[len(out)-1].Text += t.Text
			continue
		}
		out = append(out, t)
	}
	return out
}

func isClitic(s string) bool {
	lower := strings.ToLower(s)
	if lower == "n't" || lower == "n’t" {
		return true
	}
	for _, apos := range []string{"'", "’"} {
		if rest, ok := strings.CutPrefix(lower, apos); ok {
			return rest != "" && strings.Trim(rest, "abcdefghijklmnopqrstuvwxyz") == ""
		}
	}
	return false
}

// pennTags maps a Penn Treebank tag to lexical categories.
func pennTags(penn string) Tag {
	switch {
	case penn == "NNP" || penn == "NNPS":
		return ProperNoun | Noun
	case strings.HasPrefix(penn, "NN"):
		return Noun
	case strings.HasPrefix(penn, "JJ"):
		return Adjective
	case strings.HasPrefix(penn, "RB"):
		return Adverb
	case penn == "CD":
		return Value
	case strings.HasPrefix(penn, "PRP"), penn == "WP", penn == "WP$":
		return Pronoun
	case strings.HasPrefix(penn, "VB"), penn == "MD":
		return Verb
	case penn == "IN", penn == "TO":
		return Preposition
	case penn == "DT", penn == "PDT":
		return Determiner
	case penn == "CC":
		return Conjunction
	case penn == "WRB":
		return QuestionWord
	}
	return 0
}

// entityTags maps prose's IOB entity labels (B-GPE, I-PERSON, ...).
func entityTags(label string) Tag {
	switch {
	case strings.HasSuffix(label, "GPE"):
		return Place | ProperNoun | Noun
	case strings.HasSuffix(label, "PERSON"):
		return Person | ProperNoun | Noun
	}
	return 0
}
