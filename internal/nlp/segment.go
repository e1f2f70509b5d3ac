package nlp

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Segmenter splits text into sentences.
type Segmenter interface {
	Segment(text string) []string
}

// PunktSegmenter splits sentences with the Punkt model trained on English,
// so "Dr. Phil" does not break a title in two.
type PunktSegmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunktSegmenter loads the bundled English training data.
func NewPunktSegmenter() (*PunktSegmenter, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("nlp: load sentence model: %w", err)
	}
	return &PunktSegmenter{tokenizer: tok}, nil
}

// Segment returns the trimmed, non-empty sentences of text.
func (p *PunktSegmenter) Segment(text string) []string {
	var out []string
	for _, s := range p.tokenizer.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func segment(s Segmenter, text string) []string {
	if s == nil {
		return []string{text}
	}
	parts := s.Segment(text)
	if len(parts) == 0 {
		return []string{text}
	}
	return parts
}
