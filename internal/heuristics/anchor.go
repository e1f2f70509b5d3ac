package heuristics

import "titleguard/internal/nlp"

// placeholderWords never count as a concrete subject even when tagged as nouns.
var placeholderWords = map[string]bool{
	"something": true, "everything": true, "nothing": true, "it": true,
	"this": true, "that": true, "these": true, "those": true, "things": true,
	"i": true, "we": true, "my": true, "me": true, "so": true, "much": true,
}

var firstPersonWords = map[string]bool{
	"i": true, "me": true, "my": true, "myself": true, "we": true, "us": true,
	"our": true, "ourselves": true, "i'm": true, "i've": true, "i'll": true,
	"i'd": true, "we're": true, "we've": true,
}

var deicticNounEndQuery = nlp.MustCompile("(this|that|these|those) #Noun$")

// anchors summarizes what concrete referents a title has.
type anchors struct {
	concreteNoun          bool // common (not proper) noun outside the placeholder set
	concreteNounElsewhere bool // same, not directly after a deictic word
	properNoun            bool
	value                 bool
	firstPerson           bool
	deictic               bool
}

func findAnchors(doc *nlp.Doc) anchors {
	var a anchors
	for _, sent := range doc.Sentences {
		for i, tok := range sent {
			switch {
			case firstPersonWords[tok.Normal]:
				a.firstPerson = true
			case isDeicticWord(tok.Normal):
				a.deictic = true
			}
			if tok.Has(nlp.ProperNoun) {
				a.properNoun = true
			}
			if tok.Has(nlp.Value) {
				a.value = true
			}
			if tok.Has(nlp.Noun) && !tok.Has(nlp.Pronoun|nlp.ProperNoun) && !placeholderWords[tok.Normal] {
				a.concreteNoun = true
				if i == 0 || !isDeicticWord(sent[i-1].Normal) {
					a.concreteNounElsewhere = true
				}
			}
		}
	}
	return a
}

// matchMissingAnchor fires when the title names nothing concrete: no anchor
// at all, a trailing "this <noun>" with no name or number to ground it, or a
// first-person claim about a deictic with nothing else concrete.
func matchMissingAnchor(in *Input) bool {
	a := findAnchors(in.Doc)
	switch {
	case !a.concreteNoun && !a.properNoun && !a.value && !a.firstPerson:
		return true
	case deicticNounEndQuery.Found(in.Doc) && !a.properNoun && !a.value:
		return true
	case a.firstPerson && a.deictic && !a.concreteNounElsewhere && !a.properNoun && !a.value:
		return true
	}
	return false
}

func isDeicticWord(w string) bool {
	for _, d := range deicticWords {
		if w == d {
			return true
		}
	}
	return false
}
