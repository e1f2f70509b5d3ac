package heuristics

import "titleguard/internal/nlp"

// DeicticVerdict classifies how a title uses pointer words
// (this, that, these, those).
type DeicticVerdict int

const (
	DeicticAbsent DeicticVerdict = iota
	// benign uses
	DeicticConnector
	DeicticAdverbial
	DeicticTimeReference
	DeicticPresentational
	// violations
	DeicticUndefinedNoun
	DeicticVaguePredicate
	DeicticStandalone
	// present but neither benign nor a violation
	DeicticUnclassified
)

var deicticWords = []string{"this", "that", "these", "those"}

var (
	// the noun must not open the title: an unknown imperative verb ("Grab this
	// deal") is tagged Noun by default
	connectorQuery = nlp.MustCompile(". #Noun (this|that|these|those)")

	// "go this far", "that bad": an adjective not followed by a noun
	adverbialQueries = []*nlp.Query{
		nlp.MustCompile("(this|that|these|those) #Adjective$"),
		nlp.MustCompile("(this|that|these|those) #Adjective !#Noun"),
	}

	timeReferenceQuery = nlp.MustCompile("(this|that|these|those) (year|years|month|months|week|weeks|day|days|" +
		"morning|evening|night|weekend|summer|winter|spring|autumn|fall|season|time|moment|decade|century|" +
		"hour|minute|january|february|march|april|june|july|august|september|october|november|december|" +
		"monday|tuesday|wednesday|thursday|friday|saturday|sunday)")

	// "This is Tokyo at night": names a place or person and says more than the
	// bare name
	presentationalQuery = nlp.MustCompile("^this is #ProperNoun* (#Place|#Person) !#ProperNoun")
	// "This is Paris": enough to excuse the opener, not the deictic
	namedOpenerQuery = nlp.MustCompile("^this is #ProperNoun* (#Place|#Person)")

	// "This is how/why/what/where/the ...": dummy-subject constructions
	expletiveQuery = nlp.MustCompile("^this is (how|why|what|where|the)")

	undefinedNounQuery   = nlp.MustCompile("(this|that|these|those) #Noun")
	vaguePredicateQuery  = nlp.MustCompile("^(this|that) is #Adverb* #Adjective")
	trailingDeicticQuery = nlp.MustCompile("(this|that|these|those) #Adverb? #Adjective?$")
)

// analyzeDeictic applies the benign checks in priority order, each one
// suppressing everything below it, then looks for a violation.
func analyzeDeictic(doc *nlp.Doc) DeicticVerdict {
	if !doc.Contains(deicticWords...) {
		return DeicticAbsent
	}
	switch {
	case connectorQuery.Found(doc):
		return DeicticConnector
	case anyFound(adverbialQueries, doc):
		return DeicticAdverbial
	case timeReferenceQuery.Found(doc):
		return DeicticTimeReference
	case presentationalQuery.Found(doc):
		return DeicticPresentational
	}

	switch {
	case pointsToCommonNoun(doc):
		return DeicticUndefinedNoun
	case vaguePredicateQuery.Found(doc) && !expletiveQuery.Found(doc):
		return DeicticVaguePredicate
	case startsVague(doc) || trailingDeicticQuery.Found(doc):
		return DeicticStandalone
	}
	return DeicticUnclassified
}

// pointsToCommonNoun reports a deictic directly followed by a common noun.
// "this London market" names its subject and does not count.
func pointsToCommonNoun(doc *nlp.Doc) bool {
	for _, sp := range undefinedNounQuery.MatchAll(doc) {
		if !doc.Sentences[sp.Sentence][sp.Start+1].Has(nlp.ProperNoun) {
			return true
		}
	}
	return false
}

// startsVague: the title opens with "this" outside an expletive construction,
// or with another deictic word.
func startsVague(doc *nlp.Doc) bool {
	first, ok := doc.First()
	if !ok {
		return false
	}
	switch first.Normal {
	case "this":
		return !expletiveQuery.Found(doc)
	case "that", "these", "those":
		return true
	}
	return false
}

// Benign reports whether the verdict is an accepted use of a deictic word.
func (v DeicticVerdict) Benign() bool {
	return v >= DeicticConnector && v <= DeicticPresentational
}

func (v DeicticVerdict) String() string {
	switch v {
	case DeicticAbsent:
		return "absent"
	case DeicticConnector:
		return "connector"
	case DeicticAdverbial:
		return "adverbial"
	case DeicticTimeReference:
		return "time-reference"
	case DeicticPresentational:
		return "presentational"
	case DeicticUndefinedNoun:
		return "undefined-noun"
	case DeicticVaguePredicate:
		return "vague-predicate"
	case DeicticStandalone:
		return "standalone"
	}
	return "unclassified"
}

func anyFound(qs []*nlp.Query, doc *nlp.Doc) bool {
	for _, q := range qs {
		if q.Found(doc) {
			return true
		}
	}
	return false
}
