package heuristics

import (
	"strings"

	"titleguard/internal/nlp"
)

// Reasons reported by the rules.
const (
	ReasonClickbait         = "Clickbait/dramatic phrase"
	ReasonDeicticNoun       = "Deictic pointing to undefined noun"
	ReasonVaguePredicate    = "Vague predicate adjective"
	ReasonStandaloneDeictic = "Standalone vague deictic reference"
	ReasonNoAnchor          = "No specific subject/anchor detected"
	ReasonVagueSomething    = "Contains vague word 'something'"
	ReasonVagueOpener       = "Opens with a vague pronoun"
	ReasonTrailingTeaser    = "Ends with teaser punctuation"
	ReasonSingleCaps        = "Single ALL CAPS word"
	ReasonHiddenObject      = "Ends on a hidden object"
)

// Rule is one heuristic. Rules sharing a Group are mutually exclusive: the
// first matching rule of the group fires and the rest are skipped.
type Rule struct {
	ID     string
	Group  string
	Delta  int
	Reason string
	Match  func(in *Input) bool
	// Describe builds the reason from the input when it carries detail.
	Describe func(in *Input) string
}

func (r Rule) reason(in *Input) string {
	if r.Describe != nil {
		return r.Describe(in)
	}
	return r.Reason
}

// Input is the per-call evaluation state shared by all rules. It is created
// for a single Classify call and discarded afterwards.
type Input struct {
	Title string
	Lower string
	Doc   *nlp.Doc

	deictic     DeicticVerdict
	deicticDone bool
}

func newInput(title string, doc *nlp.Doc) *Input {
	return &Input{Title: title, Lower: strings.ToLower(title), Doc: doc}
}

// Deictic returns the deictic analyzer's verdict, computed once per call.
func (in *Input) Deictic() DeicticVerdict {
	if !in.deicticDone {
		in.deictic = analyzeDeictic(in.Doc)
		in.deicticDone = true
	}
	return in.deictic
}

// Registry returns the rules in evaluation order: clickbait, deictic, anchor,
// vague substring, vague opener, trailing teaser, shouting, hidden object.
func Registry() []Rule {
	return []Rule{
		{ID: "clickbait-phrase", Delta: 10, Reason: ReasonClickbait, Match: matchClickbait},

		{ID: "deictic-noun", Group: "deictic", Delta: 10, Reason: ReasonDeicticNoun,
			Match: func(in *Input) bool { return in.Deictic() == DeicticUndefinedNoun }},
		{ID: "deictic-predicate", Group: "deictic", Delta: 10, Reason: ReasonVaguePredicate,
			Match: func(in *Input) bool { return in.Deictic() == DeicticVaguePredicate }},
		{ID: "deictic-standalone", Group: "deictic", Delta: 10, Reason: ReasonStandaloneDeictic,
			Match: func(in *Input) bool { return in.Deictic() == DeicticStandalone }},

		{ID: "missing-anchor", Delta: 10, Reason: ReasonNoAnchor, Match: matchMissingAnchor},

		{ID: "vague-something", Delta: 10, Reason: ReasonVagueSomething, Match: matchSomething},
		{ID: "vague-opener", Delta: 10, Reason: ReasonVagueOpener, Match: matchVagueOpener},
		{ID: "trailing-teaser", Delta: 5, Reason: ReasonTrailingTeaser, Match: matchTrailingTeaser},

		{ID: "caps-multi", Group: "caps", Delta: 10, Match: func(in *Input) bool { return capsWords(in.Title) >= 2 },
			Describe: describeMultiCaps},
		{ID: "caps-single", Group: "caps", Delta: 5, Reason: ReasonSingleCaps,
			Match: func(in *Input) bool { return capsWords(in.Title) == 1 }},

		{ID: "hidden-object", Delta: 10, Reason: ReasonHiddenObject, Match: matchHiddenObject},
	}
}
