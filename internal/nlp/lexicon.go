package nlp

import (
	"regexp"
	"strings"
)

// words builds a lexicon fragment mapping each space-separated word to tags.
func words(tags Tag, list string) map[string]Tag {
	m := make(map[string]Tag)
	for _, w := range strings.Fields(list) {
		m[w] = tags
	}
	return m
}

// closedClass holds function words; their tags are never overridden by
// capitalization or suffix guesses.
var closedClass = mergeLexicon(
	words(Pronoun, `i me my mine myself we us our ours ourselves you your yours yourself
		he him his himself she her hers herself it its itself they them their theirs themselves
		someone somebody something everyone everybody everything anyone anybody anything
		nobody nothing i'm i've i'll i'd you're you've you'll we're we've they're they've
		he's she's it's that's what's there's here's who's`),
	words(Pronoun|Determiner, `this that these those`),
	words(Determiner, `the a an every each some any no all both another either neither`),
	words(Preposition, `in on at for to of with from by about into onto over under after before
		between without through during against like near than vs versus around behind inside
		outside via per across toward towards upon within beyond`),
	words(Copula, `is are was were be been being am isn't aren't wasn't weren't`),
	words(Conjunction, `and or but nor yet because if while although though unless until whether`),
	words(Adverb|Conjunction, `so`),
	words(QuestionWord, `how why what where when who whom which whose`),
	words(Verb, `can could will would should must may might shall let have has had
		don't won't can't didn't doesn't couldn't shouldn't wouldn't haven't hasn't do does did`),
)

// openClass is a small hand-built lexicon of frequent title vocabulary.
var openClass = mergeLexicon(
	words(Adverb, `very really too just actually literally even never always ever still already
		almost quite totally completely extremely absolutely seriously finally here there now then
		today tonight again only also much more most not away back out up down off soon once twice
		well instantly forever rather pretty`),
	words(Adjective, `good bad best worst better worse great big small huge tiny new old crazy insane
		amazing awesome incredible unbelievable shocking simple easy hard real true fake weird strange
		scary funny sad happy perfect cheap expensive rich poor free first last next final viral
		hidden wrong right far late early long short wild epic ultimate ready sure possible impossible
		important different same entire whole full quick fast slow beautiful ugly cute illegal legit
		broken cool hot cold dead alive special rare famous stupid dumb smart worth honest brutal
		massive deadly favorite favourite local healthy delicious homemade nice young clean dirty
		safe crisp fresh high low deep open strong weak serious huge`),
	words(Verb, `need needs see saw seen know knew get gets got make makes made try tried tries done
		watch watched cook cooked believe happened happens happen change changed changes buy bought
		use used eat ate stop stopped think thought want wants said say says tell told find found
		learn learned build built go goes went gone come came take took give gave show look looks
		play plays react reacts explain explained expect expected win won lose lost hate hates love
		loves fix fixed quit start started turn turned destroyed ruined exposed revealed discover
		discovered keep kept put run ran bring brought feel felt became become leave left meet met
		pay paid sell sold visit visited ranked rated wait`),
	words(Noun, `year years month months week weeks day days morning evening night nights weekend
		summer winter spring autumn season time times moment decade century hour hours minute minutes
		january february march april june july august september october november december
		monday tuesday wednesday thursday friday saturday sunday`),
	words(Value, `zero one two three four five six seven eight nine ten eleven twelve thirteen fourteen
		fifteen sixteen seventeen eighteen nineteen twenty thirty forty fifty sixty seventy eighty
		ninety hundred thousand million billion dozen half`),
)

// gazetteer names places and people the lexicon tagger recognizes without
// relying on capitalization.
var gazetteer = mergeLexicon(
	words(Place|ProperNoun|Noun, `paris london tokyo japan china india france germany italy spain
		mexico canada usa america uk england europe asia africa australia brazil russia korea texas
		california florida york berlin rome dubai seoul moscow chicago vegas hawaii iceland norway
		sweden egypt thailand vietnam bali ireland scotland amsterdam barcelona istanbul singapore
		kyoto osaka lisbon madrid vienna prague athens cairo sydney toronto`),
	words(Person|ProperNoun|Noun, `john james mike elon musk taylor swift mrbeast obama trump biden
		gordon ramsay messi ronaldo lebron drake beyonce einstein david sarah emma jake logan
		michael jordan oprah kanye rihanna shakira`),
)

func mergeLexicon(parts ...map[string]Tag) map[string]Tag {
	out := make(map[string]Tag)
	for _, p := range parts {
		for w, t := range p {
			out[w] |= t
		}
	}
	return out
}

var numericWord = regexp.MustCompile(`^[$€£]?\d[\d,.]*(k|m|b|x|%|s|st|nd|rd|th|am|pm)?$`)

// guessBySuffix returns a tag for unknown words from common English endings.
func guessBySuffix(w string) Tag {
	n := len(w)
	switch {
	case n > 4 && strings.HasSuffix(w, "ly"):
		return Adverb
	case n > 5 && (strings.HasSuffix(w, "ous") || strings.HasSuffix(w, "ful") ||
		strings.HasSuffix(w, "less") || strings.HasSuffix(w, "able") ||
		strings.HasSuffix(w, "ible") || strings.HasSuffix(w, "ish")):
		return Adjective
	case n > 4 && strings.HasSuffix(w, "ed"):
		return Verb
	}
	return 0
}
