package heuristics

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"titleguard/internal/nlp"
)

var (
	firstWordRe = regexp.MustCompile(`^[^\p{L}\p{N}]*(\p{L}+)`)
	// "It's been a year", "It has arrived", "It's time to ..."
	openerIdiomRe = regexp.MustCompile(`(?i)^[^\p{L}]*it(?:'?s\s+(?:been|time)\b|\s+has\b)`)

	hiddenObjectQuery = nlp.MustCompile("(#Preposition|#Copula) (this|that|it|these|those)$")
)

var vagueOpeners = map[string]bool{
	"they": true, "he": true, "she": true, "it": true,
	"this": true, "that": true, "those": true, "these": true,
}

func matchSomething(in *Input) bool {
	return strings.Contains(in.Lower, "something")
}

func matchVagueOpener(in *Input) bool {
	m := firstWordRe.FindStringSubmatch(in.Lower)
	if m == nil || !vagueOpeners[m[1]] {
		return false
	}
	if openerIdiomRe.MatchString(in.Title) {
		return false
	}
	if expletiveQuery.Found(in.Doc) || namedOpenerQuery.Found(in.Doc) {
		return false
	}
	return true
}

func matchTrailingTeaser(in *Input) bool {
	t := strings.TrimSpace(in.Title)
	return strings.HasSuffix(t, "..") || strings.HasSuffix(t, "?")
}

// capsWords counts ALL-CAPS words of at least four letters.
func capsWords(title string) int {
	n := 0
	for _, f := range strings.Fields(title) {
		w := strings.TrimFunc(f, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })
		if utf8.RuneCountInString(w) < 4 {
			continue
		}
		upper := true
		for _, r := range w {
			if !unicode.IsLetter(r) || !unicode.IsUpper(r) {
				upper = false
				break
			}
		}
		if upper {
			n++
		}
	}
	return n
}

func describeMultiCaps(in *Input) string {
	return fmt.Sprintf("Multiple ALL CAPS words (%d)", capsWords(in.Title))
}

func matchHiddenObject(in *Input) bool {
	return hiddenObjectQuery.Found(in.Doc)
}
