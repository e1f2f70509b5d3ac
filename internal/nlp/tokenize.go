package nlp

import (
	"strings"
	"unicode"
)

var apostrophes = strings.NewReplacer("’", "'", "‘", "'", "`", "'")

func normalizeWord(w string) string {
	return strings.ToLower(apostrophes.Replace(w))
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// SplitWords breaks a sentence into untagged tokens. Punctuation around a
// word is kept in Pre/Post; chunks with no letters or digits (dashes, emoji,
// "!!!") are dropped.
func SplitWords(sentence string) []Token {
	var toks []Token
	for _, chunk := range strings.Fields(sentence) {
		runes := []rune(chunk)
		lo, hi := 0, len(runes)
		for lo < hi && !isWordRune(runes[lo]) && runes[lo] != '$' {
			lo++
		}
		for hi > lo && !isWordRune(runes[hi-1]) && runes[hi-1] != '%' {
			hi--
		}
		if lo == hi {
			continue
		}
		core := string(runes[lo:hi])
		if !strings.ContainsFunc(core, isWordRune) {
			continue
		}
		toks = append(toks, Token{
			Text:   core,
			Normal: normalizeWord(core),
			Pre:    string(runes[:lo]),
			Post:   string(runes[hi:]),
		})
	}
	return toks
}

// isTitleCased reports whether most words start with a capital letter, in
// which case capitalization says nothing about proper nouns.
func isTitleCased(toks []Token) bool {
	var words, capped int
	for _, t := range toks {
		r := []rune(t.Text)
		if len(r) == 0 || !unicode.IsLetter(r[0]) {
			continue
		}
		words++
		if unicode.IsUpper(r[0]) {
			capped++
		}
	}
	return words >= 2 && capped*10 >= words*6
}

func isAllCaps(s string) bool {
	letters := 0
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letters++
	}
	return letters > 0
}

func isCapitalized(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
