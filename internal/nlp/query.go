package nlp

import (
	"fmt"
	"strings"
)

// Span locates a match: tokens [Start, End) of sentence Sentence.
type Span struct {
	Sentence int
	Start    int
	End      int
}

// Query is a compiled tag pattern.
//
// Grammar, terms separated by spaces:
//
//	word          literal, case-insensitive
//	#Tag          any token carrying Tag
//	(a|b|#Tag)    alternation of literals and tags
//	.             any single token
//	!term         one token that does not match term
//	term? term* term+   optional, zero-or-more, one-or-more
//	^first ... last$    anchor to title start / end
//
// Anchors are title-level: ^ only matches at the start of the first sentence
// and $ only at the end of the last one, so segmentation never creates new
// title starts or endings.
//
// Not adds an exclusion filter: a candidate match made up only of excluded
// tokens is discarded.
type Query struct {
	src         string
	terms       []term
	anchorStart bool
	anchorEnd   bool
	exclude     *term
}

type term struct {
	words  []string
	tags   Tag
	any    bool
	negate bool
	min    int
	max    int // -1 means unbounded
}

func (t term) matches(tok Token) bool {
	ok := t.any || tok.Tags&t.tags != 0
	if !ok {
		for _, w := range t.words {
			if tok.Normal == w {
				ok = true
				break
			}
		}
	}
	if t.negate {
		return !ok
	}
	return ok
}

// Compile parses a pattern.
func Compile(pattern string) (*Query, error) {
	fields, err := splitPattern(pattern)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("nlp: empty pattern")
	}
	q := &Query{src: pattern}
	for i, f := range fields {
		if i == 0 && strings.HasPrefix(f, "^") {
			q.anchorStart = true
			f = f[1:]
		}
		if i == len(fields)-1 && strings.HasSuffix(f, "$") {
			q.anchorEnd = true
			f = strings.TrimSuffix(f, "$")
		}
		t, err := parseTerm(f)
		if err != nil {
			return nil, fmt.Errorf("nlp: pattern %q: %w", pattern, err)
		}
		q.terms = append(q.terms, t)
	}
	return q, nil
}

// MustCompile is like Compile but panics on a malformed pattern. Intended for
// package-level rule tables.
func MustCompile(pattern string) *Query {
	q, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return q
}

// Not returns a copy of q that rejects matches consisting solely of tokens
// matching set, e.g. Not("(something|everything|#Pronoun)").
func (q *Query) Not(set string) *Query {
	t, err := parseTerm(set)
	if err != nil {
		panic(fmt.Sprintf("nlp: exclusion %q: %v", set, err))
	}
	t.min, t.max = 1, 1
	cp := *q
	cp.exclude = &t
	cp.src = q.src + ".not(" + set + ")"
	return &cp
}

func (q *Query) String() string { return q.src }

// Match finds the first match of q in doc.
func (q *Query) Match(doc *Doc) (Span, bool) {
	spans := q.matches(doc, true)
	if len(spans) == 0 {
		return Span{}, false
	}
	return spans[0], true
}

// MatchAll returns every match of q in doc, one per start position, in
// document order.
func (q *Query) MatchAll(doc *Doc) []Span {
	return q.matches(doc, false)
}

func (q *Query) matches(doc *Doc, firstOnly bool) []Span {
	if q == nil || doc == nil {
		return nil
	}
	var spans []Span
	n := len(doc.Sentences)
	for si, toks := range doc.Sentences {
		if (q.anchorStart && si != 0) || (q.anchorEnd && si != n-1) {
			continue
		}
		last := len(toks) - 1
		if q.anchorStart {
			last = 0
		}
		for start := 0; start <= last && start < len(toks); start++ {
			if end, ok := q.matchAt(toks, 0, start, start); ok {
				spans = append(spans, Span{Sentence: si, Start: start, End: end})
				if firstOnly {
					return spans
				}
			}
		}
	}
	return spans
}

// Found is Match without the span.
func (q *Query) Found(doc *Doc) bool {
	_, ok := q.Match(doc)
	return ok
}

func (q *Query) matchAt(toks []Token, ti, start, pos int) (int, bool) {
	if ti == len(q.terms) {
		if pos == start {
			return 0, false
		}
		if q.anchorEnd && pos != len(toks) {
			return 0, false
		}
		if q.exclude != nil && allMatch(*q.exclude, toks[start:pos]) {
			return 0, false
		}
		return pos, true
	}
	t := q.terms[ti]
	n := 0
	for (t.max < 0 || n < t.max) && pos+n < len(toks) && t.matches(toks[pos+n]) {
		n++
	}
	for k := n; k >= t.min; k-- {
		if end, ok := q.matchAt(toks, ti+1, start, pos+k); ok {
			return end, true
		}
	}
	return 0, false
}

func allMatch(t term, toks []Token) bool {
	for _, tok := range toks {
		if !t.matches(tok) {
			return false
		}
	}
	return true
}

func parseTerm(f string) (term, error) {
	t := term{min: 1, max: 1}
	if f == "" {
		return t, fmt.Errorf("empty term")
	}
	switch f[len(f)-1] {
	case '?':
		t.min, t.max = 0, 1
		f = f[:len(f)-1]
	case '*':
		t.min, t.max = 0, -1
		f = f[:len(f)-1]
	case '+':
		t.min, t.max = 1, -1
		f = f[:len(f)-1]
	}
	if strings.HasPrefix(f, "!") {
		t.negate = true
		f = f[1:]
	}
	if f == "" {
		return t, fmt.Errorf("term has no body")
	}
	var alts []string
	if strings.HasPrefix(f, "(") {
		if !strings.HasSuffix(f, ")") {
			return t, fmt.Errorf("unclosed group %q", f)
		}
		alts = strings.Split(f[1:len(f)-1], "|")
	} else {
		alts = []string{f}
	}
	for _, a := range alts {
		a = strings.TrimSpace(a)
		switch {
		case a == "":
			return t, fmt.Errorf("empty alternative in %q", f)
		case a == ".":
			t.any = true
		case strings.HasPrefix(a, "#"):
			tag, ok := ParseTag(a[1:])
			if !ok {
				return t, fmt.Errorf("unknown tag %q", a)
			}
			t.tags |= tag
		default:
			t.words = append(t.words, normalizeWord(a))
		}
	}
	return t, nil
}

// splitPattern splits on spaces outside parentheses.
func splitPattern(p string) ([]string, error) {
	var (
		fields []string
		cur    strings.Builder
		depth  int
	)
	flush := func() {
		if cur.Len() > 0 {
			fields = append(fields, cur.String())
			cur.Reset()
		}
	}
	for _, r := range p {
		switch {
		case r == '(':
			depth++
			cur.WriteRune(r)
		case r == ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("nlp: unbalanced ')' in %q", p)
			}
			cur.WriteRune(r)
		case r == ' ' && depth == 0:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("nlp: unbalanced '(' in %q", p)
	}
	flush()
	return fields, nil
}
