package heuristics

import "regexp"

// clickbaitPatterns are case-insensitive phrase patterns. Any single match adds
// the clickbait delta once; synonymous phrasings do not stack.
var clickbaitPatterns = compilePatterns(
	// sensational claims
	`you won'?t believe`,
	`\b(shocking|jaw[- ]dropping|mind[- ]blowing)\b`,
	`\b(insane|crazy|unbelievable|incredible)\s+(results?|reaction|ending|transformation|trick|hack|truth)\b`,
	`\bgone (wrong|wild)\b`,
	`\b(exposed|busted)\b`,
	`\bwhat happen(s|ed) next\b`,
	`\bnot clickbait\b`,

	// mystery and curiosity gap
	`\bthe truth about\b`,
	`\b(nobody|no one) (knows|expected|is talking about|talks about)\b`,
	`\bthe real reason\b`,
	`\byou need to (see|know|watch)\b`,
	`\bwait (for|till|until) (the end|it)\b`,
	`\b(finally )?revealed\b`,

	// authority and secrets
	`\bsecrets? (to|of|behind|they)\b`,
	`\b(doctors|experts|scientists|banks|dentists) hate\b`,
	`\bdon'?t want you to know\b`,
	`\bone (weird|simple|little) trick\b`,
	`\b(hidden|forbidden|banned) (truth|knowledge|video|footage)\b`,

	// hyperbole and emotional extremes
	`\b(best|worst|craziest|greatest|scariest) \w+ ever\b`,
	`\b(changed|change|changes) (my|your) life\b`,
	`\b(literally|actually) (died|dying|crying|cried)\b`,
	`\b(i|we) can'?t believe\b`,
	`\bomg\b`,
	`\bepic fail\b`,
	`\b(gone|goes|went) viral\b`,

	// urgency and calls to action
	`\bwatch (this )?before\b`,
	`\bbefore (it'?s too late|it'?s deleted|they delete)`,
	`\bmust (watch|see)\b`,
	`\b(don'?t|never) (buy|do|watch|eat|use) (this|that|these)\b`,
	`\b(stop|quit) (doing|using|buying)\b`,
	`\b(last chance|act now)\b`,
	`\b(viral|money) hack\b`,
)

func compilePatterns(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(`(?i)` + e)
	}
	return out
}

func matchClickbait(in *Input) bool {
	for _, re := range clickbaitPatterns {
		if re.MatchString(in.Title) {
			return true
		}
	}
	return false
}
