package filter

// SampleTitles is used by the rule tester when no titles are supplied.
var SampleTitles = []string{
	"Amazing Cat Videos Compilation",
	"SCAMMER Gets EXPOSED!!!",
	"Clickbait Title YOU WON'T BELIEVE",
	"How to Cook Pasta - Simple Tutorial",
	"Reaction Video to Popular Song",
	"I Tried Fortnite Cheats... And This Happened",
	"I Tried the Viral Money Hack - Insane Results!",
	"Win Free PS5 Now - Limited Spots Left!",
	"One Stock to Make You Rich Overnight",
	"Cure Diseases with This Kitchen Item Fast",
	"ASMR Challenge That Almost Killed Me",
}

// TestOutcome is one row of a rule test run.
type TestOutcome struct {
	Title   string   `json:"title"`
	Matched []string `json:"matched"`
}

func (o TestOutcome) Blocked() bool {
	return len(o.Matched) > 0
}

// TestRules runs rules over titles, falling back to SampleTitles when titles
// is empty. It returns one outcome per title and the number blocked.
func TestRules(rules, titles []string) ([]TestOutcome, int) {
	if len(titles) == 0 {
		titles = SampleTitles
	}
	out := make([]TestOutcome, 0, len(titles))
	blocked := 0
	for _, t := range titles {
		o := TestOutcome{Title: t, Matched: MatchRules(t, rules)}
		if o.Blocked() {
			blocked++
		}
		out = append(out, o)
	}
	return out, blocked
}
