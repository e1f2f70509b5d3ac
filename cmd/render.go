package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"titleguard/internal/filter"
	"titleguard/internal/heuristics"
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func verdict(blocked bool) string {
	if blocked {
		return color.RedString("BLOCKED")
	}
	return color.GreenString("ok")
}

func renderResults(w io.Writer, titles []string, results []heuristics.Result) {
	table := newTable(w, []string{"Title", "Score", "Verdict", "Reasons"})
	for i, r := range results {
		reasons := r.ReasonText()
		if r.Degraded() {
			reasons = color.YellowString(r.Diagnostic)
		}
		table.Append([]string{titles[i], strconv.Itoa(r.Score), verdict(r.Blocked), reasons})
	}
	table.Render()
}

type jsonResult struct {
	Title string `json:"title"`
	heuristics.Result
	ReasonText string `json:"reason_text"`
}

func renderResultsJSON(w io.Writer, titles []string, results []heuristics.Result) error {
	out := make([]jsonResult, len(results))
	for i, r := range results {
		out[i] = jsonResult{Title: titles[i], Result: r, ReasonText: r.ReasonText()}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// renderRuleTest prints one ✅/❌ line per title.
func renderRuleTest(w io.Writer, outcomes []filter.TestOutcome, scores []heuristics.Result) {
	for i, o := range outcomes {
		line := fmt.Sprintf("%s %q", color.GreenString("✅"), o.Title)
		if o.Blocked() {
			line = fmt.Sprintf("%s %q (matches: %s)", color.RedString("❌"), o.Title, strings.Join(o.Matched, ", "))
		}
		if scores != nil {
			s := scores[i]
			line += fmt.Sprintf(" [heuristic %d %s]", s.Score, verdict(s.Blocked))
		}
		fmt.Fprintln(w, line)
	}
}
