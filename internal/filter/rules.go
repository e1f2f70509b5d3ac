// Package filter decides whether a video should be hidden, combining the
// user's title rules, the explicit video blocklist and the heuristic
// classifier.
package filter

import (
	"regexp"
	"strings"

	"titleguard/internal/models"
)

// ParseRules splits newline-separated rules, trimming each and dropping
// blank lines.
func ParseRules(text string) []string {
	rules := []string{}
	for _, line := range strings.Split(text, "\n") {
		if rule := strings.TrimSpace(line); rule != "" {
			rules = append(rules, rule)
		}
	}
	return rules
}

// MatchRules returns the rules contained in title, compared
// case-insensitively, in rule order.
func MatchRules(title string, rules []string) []string {
	lower := strings.ToLower(title)
	var matched []string
	for _, rule := range rules {
		r := strings.TrimSpace(rule)
		if r == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(r)) {
			matched = append(matched, rule)
		}
	}
	return matched
}

var (
	videoIDRe   = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
	videoHrefRe = regexp.MustCompile(`v=([a-zA-Z0-9_-]{11})|/shorts/([a-zA-Z0-9_-]{11})`)
)

// ValidVideoID reports whether id has the shape of a video id.
func ValidVideoID(id string) bool {
	return videoIDRe.MatchString(id)
}

// ExtractVideoID pulls the video id out of a watch or shorts link. A bare
// id is accepted as-is.
func ExtractVideoID(href string) (string, bool) {
	href = strings.TrimSpace(href)
	if ValidVideoID(href) {
		return href, true
	}
	m := videoHrefRe.FindStringSubmatch(href)
	if m == nil {
		return "", false
	}
	if m[1] != "" {
		return m[1], true
	}
	return m[2], true
}

// ParseBlockedVideos reads "id: title" lines. The title may itself contain
// colons and defaults to models.UnknownTitle. Lines without a valid id are
// skipped.
func ParseBlockedVideos(text string) []models.BlockedVideo {
	videos := []models.BlockedVideo{}
	for _, line := range strings.Split(text, "\n") {
		parts := strings.Split(line, ":")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		id := parts[0]
		if !ValidVideoID(id) {
			continue
		}
		title := strings.Join(parts[1:], ":")
		if title == "" {
			title = models.UnknownTitle
		}
		videos = append(videos, models.BlockedVideo{VideoID: id, Title: title})
	}
	return videos
}
