package models

import (
	"time"
)

// TitleRule is a user-supplied phrase; any title containing it
// (case-insensitively) is blocked.
type TitleRule struct {
	ID        int64     `db:"id" json:"id"`
	Phrase    string    `db:"phrase" json:"phrase"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// UnknownTitle is recorded for blocked videos whose title was not captured.
const UnknownTitle = "Unknown Title"

// BlockedVideo is an explicitly blocked video id.
type BlockedVideo struct {
	VideoID   string    `db:"video_id" json:"id"`
	Title     string    `db:"title" json:"title"`
	CreatedAt time.Time `db:"created_at" json:"created_at,omitempty"`
}

// Video is what the filter sees of a recommendation tile.
type Video struct {
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

// BlockSource names which mechanism blocked a video.
type BlockSource string

const (
	BlockedByRule      BlockSource = "rule"
	BlockedByVideoID   BlockSource = "video_id"
	BlockedByHeuristic BlockSource = "heuristic"
)
