package models

import "time"

// VideoMetadata holds the snippet and statistics for one video. Counts the
// source omits are zero, not errors.
type VideoMetadata struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Channel      string    `json:"channel"`
	PublishedAt  time.Time `json:"published_at"`
	ViewCount    int64     `json:"view_count"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
	URL          string    `json:"url"`
}
