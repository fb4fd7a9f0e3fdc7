package models

import "time"

// RawComment is one top-level comment as fetched, before any cleaning.
type RawComment struct {
	Author      string    `json:"author"`
	Text        string    `json:"text"`
	LikeCount   int64     `json:"like_count"`
	PublishedAt time.Time `json:"published_at"`
}

// CommentFetchResult carries whatever comments pagination managed to retrieve.
// Incomplete is set when retrieval stopped before the budget or the thread was
// exhausted, with Reason recording why.
type CommentFetchResult struct {
	Comments   []*RawComment `json:"comments"`
	Incomplete bool          `json:"incomplete"`
	Reason     string        `json:"reason,omitempty"`
}

// ScoredComment is one comment after normalization and dual scoring. Text is
// the normalized form; OriginalText is kept verbatim for display.
type ScoredComment struct {
	Author        string    `json:"author"`
	Text          string    `json:"comment"`
	OriginalText  string    `json:"original_text"`
	LikeCount     int64     `json:"likes"`
	PublishedAt   time.Time `json:"published_at"`
	Polarity      float64   `json:"polarity"`
	Subjectivity  float64   `json:"subjectivity"`
	PolarityLabel string    `json:"polarity_label"`
	VaderPos      float64   `json:"vader_pos"`
	VaderNeg      float64   `json:"vader_neg"`
	VaderNeu      float64   `json:"vader_neu"`
	VaderCompound float64   `json:"vader_compound"`
	VaderLabel    string    `json:"vader_label"`
}

// ResultSet is the ordered outcome of one analysis run. Comments keeps the
// retrieval order; Dropped counts comments removed by the minimum-length
// filter before scoring. An empty set is a valid outcome.
type ResultSet struct {
	Comments []*ScoredComment `json:"comments"`
	Dropped  int              `json:"dropped"`
}

// Empty reports whether the run produced no scored comments.
func (rs *ResultSet) Empty() bool {
	return rs == nil || len(rs.Comments) == 0
}
