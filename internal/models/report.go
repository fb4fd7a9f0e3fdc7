package models

import "time"

// LabelCounts is a sentiment label histogram for one scoring method.
type LabelCounts struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

func (lc LabelCounts) Total() int {
	return lc.Positive + lc.Negative + lc.Neutral
}

// WordCount is one entry of a word-frequency summary.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// VideoSentimentReport is the full outcome of analyzing one video.
type VideoSentimentReport struct {
	Input        string         `json:"input"`
	VideoID      string         `json:"video_id"`
	Video        *VideoMetadata `json:"video"`
	Results      *ResultSet     `json:"results"`
	Incomplete   bool           `json:"incomplete"`
	FetchNote    string         `json:"fetch_note,omitempty"`
	PolarityDist LabelCounts    `json:"polarity_distribution"`
	VaderDist    LabelCounts    `json:"vader_distribution"`
	TopWords     []WordCount    `json:"top_words,omitempty"`
	GeneratedAt  time.Time      `json:"generated_at"`
}

// SentimentDigest bundles the reports of one scheduled run for email delivery.
type SentimentDigest struct {
	Date    time.Time               `json:"date"`
	Reports []*VideoSentimentReport `json:"reports"`
}
