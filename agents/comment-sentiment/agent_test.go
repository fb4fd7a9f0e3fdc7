package commentsentiment

import (
	"strings"
	"testing"
	"time"

	"sentiment-stack/internal/models"
)

func TestSentimentMetricsGetSummary(t *testing.T) {
	tests := []struct {
		name     string
		metrics  SentimentMetrics
		expected string
	}{
		{
			name: "Full run with email",
			metrics: SentimentMetrics{
				VideosRequested: 3,
				VideosAnalyzed:  3,
				CommentsScored:  250,
				CommentsDropped: 12,
				EmailSent:       true,
			},
			expected: "Analyzed 3/3 videos, scored 250 comments (12 dropped), digest emailed",
		},
		{
			name: "Partial run without email",
			metrics: SentimentMetrics{
				VideosRequested: 2,
				VideosAnalyzed:  1,
				CommentsScored:  80,
				CommentsDropped: 5,
			},
			expected: "Analyzed 1/2 videos, scored 80 comments (5 dropped)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.metrics.GetSummary(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func sampleReport() *models.VideoSentimentReport {
	return &models.VideoSentimentReport{
		Input:   "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		VideoID: "dQw4w9WgXcQ",
		Video: &models.VideoMetadata{
			ID:           "dQw4w9WgXcQ",
			Title:        "Never Gonna Give You Up",
			Channel:      "Rick Astley",
			ViewCount:    1500000000,
			CommentCount: 2200000,
			URL:          "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		Results: &models.ResultSet{
			Comments: []*models.ScoredComment{
				{Text: "an absolute classic", PolarityLabel: "Positive", VaderLabel: "Positive"},
				{Text: "who is here in 2024", PolarityLabel: "Neutral", VaderLabel: "Neutral"},
			},
			Dropped: 1,
		},
		PolarityDist: models.LabelCounts{Positive: 1, Neutral: 1},
		VaderDist:    models.LabelCounts{Positive: 1, Neutral: 1},
		TopWords:     []models.WordCount{{Word: "classic", Count: 1}},
		GeneratedAt:  time.Now(),
	}
}

func TestSummarize(t *testing.T) {
	report := sampleReport()

	summary := summarize(report)
	expected := "Never Gonna Give You Up: 2 comments scored (1 dropped), polarity 1+/0-/1=, vader 1+/0-/1="
	if summary != expected {
		t.Errorf("Expected %q, got %q", expected, summary)
	}
}

func TestSummarizeIncomplete(t *testing.T) {
	report := sampleReport()
	report.Incomplete = true
	report.FetchNote = "page 3 failed"

	summary := summarize(report)
	if !strings.HasSuffix(summary, "[retrieval incomplete]") {
		t.Errorf("Expected incomplete marker, got %q", summary)
	}
}

func TestSummarizeEmptyResults(t *testing.T) {
	report := sampleReport()
	report.Results = &models.ResultSet{Dropped: 4}

	summary := summarize(report)
	expected := "Never Gonna Give You Up: no analyzable comments (4 dropped)"
	if summary != expected {
		t.Errorf("Expected %q, got %q", expected, summary)
	}
}

func TestSummarizeFallsBackToVideoID(t *testing.T) {
	report := sampleReport()
	report.Video = nil

	summary := summarize(report)
	if !strings.HasPrefix(summary, "dQw4w9WgXcQ:") {
		t.Errorf("Expected summary keyed by video ID, got %q", summary)
	}
}

func TestBuildDigestEmail(t *testing.T) {
	digest := &models.SentimentDigest{
		Date:    time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		Reports: []*models.VideoSentimentReport{sampleReport()},
	}

	subject, body, err := buildDigestEmail(digest)
	if err != nil {
		t.Fatalf("buildDigestEmail failed: %v", err)
	}

	if subject != "💬 Comment Sentiment Digest - 1 Video (May 1, 2024)" {
		t.Errorf("Unexpected subject: %q", subject)
	}
	for _, want := range []string{
		"Never Gonna Give You Up",
		"Rick Astley",
		"2 comments scored",
		"1 positive",
		"classic (1)",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected body to contain %q", want)
		}
	}
	if strings.Contains(body, "⚠️") {
		t.Errorf("Complete retrieval should not show a warning")
	}
}

func TestBuildDigestEmailEmptyAndIncomplete(t *testing.T) {
	report := sampleReport()
	report.Results = &models.ResultSet{}
	report.Incomplete = true
	report.FetchNote = "youtube commentThreads.list failed: quota exceeded"

	second := sampleReport()
	second.Incomplete = true
	second.FetchNote = "stopped after 100 comments"

	digest := &models.SentimentDigest{
		Date:    time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		Reports: []*models.VideoSentimentReport{report, second},
	}

	subject, body, err := buildDigestEmail(digest)
	if err != nil {
		t.Fatalf("buildDigestEmail failed: %v", err)
	}

	if !strings.Contains(subject, "2 Videos") {
		t.Errorf("Expected plural subject, got %q", subject)
	}
	if !strings.Contains(body, "No analyzable comments") {
		t.Errorf("Expected empty-result note in body")
	}
	if !strings.Contains(body, "quota exceeded") {
		t.Errorf("Expected fetch note in body")
	}
	if !strings.Contains(body, "Comment retrieval stopped early") {
		t.Errorf("Expected incomplete warning for second report")
	}
}
