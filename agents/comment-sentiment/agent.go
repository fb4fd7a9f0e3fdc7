package commentsentiment

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"sentiment-stack/agents/comment-sentiment/youtube"
	"sentiment-stack/internal/models"
	"sentiment-stack/shared/config"
	"sentiment-stack/shared/email"
	"sentiment-stack/shared/scheduler"
	"sentiment-stack/shared/sentiment"
	"sentiment-stack/shared/storage"
)

// SentimentMetrics tracks one run's outcome for the scheduler's monitor.
type SentimentMetrics struct {
	VideosRequested int
	VideosAnalyzed  int
	CommentsScored  int
	CommentsDropped int
	EmailSent       bool
}

func (m *SentimentMetrics) GetSummary() string {
	summary := fmt.Sprintf("Analyzed %d/%d videos, scored %d comments (%d dropped)",
		m.VideosAnalyzed, m.VideosRequested, m.CommentsScored, m.CommentsDropped)
	if m.EmailSent {
		summary += ", digest emailed"
	}
	return summary
}

// CommentSentimentAgent fetches the comments of configured videos and
// scores each one with both sentiment methods.
type CommentSentimentAgent struct {
	config   *config.Config
	client   *youtube.Client
	analyzer *sentiment.Analyzer
	sender   *email.Sender
	exporter *storage.CSVExporter
}

func New(cfg *config.Config) *CommentSentimentAgent {
	return &CommentSentimentAgent{config: cfg}
}

func (a *CommentSentimentAgent) Name() string {
	return "Comment Sentiment"
}

// Initialize builds the YouTube client and scoring engines, plus the CSV
// exporter and mail sender when configured. The API key is handed to the
// client once here and never looked up again.
func (a *CommentSentimentAgent) Initialize() error {
	client, err := youtube.NewClient(a.config.CommentSentiment.YouTube.APIKey)
	if err != nil {
		return fmt.Errorf("failed to initialize YouTube client: %w", err)
	}
	a.client = client
	a.analyzer = sentiment.NewAnalyzer()

	if dir := a.config.CommentSentiment.ExportDir; dir != "" {
		exporter, err := storage.NewCSVExporter(dir)
		if err != nil {
			return fmt.Errorf("failed to initialize CSV exporter: %w", err)
		}
		a.exporter = exporter
	}

	if a.config.Email.Configured() {
		a.sender = email.NewSender(&a.config.Email)
	} else {
		log.Println("Email not configured, digests will not be sent")
	}

	return nil
}

// AnalyzeVideo runs the full pipeline for one video reference: resolve the
// ID, fetch metadata, page through comments, normalize and score, then
// summarize. Unknown videos and source failures propagate as errors;
// partial comment retrieval and empty result sets do not, they are valid
// reports.
func (a *CommentSentimentAgent) AnalyzeVideo(ctx context.Context, input string) (*models.VideoSentimentReport, error) {
	videoID := youtube.ResolveVideoID(input)

	metadata, err := a.client.FetchVideoMetadata(ctx, videoID)
	if err != nil {
		return nil, err
	}

	fetched := a.client.FetchComments(ctx, videoID, a.config.CommentSentiment.MaxComments)
	results := scoreComments(a.analyzer, fetched.Comments, a.config.CommentSentiment.Workers)
	polarityDist, vaderDist := labelDistribution(results)

	report := &models.VideoSentimentReport{
		Input:        input,
		VideoID:      videoID,
		Video:        metadata,
		Results:      results,
		Incomplete:   fetched.Incomplete,
		FetchNote:    fetched.Reason,
		PolarityDist: polarityDist,
		VaderDist:    vaderDist,
		TopWords:     topWords(results, a.config.CommentSentiment.TopWords),
		GeneratedAt:  time.Now(),
	}

	if results.Empty() {
		log.Printf("Warning: no analyzable comments for %s", videoID)
	}

	return report, nil
}

// ExportReport writes the report's results as CSV when an export directory
// is configured. An empty path back means export is disabled.
func (a *CommentSentimentAgent) ExportReport(report *models.VideoSentimentReport) (string, error) {
	if a.exporter == nil {
		return "", nil
	}
	return a.exporter.Export(report.VideoID, report.Results)
}

// RunOnce analyzes every configured video. A failing video degrades the
// run to a partial failure and the rest continue; only all of them failing
// is critical.
func (a *CommentSentimentAgent) RunOnce(ctx context.Context, events *scheduler.AgentEvents) error {
	startTime := time.Now()

	videos := a.config.CommentSentiment.Videos
	if len(videos) == 0 {
		err := fmt.Errorf("no videos configured (set comment_sentiment.videos)")
		if events != nil && events.OnCriticalFailure != nil {
			events.OnCriticalFailure(err, time.Since(startTime))
		}
		return err
	}

	metrics := &SentimentMetrics{VideosRequested: len(videos)}
	var reports []*models.VideoSentimentReport
	var failures []string

	for _, input := range videos {
		report, err := a.AnalyzeVideo(ctx, input)
		if err != nil {
			log.Printf("Warning: failed to analyze %s: %v", input, err)
			failures = append(failures, fmt.Sprintf("%s: %v", input, err))
			continue
		}

		log.Println(summarize(report))
		reports = append(reports, report)
		metrics.VideosAnalyzed++
		metrics.CommentsScored += len(report.Results.Comments)
		metrics.CommentsDropped += report.Results.Dropped

		if path, err := a.ExportReport(report); err != nil {
			log.Printf("Warning: failed to export results for %s: %v", report.VideoID, err)
		} else if path != "" {
			log.Printf("Exported results to %s", path)
		}
	}

	duration := time.Since(startTime)

	if len(reports) == 0 {
		err := fmt.Errorf("all %d videos failed: %s", len(videos), strings.Join(failures, "; "))
		if events != nil && events.OnCriticalFailure != nil {
			events.OnCriticalFailure(err, duration)
		}
		return err
	}

	if a.sender != nil {
		digest := &models.SentimentDigest{Date: time.Now(), Reports: reports}
		subject, body, err := buildDigestEmail(digest)
		if err != nil {
			log.Printf("Warning: failed to render digest email: %v", err)
		} else if err := a.sender.SendHTML(subject, body); err != nil {
			log.Printf("Warning: failed to send digest email: %v", err)
		} else {
			metrics.EmailSent = true
			log.Printf("Digest email sent (%d videos)", len(reports))
		}
	}

	if len(failures) > 0 && events != nil && events.OnPartialFailure != nil {
		events.OnPartialFailure(fmt.Errorf("%d of %d videos failed: %s",
			len(failures), len(videos), strings.Join(failures, "; ")), duration)
	}

	if events != nil && events.OnSuccess != nil {
		events.OnSuccess(metrics, duration)
	}

	log.Printf("Comment sentiment run complete: %s", metrics.GetSummary())

	return nil
}
