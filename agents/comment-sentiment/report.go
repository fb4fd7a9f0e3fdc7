package commentsentiment

import (
	"bytes"
	"fmt"
	"html/template"

	"sentiment-stack/internal/models"
)

// summarize is the one-line outcome of a video analysis, used in logs and
// run metrics.
func summarize(report *models.VideoSentimentReport) string {
	title := report.VideoID
	if report.Video != nil && report.Video.Title != "" {
		title = report.Video.Title
	}

	if report.Results.Empty() {
		summary := fmt.Sprintf("%s: no analyzable comments (%d dropped)", title, report.Results.Dropped)
		if report.Incomplete {
			summary += " [retrieval incomplete]"
		}
		return summary
	}

	summary := fmt.Sprintf("%s: %d comments scored (%d dropped), polarity %d+/%d-/%d=, vader %d+/%d-/%d=",
		title, len(report.Results.Comments), report.Results.Dropped,
		report.PolarityDist.Positive, report.PolarityDist.Negative, report.PolarityDist.Neutral,
		report.VaderDist.Positive, report.VaderDist.Negative, report.VaderDist.Neutral)
	if report.Incomplete {
		summary += " [retrieval incomplete]"
	}
	return summary
}

// buildDigestEmail renders one run's reports as subject plus HTML body.
func buildDigestEmail(digest *models.SentimentDigest) (string, string, error) {
	noun := "Videos"
	if len(digest.Reports) == 1 {
		noun = "Video"
	}
	subject := fmt.Sprintf("💬 Comment Sentiment Digest - %d %s (%s)",
		len(digest.Reports), noun, digest.Date.Format("Jan 2, 2006"))

	tmplStr := `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Comment Sentiment Digest</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 800px; margin: 0 auto; padding: 20px; }
        .header { background-color: #673AB7; color: white; padding: 20px; border-radius: 8px; margin-bottom: 20px; text-align: center; }
        .video { background-color: #f8f9fa; padding: 15px; border-radius: 8px; margin-bottom: 20px; }
        .positive { color: #4CAF50; font-weight: bold; }
        .negative { color: #F44336; font-weight: bold; }
        .neutral { color: #9E9E9E; font-weight: bold; }
        .warning { color: #FF9800; }
        .stats { color: #666; font-size: 14px; }
        .words { color: #666; font-size: 13px; }
        .footer { text-align: center; color: #666; font-size: 12px; margin-top: 30px; border-top: 1px solid #ddd; padding-top: 15px; }
    </style>
</head>
<body>
    <div class="header">
        <h1>💬 Comment Sentiment Digest</h1>
        <p>{{.Date.Format "Monday, January 2, 2006"}}</p>
    </div>

    {{range .Reports}}
    <div class="video">
        <h2>{{if .Video}}{{.Video.Title}}{{else}}{{.VideoID}}{{end}}</h2>
        {{if .Video}}<p class="stats">{{.Video.Channel}} • {{.Video.ViewCount}} views • {{.Video.CommentCount}} comments on the video</p>{{end}}
        {{if .Results.Empty}}
            <p class="warning">No analyzable comments{{if .FetchNote}} ({{.FetchNote}}){{end}}.</p>
        {{else}}
            <p>{{len .Results.Comments}} comments scored, {{.Results.Dropped}} dropped as too short.</p>
            <p>
                Polarity: <span class="positive">{{.PolarityDist.Positive}} positive</span> /
                <span class="negative">{{.PolarityDist.Negative}} negative</span> /
                <span class="neutral">{{.PolarityDist.Neutral}} neutral</span><br>
                VADER: <span class="positive">{{.VaderDist.Positive}} positive</span> /
                <span class="negative">{{.VaderDist.Negative}} negative</span> /
                <span class="neutral">{{.VaderDist.Neutral}} neutral</span>
            </p>
            {{if .Incomplete}}<p class="warning">⚠️ Comment retrieval stopped early: {{.FetchNote}}</p>{{end}}
            {{if .TopWords}}<p class="words">Top words: {{range $i, $w := .TopWords}}{{if $i}}, {{end}}{{$w.Word}} ({{$w.Count}}){{end}}</p>{{end}}
        {{end}}
        {{if .Video}}<p class="stats"><a href="{{.Video.URL}}">Watch on YouTube</a></p>{{end}}
    </div>
    {{end}}

    <div class="footer">
        <p>Generated by Comment Sentiment Agent</p>
    </div>
</body>
</html>
`

	tmpl, err := template.New("digest").Parse(tmplStr)
	if err != nil {
		return "", "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, digest); err != nil {
		return "", "", err
	}

	return subject, buf.String(), nil
}
