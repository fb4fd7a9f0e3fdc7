package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"sentiment-stack/internal/models"
)

const commentPreviewLimit = 60

// renderReport prints one video's analysis to w. A terminal gets a rounded
// table; anything else gets tab-separated rows fit for cut and awk.
func renderReport(w io.Writer, report *models.VideoSentimentReport) {
	if v := report.Video; v != nil {
		fmt.Fprintln(w, v.Title)
		fmt.Fprintf(w, "%s • %d views • %d likes • %d comments\n", v.Channel, v.ViewCount, v.LikeCount, v.CommentCount)
	} else {
		fmt.Fprintln(w, report.VideoID)
	}
	if report.Incomplete {
		fmt.Fprintf(w, "Warning: comment retrieval incomplete: %s\n", report.FetchNote)
	}
	fmt.Fprintln(w)

	if report.Results.Empty() {
		fmt.Fprintf(w, "No analyzable comments (%d dropped as too short).\n", report.Results.Dropped)
		return
	}

	if isTerminal(w) {
		fmt.Fprintln(w, renderCommentTable(report.Results.Comments))
	} else {
		renderPlainRows(w, report.Results.Comments)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%d comments scored, %d dropped as too short\n", len(report.Results.Comments), report.Results.Dropped)
	fmt.Fprintf(w, "Polarity: %d positive / %d negative / %d neutral\n",
		report.PolarityDist.Positive, report.PolarityDist.Negative, report.PolarityDist.Neutral)
	fmt.Fprintf(w, "VADER:    %d positive / %d negative / %d neutral\n",
		report.VaderDist.Positive, report.VaderDist.Negative, report.VaderDist.Neutral)

	if len(report.TopWords) > 0 {
		parts := make([]string, 0, len(report.TopWords))
		for _, wc := range report.TopWords {
			parts = append(parts, fmt.Sprintf("%s (%d)", wc.Word, wc.Count))
		}
		fmt.Fprintf(w, "Top words: %s\n", strings.Join(parts, ", "))
	}
}

func renderCommentTable(comments []*models.ScoredComment) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Comment", "Polarity", "Label", "VADER", "Label"})

	for i, c := range comments {
		tw.AppendRow(table.Row{
			i + 1,
			preview(c.Text, commentPreviewLimit),
			fmt.Sprintf("%.3f", c.Polarity),
			c.PolarityLabel,
			fmt.Sprintf("%.4f", c.VaderCompound),
			c.VaderLabel,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

func renderPlainRows(w io.Writer, comments []*models.ScoredComment) {
	fmt.Fprintln(w, "polarity\tpolarity_label\tvader_compound\tvader_label\tcomment")
	for _, c := range comments {
		fmt.Fprintf(w, "%.3f\t%s\t%.4f\t%s\t%s\n", c.Polarity, c.PolarityLabel, c.VaderCompound, c.VaderLabel, c.Text)
	}
}

func preview(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
