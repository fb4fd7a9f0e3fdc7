package commentsentiment

import (
	"fmt"
	"testing"

	"sentiment-stack/internal/models"
	"sentiment-stack/shared/sentiment"
)

func rawComment(text string) *models.RawComment {
	return &models.RawComment{Author: "tester", Text: text}
}

func TestScoreCommentsDropsShortComments(t *testing.T) {
	analyzer := sentiment.NewAnalyzer()

	comments := []*models.RawComment{
		rawComment("This video is amazing, I loved every minute"),
		rawComment("ok video"), // exactly two tokens, kept
		rawComment("wow"),      // one token after cleanup
		rawComment("🔥🔥🔥"),      // nothing left after cleanup
		rawComment(""),
	}

	results := scoreComments(analyzer, comments, 1)

	if len(results.Comments) != 2 {
		t.Fatalf("Expected 2 scored comments, got %d", len(results.Comments))
	}
	if results.Dropped != 3 {
		t.Errorf("Expected 3 dropped comments, got %d", results.Dropped)
	}
	if results.Comments[1].Text != "ok video" {
		t.Errorf("Expected two-token comment to survive, got %q", results.Comments[1].Text)
	}
}

func TestScoreCommentsKeepsOriginalText(t *testing.T) {
	analyzer := sentiment.NewAnalyzer()

	original := "Check this out http://x.co @joe AMAZING video!!"
	comment := &models.RawComment{Author: "joe fan", Text: original, LikeCount: 7}
	results := scoreComments(analyzer, []*models.RawComment{comment}, 1)

	if len(results.Comments) != 1 {
		t.Fatalf("Expected 1 scored comment, got %d", len(results.Comments))
	}
	scored := results.Comments[0]
	if scored.OriginalText != original {
		t.Errorf("Expected original text preserved, got %q", scored.OriginalText)
	}
	if scored.Text != "Check this out AMAZING video!!" {
		t.Errorf("Expected normalized text, got %q", scored.Text)
	}
	if scored.LikeCount != 7 {
		t.Errorf("Expected like count preserved, got %d", scored.LikeCount)
	}
	if scored.PolarityLabel != "Positive" || scored.VaderLabel != "Positive" {
		t.Errorf("Expected both methods to label Positive, got %s/%s",
			scored.PolarityLabel, scored.VaderLabel)
	}
}

func TestScoreCommentsPreservesOrder(t *testing.T) {
	analyzer := sentiment.NewAnalyzer()

	var comments []*models.RawComment
	for i := 0; i < 50; i++ {
		comments = append(comments, rawComment(fmt.Sprintf("comment number %d is pretty good", i)))
	}

	results := scoreComments(analyzer, comments, 8)

	if len(results.Comments) != 50 {
		t.Fatalf("Expected 50 scored comments, got %d", len(results.Comments))
	}
	for i, scored := range results.Comments {
		expected := fmt.Sprintf("comment number %d is pretty good", i)
		if scored.Text != expected {
			t.Fatalf("Comment %d out of order: got %q", i, scored.Text)
		}
	}
}

func TestScoreCommentsParallelMatchesSequential(t *testing.T) {
	analyzer := sentiment.NewAnalyzer()

	texts := []string{
		"This is absolutely amazing, best video ever",
		"terrible content, complete waste of time",
		"the upload happened on a tuesday",
		"not bad at all, really enjoyed it",
		"I hate this so much, awful awful awful",
		"pretty decent explanation of the topic",
	}
	var comments []*models.RawComment
	for _, text := range texts {
		comments = append(comments, rawComment(text))
	}

	sequential := scoreComments(analyzer, comments, 1)
	parallel := scoreComments(analyzer, comments, 4)

	if len(sequential.Comments) != len(parallel.Comments) {
		t.Fatalf("Sequential scored %d, parallel scored %d", len(sequential.Comments), len(parallel.Comments))
	}
	for i := range sequential.Comments {
		seq, par := sequential.Comments[i], parallel.Comments[i]
		if seq.Text != par.Text {
			t.Errorf("Comment %d: text mismatch %q vs %q", i, seq.Text, par.Text)
		}
		if seq.Polarity != par.Polarity || seq.VaderCompound != par.VaderCompound {
			t.Errorf("Comment %d: scores differ between worker counts (%v/%v vs %v/%v)",
				i, seq.Polarity, seq.VaderCompound, par.Polarity, par.VaderCompound)
		}
		if seq.PolarityLabel != par.PolarityLabel || seq.VaderLabel != par.VaderLabel {
			t.Errorf("Comment %d: labels differ between worker counts", i)
		}
	}
}

func TestScoreCommentsEmptyInput(t *testing.T) {
	analyzer := sentiment.NewAnalyzer()

	results := scoreComments(analyzer, nil, 4)
	if !results.Empty() {
		t.Errorf("Expected empty result set for no comments")
	}
	if results.Dropped != 0 {
		t.Errorf("Expected 0 dropped, got %d", results.Dropped)
	}
}

func TestLabelDistribution(t *testing.T) {
	results := &models.ResultSet{
		Comments: []*models.ScoredComment{
			{PolarityLabel: "Positive", VaderLabel: "Positive"},
			{PolarityLabel: "Positive", VaderLabel: "Neutral"},
			{PolarityLabel: "Negative", VaderLabel: "Negative"},
			{PolarityLabel: "Neutral", VaderLabel: "Positive"},
			{PolarityLabel: "Neutral", VaderLabel: "Neutral"},
		},
	}

	polarity, vader := labelDistribution(results)

	if polarity.Positive != 2 || polarity.Negative != 1 || polarity.Neutral != 2 {
		t.Errorf("Polarity distribution wrong: %+v", polarity)
	}
	if vader.Positive != 2 || vader.Negative != 1 || vader.Neutral != 2 {
		t.Errorf("VADER distribution wrong: %+v", vader)
	}
	if polarity.Total() != 5 || vader.Total() != 5 {
		t.Errorf("Totals wrong: %d polarity, %d vader", polarity.Total(), vader.Total())
	}
}
