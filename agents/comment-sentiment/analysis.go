package commentsentiment

import (
	"strings"
	"sync"

	"sentiment-stack/internal/models"
	"sentiment-stack/shared/sentiment"
)

// minCommentTokens is the shortest normalized comment worth scoring;
// anything below carries no usable signal.
const minCommentTokens = 2

type scoringJob struct {
	index   int
	comment *models.RawComment
	text    string
}

// scoreComments normalizes, filters, and dual-scores comments. Output order
// equals input order no matter how many workers score in parallel: each job
// writes to its own slot. Comments normalizing to fewer than
// minCommentTokens tokens are dropped and counted.
func scoreComments(analyzer *sentiment.Analyzer, comments []*models.RawComment, workers int) *models.ResultSet {
	results := &models.ResultSet{}

	var jobs []scoringJob
	for _, comment := range comments {
		normalized := sentiment.Normalize(comment.Text)
		if len(strings.Fields(normalized)) < minCommentTokens {
			results.Dropped++
			continue
		}
		jobs = append(jobs, scoringJob{index: len(jobs), comment: comment, text: normalized})
	}

	if len(jobs) == 0 {
		return results
	}

	scored := make([]*models.ScoredComment, len(jobs))

	if workers > len(jobs) {
		workers = len(jobs)
	}
	if workers <= 1 {
		for _, job := range jobs {
			scored[job.index] = scoreOne(analyzer, job)
		}
	} else {
		jobCh := make(chan scoringJob)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for job := range jobCh {
					scored[job.index] = scoreOne(analyzer, job)
				}
			}()
		}
		for _, job := range jobs {
			jobCh <- job
		}
		close(jobCh)
		wg.Wait()
	}

	results.Comments = scored
	return results
}

func scoreOne(analyzer *sentiment.Analyzer, job scoringJob) *models.ScoredComment {
	scores := analyzer.Score(job.text)

	return &models.ScoredComment{
		Author:        job.comment.Author,
		Text:          job.text,
		OriginalText:  job.comment.Text,
		LikeCount:     job.comment.LikeCount,
		PublishedAt:   job.comment.PublishedAt,
		Polarity:      scores.Polarity,
		Subjectivity:  scores.Subjectivity,
		PolarityLabel: string(scores.PolarityLabel),
		VaderPos:      scores.VaderPos,
		VaderNeg:      scores.VaderNeg,
		VaderNeu:      scores.VaderNeu,
		VaderCompound: scores.VaderCompound,
		VaderLabel:    string(scores.VaderLabel),
	}
}

// labelDistribution tallies each method's labels over the set.
func labelDistribution(results *models.ResultSet) (polarity, vader models.LabelCounts) {
	for _, comment := range results.Comments {
		switch comment.PolarityLabel {
		case string(sentiment.LabelPositive):
			polarity.Positive++
		case string(sentiment.LabelNegative):
			polarity.Negative++
		default:
			polarity.Neutral++
		}

		switch comment.VaderLabel {
		case string(sentiment.LabelPositive):
			vader.Positive++
		case string(sentiment.LabelNegative):
			vader.Negative++
		default:
			vader.Neutral++
		}
	}
	return polarity, vader
}
