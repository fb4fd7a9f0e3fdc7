package sentiment

import "github.com/jonreiter/govader"

// VaderScorer is the rule-based scoring method, backed by govader. Labels
// come from the compound score; the positive/neutral/negative components
// ride along for reporting.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderScorer) Name() string {
	return "vader"
}

// Score implements Scorer with the compound score.
func (v *VaderScorer) Score(text string) float64 {
	return v.Scores(text).Compound
}

// Scores returns the full VADER breakdown. Empty text scores zero across
// the board.
func (v *VaderScorer) Scores(text string) govader.Sentiment {
	return v.analyzer.PolarityScores(text)
}
