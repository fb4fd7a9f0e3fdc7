package sentiment

// Label buckets a continuous sentiment score.
type Label string

const (
	LabelPositive Label = "Positive"
	LabelNegative Label = "Negative"
	LabelNeutral  Label = "Neutral"
)

// Per-method cutoffs. Each engine owns its pair; the two methods bucket
// independently and never share a scale.
const (
	polarityPositiveCutoff = 0.1
	polarityNegativeCutoff = -0.1
	vaderPositiveCutoff    = 0.05
	vaderNegativeCutoff    = -0.05
)

// Scorer produces a continuous sentiment score in [-1, 1] for normalized
// text. Additional methods plug in next to the existing two by implementing
// this and picking their own cutoffs.
type Scorer interface {
	Name() string
	Score(text string) float64
}

var (
	_ Scorer = (*PolarityScorer)(nil)
	_ Scorer = (*VaderScorer)(nil)
)

// DeriveLabel buckets score using strict inequalities: a score exactly at a
// cutoff stays Neutral.
func DeriveLabel(score, positive, negative float64) Label {
	switch {
	case score > positive:
		return LabelPositive
	case score < negative:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// Scores carries both methods' results for one comment.
type Scores struct {
	Polarity      float64
	Subjectivity  float64
	PolarityLabel Label
	VaderPos      float64
	VaderNeg      float64
	VaderNeu      float64
	VaderCompound float64
	VaderLabel    Label
}

// Analyzer runs the two scoring engines over normalized text. Both engines
// see the same input and neither adjusts the other's output.
type Analyzer struct {
	polarity *PolarityScorer
	vader    *VaderScorer
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		polarity: NewPolarityScorer(),
		vader:    NewVaderScorer(),
	}
}

// Score evaluates both methods. Empty or unscorable text yields zero scores
// and Neutral labels rather than an error.
func (a *Analyzer) Score(text string) Scores {
	polarity, subjectivity := a.polarity.Sentiment(text)
	vader := a.vader.Scores(text)

	return Scores{
		Polarity:      polarity,
		Subjectivity:  subjectivity,
		PolarityLabel: DeriveLabel(polarity, polarityPositiveCutoff, polarityNegativeCutoff),
		VaderPos:      vader.Positive,
		VaderNeg:      vader.Negative,
		VaderNeu:      vader.Neutral,
		VaderCompound: vader.Compound,
		VaderLabel:    DeriveLabel(vader.Compound, vaderPositiveCutoff, vaderNegativeCutoff),
	}
}
