package sentiment

import (
	_ "embed"
	"strconv"
	"strings"
)

//go:embed lexicon.tsv
var lexiconData string

// lexicon maps lowercase words to their scores, built once at init.
var lexicon = parseLexicon(lexiconData)

type lexiconEntry struct {
	polarity     float64
	subjectivity float64
}

// parseLexicon parses tab-separated "word\tpolarity\tsubjectivity" lines.
// Blank lines and #-comments are skipped, as are malformed rows.
func parseLexicon(raw string) map[string]lexiconEntry {
	m := make(map[string]lexiconEntry, 512)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) != 3 {
			continue
		}
		polarity, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			continue
		}
		subjectivity, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			continue
		}
		m[strings.TrimSpace(parts[0])] = lexiconEntry{polarity, subjectivity}
	}
	return m
}

// negationFactor flips and dampens the polarity of a negated word: "not
// good" reads mildly negative, not as negative as "bad".
const negationFactor = -0.5

// negators include the apostrophe-less contractions left behind by
// normalization ("don't" arrives as "dont").
var negators = map[string]bool{
	"not": true, "no": true, "never": true, "neither": true, "nor": true,
	"cannot": true, "cant": true, "dont": true, "doesnt": true,
	"didnt": true, "isnt": true, "aint": true, "arent": true,
	"wasnt": true, "werent": true, "wont": true, "wouldnt": true,
	"shouldnt": true, "couldnt": true, "hardly": true, "barely": true,
	"without": true,
}

// intensifiers scale the word they precede.
var intensifiers = map[string]float64{
	"very":       1.3,
	"really":     1.3,
	"truly":      1.3,
	"highly":     1.3,
	"totally":    1.3,
	"extremely":  1.5,
	"incredibly": 1.5,
	"absolutely": 1.4,
	"completely": 1.4,
	"super":      1.4,
	"so":         1.2,
	"too":        1.2,
	"quite":      1.1,
	"pretty":     1.1,
	"somewhat":   0.8,
	"slightly":   0.7,
}

// PolarityScorer is the lexicon scoring method: per-word polarity and
// subjectivity averaged over the words the lexicon knows, with negation and
// intensity taken from the one or two preceding words. Text with no known
// words scores zero on both axes.
type PolarityScorer struct{}

func NewPolarityScorer() *PolarityScorer {
	return &PolarityScorer{}
}

func (p *PolarityScorer) Name() string {
	return "polarity"
}

// Score implements Scorer with the polarity component of Sentiment.
func (p *PolarityScorer) Score(text string) float64 {
	polarity, _ := p.Sentiment(text)
	return polarity
}

// Sentiment returns polarity in [-1, 1] and subjectivity in [0, 1].
func (p *PolarityScorer) Sentiment(text string) (polarity, subjectivity float64) {
	words := scoringTokens(text)
	if len(words) == 0 {
		return 0, 0
	}

	var (
		polaritySum     float64
		subjectivitySum float64
		matched         int
	)

	for i, word := range words {
		entry, ok := lexicon[word]
		if !ok {
			continue
		}

		wordPolarity := entry.polarity
		wordSubjectivity := entry.subjectivity

		// Walk back over up to two modifiers so "not very good" both
		// intensifies and negates.
		for j := i - 1; j >= 0 && j >= i-2; j-- {
			if factor, ok := intensifiers[words[j]]; ok {
				wordPolarity *= factor
				wordSubjectivity *= factor
				continue
			}
			if negators[words[j]] {
				wordPolarity *= negationFactor
				continue
			}
			break
		}

		polaritySum += wordPolarity
		subjectivitySum += wordSubjectivity
		matched++
	}

	if matched == 0 {
		return 0, 0
	}

	polarity = clamp(polaritySum/float64(matched), -1, 1)
	subjectivity = clamp(subjectivitySum/float64(matched), 0, 1)
	return polarity, subjectivity
}

// scoringTokens lowercases and splits text, trimming the punctuation that
// normalization keeps.
func scoringTokens(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	words := fields[:0]
	for _, field := range fields {
		if word := strings.Trim(field, ".,!?"); word != "" {
			words = append(words, word)
		}
	}
	return words
}

func clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
