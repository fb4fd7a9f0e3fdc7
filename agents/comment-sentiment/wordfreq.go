package commentsentiment

import (
	"sort"
	"strings"

	"sentiment-stack/internal/models"
)

// stopwords are skipped when counting word frequencies; they say nothing
// about the video. Contractions appear without apostrophes because
// normalization strips them.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "her": true,
	"was": true, "one": true, "our": true, "out": true, "his": true,
	"has": true, "had": true, "how": true, "man": true, "new": true,
	"now": true, "old": true, "see": true, "two": true, "way": true,
	"who": true, "did": true, "get": true, "got": true, "him": true,
	"she": true, "too": true, "use": true, "this": true, "that": true,
	"with": true, "have": true, "from": true, "they": true, "been": true,
	"were": true, "what": true, "when": true, "your": true, "will": true,
	"would": true, "there": true, "their": true, "about": true,
	"which": true, "these": true, "those": true, "then": true,
	"them": true, "than": true, "some": true, "just": true, "like": true,
	"very": true, "really": true, "much": true, "more": true, "most": true,
	"also": true, "only": true, "over": true, "such": true, "even": true,
	"here": true, "because": true, "after": true, "before": true,
	"being": true, "does": true, "doing": true, "each": true, "into": true,
	"other": true, "same": true, "should": true, "could": true,
	"video": true, "videos": true, "watch": true, "watching": true,
	"youre": true, "dont": true, "cant": true, "its": true,
	"thats": true, "ive": true, "im": true, "isnt": true, "didnt": true,
	"doesnt": true, "youve": true, "hes": true, "shes": true,
	"theyre": true, "wont": true, "wasnt": true, "still": true,
	"ever": true, "never": true, "always": true, "every": true,
	"where": true, "while": true, "back": true, "make": true,
	"makes": true, "made": true, "want": true, "know": true, "think": true,
	"going": true, "feel": true, "people": true, "actually": true,
	"time": true, "years": true, "year": true, "first": true,
}

// topWords counts the words across the normalized comments and returns the
// n most frequent, ties broken alphabetically so output is deterministic.
// Words shorter than three runes and stopwords are skipped.
func topWords(results *models.ResultSet, n int) []models.WordCount {
	if n <= 0 || results == nil {
		return nil
	}

	counts := make(map[string]int)
	for _, comment := range results.Comments {
		for _, field := range strings.Fields(strings.ToLower(comment.Text)) {
			word := strings.Trim(field, ".,!?")
			if len([]rune(word)) < 3 || stopwords[word] {
				continue
			}
			counts[word]++
		}
	}

	words := make([]models.WordCount, 0, len(counts))
	for word, count := range counts {
		words = append(words, models.WordCount{Word: word, Count: count})
	}

	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Word < words[j].Word
	})

	if len(words) > n {
		words = words[:n]
	}
	return words
}
