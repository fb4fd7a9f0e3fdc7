// Package sentiment scores short user comments with two independent engines:
// a lexicon polarity scorer and VADER. Both consume text cleaned by Normalize.
package sentiment

import (
	"regexp"
	"strings"
)

var (
	urlPattern     = regexp.MustCompile(`http\S+|www\S+|https\S+`)
	mentionPattern = regexp.MustCompile(`@[\p{L}\p{N}_]+`)
	symbolPattern  = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?]`)
)

// Normalize cleans one comment for scoring. Steps run in order: URL-ish
// tokens go first so their punctuation never leaks into later passes, then
// @-mentions, then every rune that is not a word character, whitespace, or
// basic punctuation (.,!?), and finally whitespace collapses to single
// spaces with the ends trimmed. Word characters are Unicode-aware so
// non-English comments survive. The result of a second pass is always
// identical to the first.
func Normalize(raw string) string {
	text := urlPattern.ReplaceAllString(raw, "")
	text = mentionPattern.ReplaceAllString(text, "")
	text = symbolPattern.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}
