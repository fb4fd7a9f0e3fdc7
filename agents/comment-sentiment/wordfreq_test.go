package commentsentiment

import (
	"reflect"
	"testing"

	"sentiment-stack/internal/models"
)

func resultSet(texts ...string) *models.ResultSet {
	rs := &models.ResultSet{}
	for _, text := range texts {
		rs.Comments = append(rs.Comments, &models.ScoredComment{Text: text})
	}
	return rs
}

func TestTopWords(t *testing.T) {
	results := resultSet(
		"the guitar solo was amazing, best guitar tone ever",
		"Guitar lesson please! that tone...",
		"drums were great",
	)

	words := topWords(results, 3)

	expected := []models.WordCount{
		{Word: "guitar", Count: 3},
		{Word: "tone", Count: 2},
		{Word: "amazing", Count: 1},
	}
	if !reflect.DeepEqual(words, expected) {
		t.Errorf("Expected %v, got %v", expected, words)
	}
}

func TestTopWordsSkipsStopwordsAndShortWords(t *testing.T) {
	results := resultSet("the video was so so good and I am ok")

	words := topWords(results, 10)

	for _, wc := range words {
		switch wc.Word {
		case "the", "video", "was", "and", "so", "am", "ok", "i":
			t.Errorf("Expected %q to be filtered out", wc.Word)
		}
	}
	if len(words) != 1 || words[0].Word != "good" {
		t.Errorf("Expected only [good], got %v", words)
	}
}

func TestTopWordsBreaksTiesAlphabetically(t *testing.T) {
	results := resultSet("zebra apple zebra apple mango")

	words := topWords(results, 5)

	expected := []models.WordCount{
		{Word: "apple", Count: 2},
		{Word: "zebra", Count: 2},
		{Word: "mango", Count: 1},
	}
	if !reflect.DeepEqual(words, expected) {
		t.Errorf("Expected %v, got %v", expected, words)
	}
}

func TestTopWordsTruncates(t *testing.T) {
	results := resultSet("alpha bravo charlie delta echo foxtrot")

	words := topWords(results, 2)
	if len(words) != 2 {
		t.Errorf("Expected 2 words, got %d", len(words))
	}
}

func TestTopWordsDisabled(t *testing.T) {
	results := resultSet("plenty words here")

	if words := topWords(results, 0); words != nil {
		t.Errorf("Expected nil for n=0, got %v", words)
	}
	if words := topWords(nil, 5); words != nil {
		t.Errorf("Expected nil for nil results, got %v", words)
	}
}
