package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"sentiment-stack/internal/models"
)

// csvHeader matches the ScoredComment field names, score columns in the
// order the methods report them.
var csvHeader = []string{
	"author", "comment", "original_text", "likes", "published_at",
	"polarity", "subjectivity", "polarity_label",
	"vader_pos", "vader_neg", "vader_neu", "vader_compound", "vader_label",
}

// CSVExporter writes one CSV file per analyzed video into a local export
// directory. Files are run artifacts, not a store: nothing is ever read
// back.
type CSVExporter struct {
	dir string
}

// NewCSVExporter creates the export directory if needed.
func NewCSVExporter(dir string) (*CSVExporter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	return &CSVExporter{dir: dir}, nil
}

// Export writes the result set for one video and returns the written path.
// The file name carries the video ID and the export time.
func (e *CSVExporter) Export(videoID string, results *models.ResultSet) (string, error) {
	name := fmt.Sprintf("%s_%s.csv", videoID, time.Now().Format("20060102_150405"))
	path := filepath.Join(e.dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	if err := WriteCSV(file, results); err != nil {
		return "", fmt.Errorf("failed to write export file %s: %w", path, err)
	}

	return path, nil
}

// WriteCSV writes the header row plus one row per scored comment, in result
// order.
func WriteCSV(w io.Writer, results *models.ResultSet) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, comment := range results.Comments {
		row := []string{
			comment.Author,
			comment.Text,
			comment.OriginalText,
			strconv.FormatInt(comment.LikeCount, 10),
			formatTime(comment.PublishedAt),
			formatScore(comment.Polarity),
			formatScore(comment.Subjectivity),
			comment.PolarityLabel,
			formatScore(comment.VaderPos),
			formatScore(comment.VaderNeg),
			formatScore(comment.VaderNeu),
			formatScore(comment.VaderCompound),
			comment.VaderLabel,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
