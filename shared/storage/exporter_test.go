package storage

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"sentiment-stack/internal/models"
)

func sampleResults() *models.ResultSet {
	return &models.ResultSet{
		Comments: []*models.ScoredComment{
			{
				Author:        "alice",
				Text:          "great video, thanks",
				OriginalText:  "great video, thanks! 🔥",
				LikeCount:     12,
				PublishedAt:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
				Polarity:      0.6,
				Subjectivity:  0.58,
				PolarityLabel: "Positive",
				VaderPos:      0.5,
				VaderNeu:      0.5,
				VaderCompound: 0.72,
				VaderLabel:    "Positive",
			},
			{
				Author:        "bob",
				Text:          "pretty boring honestly",
				OriginalText:  "pretty boring honestly",
				PolarityLabel: "Negative",
				Polarity:      -0.55,
				VaderCompound: -0.34,
				VaderLabel:    "Negative",
			},
		},
		Dropped: 1,
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleResults()); err != nil {
		t.Fatalf("WriteCSV returned error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("got %d rows, want header plus 2 comments", len(records))
	}

	wantHeader := "author,comment,original_text,likes,published_at,polarity,subjectivity,polarity_label,vader_pos,vader_neg,vader_neu,vader_compound,vader_label"
	if got := strings.Join(records[0], ","); got != wantHeader {
		t.Errorf("header = %q, want %q", got, wantHeader)
	}

	first := records[1]
	if first[0] != "alice" || first[3] != "12" || first[7] != "Positive" {
		t.Errorf("first row mapping wrong: %v", first)
	}
	if first[5] != "0.6000" {
		t.Errorf("polarity formatting = %q, want 0.6000", first[5])
	}
	if first[4] != "2024-05-01T10:00:00Z" {
		t.Errorf("published_at formatting = %q", first[4])
	}

	second := records[2]
	if second[0] != "bob" || second[4] != "" {
		t.Errorf("zero published_at should render empty, got %v", second)
	}
}

func TestCSVExporterExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")

	exporter, err := NewCSVExporter(dir)
	if err != nil {
		t.Fatalf("NewCSVExporter returned error: %v", err)
	}

	path, err := exporter.Export("dQw4w9WgXcQ", sampleResults())
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Errorf("export written to %s, want directory %s", path, dir)
	}
	if !strings.HasPrefix(filepath.Base(path), "dQw4w9WgXcQ_") {
		t.Errorf("file name %s should start with the video ID", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Errorf("export has %d lines, want 3", len(lines))
	}
}
