package duygu

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode"
)

// Legacy dataset label vocabulary. The Turkish strings live only at this
// I/O boundary; everything else works with Label.
const (
	legacyPositive = "pozitif"
	legacyNegative = "negatif"
)

// ParseLabel maps a dataset label string onto a Label. It accepts the
// legacy Turkish vocabulary as well as the internal names, case
// insensitively.
func ParseLabel(s string) (Label, error) {
	switch strings.ToLowerSpecial(unicode.TurkishCase, strings.TrimSpace(s)) {
	case legacyPositive, string(LabelPositive):
		return LabelPositive, nil
	case legacyNegative, string(LabelNegative):
		return LabelNegative, nil
	}
	return "", fmt.Errorf("unknown label %q", s)
}

// LoadDataset reads a CSV file whose first column is a sentence and whose
// second column is its label. A header row is detected by its label cell
// failing to parse and is skipped silently.
//
// Malformed records — too few columns, an empty sentence, an unknown
// label — are skipped with a logged count rather than aborting the load.
func LoadDataset(path string) ([]TestCase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}

	var cases []TestCase
	skipped := 0
	for i, rec := range records {
		if len(rec) < 2 {
			skipped++
			continue
		}
		text := strings.TrimSpace(rec[0])
		label, err := ParseLabel(rec[1])
		if err != nil {
			if i == 0 {
				continue // header row
			}
			skipped++
			continue
		}
		if text == "" {
			skipped++
			continue
		}
		cases = append(cases, TestCase{Text: text, Label: label})
	}

	if skipped > 0 {
		slog.Warn("skipped malformed dataset records", "path", path, "count", skipped)
	}
	return cases, nil
}
