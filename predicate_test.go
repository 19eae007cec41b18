package duygu

import "testing"

func TestFindPredicate(t *testing.T) {
	verb := func(root string, negative bool) TokenAnalysis {
		tags := []string{"Verb", "Past", "A3sg"}
		if negative {
			tags = []string{"Verb", "Neg", "Past", "A3sg"}
		}
		return TokenAnalysis{Root: root, Normalized: root, Tags: tags, Raw: "[" + root + ":Verb]"}
	}
	noun := func(root string) TokenAnalysis {
		return TokenAnalysis{Root: root, Normalized: root, Tags: []string{"Noun", "A3sg"}, Raw: "[" + root + ":Noun]"}
	}

	tests := []struct {
		name     string
		analyses []TokenAnalysis
		found    bool
		root     string
		negative bool
	}{
		{
			name:     "clause-final verb",
			analyses: []TokenAnalysis{noun("film"), verb("izle", false)},
			found:    true,
			root:     "izle",
		},
		{
			name:     "negated clause-final verb",
			analyses: []TokenAnalysis{noun("film"), verb("izle", true)},
			found:    true,
			root:     "izle",
			negative: true,
		},
		{
			name:     "last verb wins over earlier ones",
			analyses: []TokenAnalysis{verb("git", true), noun("film"), verb("izle", false)},
			found:    true,
			root:     "izle",
		},
		{
			name:     "no verb",
			analyses: []TokenAnalysis{noun("iyi"), noun("film")},
		},
		{
			name: "empty input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := FindPredicate(tt.analyses)
			if ok != tt.found {
				t.Fatalf("found: expected %v, got %v", tt.found, ok)
			}
			if !ok {
				return
			}
			if info.Root != tt.root {
				t.Errorf("root: expected %q, got %q", tt.root, info.Root)
			}
			if info.Negative != tt.negative {
				t.Errorf("negative: expected %v, got %v", tt.negative, info.Negative)
			}
		})
	}
}

func TestFindPredicateStopsAtFirstVerb(t *testing.T) {
	// An earlier negated verb must not influence the outcome once a later
	// verb has been selected.
	analyses := []TokenAnalysis{
		{Root: "sev", Tags: []string{"Verb", "Neg", "Aor"}},
		{Root: "ama", Tags: []string{"Conj"}},
		{Root: "izle", Tags: []string{"Verb", "Past"}},
	}

	info, ok := FindPredicate(analyses)
	if !ok {
		t.Fatal("expected a predicate")
	}
	if info.Root != "izle" || info.Negative {
		t.Errorf("expected the final plain verb, got %+v", info)
	}
}
