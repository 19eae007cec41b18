package duygu

import "context"

// A StaticAnalyzer is an in-process Analyzer backed by a fixed table of
// analyses. Surface forms without a table entry fall back to a bare analysis
// whose root is the token itself and whose tag list is empty.
//
// It serves two roles: a deterministic backend for tests, and a degraded
// mode for running without a morphology server, where scoring reduces to
// exact word matching against the lexicons.
type StaticAnalyzer struct {
	entries map[string]TokenAnalysis
}

// NewStaticAnalyzer creates an empty StaticAnalyzer.
func NewStaticAnalyzer() *StaticAnalyzer {
	return &StaticAnalyzer{entries: make(map[string]TokenAnalysis)}
}

// Add registers the analysis to return for a normalized surface form.
// Registering the same form twice replaces the earlier entry.
func (sa *StaticAnalyzer) Add(form string, analysis TokenAnalysis) {
	sa.entries[form] = analysis
}

// Tokenize implements Analyzer.
func (sa *StaticAnalyzer) Tokenize(text string) []string {
	return splitTokens(normalizeText(text))
}

// AnalyzeAndDisambiguate implements Analyzer. It never fails; unknown
// tokens produce fallback analyses.
func (sa *StaticAnalyzer) AnalyzeAndDisambiguate(ctx context.Context, text string) ([]TokenAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tokens := sa.Tokenize(text)
	analyses := make([]TokenAnalysis, 0, len(tokens))
	for _, tok := range tokens {
		if a, ok := sa.entries[tok]; ok {
			analyses = append(analyses, a)
			continue
		}
		analyses = append(analyses, TokenAnalysis{
			Root:       tok,
			Normalized: tok,
			Raw:        "[" + tok + ":Unk]",
		})
	}
	return analyses, nil
}
