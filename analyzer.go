package duygu

import "context"

// Morpheme tags this package interprets. Backends may emit many more; only
// these two drive the negation heuristic.
const (
	TagVerb = "Verb"
	TagNeg  = "Neg"
)

// An Analyzer is the capability contract for an external morphological
// analysis engine. Any conforming backend — an in-process table, a remote
// service — is substitutable without touching scoring logic.
type Analyzer interface {
	// Tokenize normalizes text and splits it into tokens, in order.
	Tokenize(text string) []string

	// AnalyzeAndDisambiguate returns the best morphological analysis for
	// each token of text, in token order.
	AnalyzeAndDisambiguate(ctx context.Context, text string) ([]TokenAnalysis, error)
}
