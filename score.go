package duygu

import (
	"context"
	"strings"
)

// A Scorer assigns polarity labels to sentences by combining lexicon
// lookups with the predicate negation heuristic. Lexicons are injected at
// construction and never mutated, so a Scorer is safe for concurrent use as
// long as its Analyzer is.
type Scorer struct {
	analyzer      Analyzer
	positive      Lexicon
	negative      Lexicon
	findPredicate PredicateFunc
}

// ScorerOpt configures a Scorer.
type ScorerOpt func(*Scorer)

// UsingPredicateStrategy replaces the default predicate locator.
func UsingPredicateStrategy(fn PredicateFunc) ScorerOpt {
	return func(s *Scorer) {
		s.findPredicate = fn
	}
}

// NewScorer creates a Scorer over the given analyzer and lexicons.
func NewScorer(analyzer Analyzer, positive, negative Lexicon, opts ...ScorerOpt) *Scorer {
	s := &Scorer{
		analyzer:      analyzer,
		positive:      positive,
		negative:      negative,
		findPredicate: FindPredicate,
	}
	for _, applyOpt := range opts {
		applyOpt(s)
	}
	return s
}

// Score analyzes one sentence and returns its polarity.
//
// Score is fail-soft: any failure, from the analyzer or from malformed
// analyses, yields a well-formed Result with SentimentError and zeroed
// fields rather than an error. Given identical inputs and analyzer output
// it returns identical results.
func (s *Scorer) Score(ctx context.Context, sentence string) Result {
	res, _, _, err := s.scoreSentence(ctx, sentence)
	if err != nil {
		return Result{Sentiment: SentimentError}
	}
	return res
}

// scoreSentence carries the match and token counts alongside the Result so
// multi-sentence aggregation can recompute coverage.
func (s *Scorer) scoreSentence(ctx context.Context, sentence string) (Result, int, int, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, 0, 0, err
	}

	tokens := s.analyzer.Tokenize(sentence)

	analyses, err := s.analyzer.AnalyzeAndDisambiguate(ctx, strings.Join(tokens, " "))
	if err != nil {
		return Result{}, 0, 0, err
	}

	// One negation flip at most: the multiplier is fixed by the governing
	// predicate before any lexicon matching, and applies to every match in
	// the sentence.
	multiplier := 1.0
	var features Features
	var predicate *PredicateInfo
	if info, ok := s.findPredicate(analyses); ok {
		if info.Negative {
			multiplier = -1
		}
		predicate = &info
		features.Predicate = append(features.Predicate, info)
	}

	score := 0.0
	matches := 0

	// The predicate's own analysis is matched like any other token.
	for _, a := range analyses {
		root := a.Root
		if root == "" {
			root = a.Normalized
		}
		root = strings.ToLower(root)
		if root == "" {
			continue
		}

		if w, ok := s.positive.Weight(root); ok {
			score += w * multiplier
			matches++
			features.PositiveWords = append(features.PositiveWords, root)
		} else if w, ok := s.negative.Weight(root); ok {
			score += w * multiplier * -1
			matches++
			features.NegativeWords = append(features.NegativeWords, root)
		}
	}

	confidence := 0.0
	if len(tokens) > 0 {
		confidence = float64(matches) / float64(len(tokens))
	}

	return Result{
		Sentiment:  classifyScore(score),
		Score:      score,
		Confidence: confidence,
		Features:   features,
		Predicate:  predicate,
	}, matches, len(tokens), nil
}

// classifyScore maps a score's sign onto a polarity class. A zero score is
// Neutral even when matches canceled algebraically, so confidence can be
// positive on a Neutral result.
func classifyScore(score float64) Sentiment {
	switch {
	case score > 0:
		return Positive
	case score < 0:
		return Negative
	default:
		return Neutral
	}
}
