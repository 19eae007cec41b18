package duygu

import (
	"context"
	"strings"
	"sync"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

var (
	segmenterOnce sync.Once
	segmenter     *sentences.DefaultSentenceTokenizer
)

// SplitSentences segments text into sentences. Segmentation is driven by
// sentence-final punctuation, which transfers to Turkish without retraining.
// When the punkt model cannot be built, the whole text is returned as a
// single sentence.
func SplitSentences(text string) []string {
	segmenterOnce.Do(func() {
		tok, err := english.NewSentenceTokenizer(nil)
		if err == nil {
			segmenter = tok
		}
	})

	if segmenter == nil {
		return []string{text}
	}

	raw := segmenter.Tokenize(text)
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		trimmed := strings.TrimSpace(s.Text)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{text}
	}
	return out
}

// ScoreText scores a text that may span several sentences. Each sentence is
// scored independently; their scores sum and their features concatenate, and
// confidence becomes total matches over total tokens. The predicate of the
// last sentence that had one is reported.
//
// Sentences that fail to analyze contribute nothing; ScoreText only returns
// an Error result when every sentence fails.
func (s *Scorer) ScoreText(ctx context.Context, text string) Result {
	parts := SplitSentences(text)
	if len(parts) == 1 {
		return s.Score(ctx, parts[0])
	}

	var (
		total       Result
		matches     int
		tokens      int
		scoredCount int
	)
	for _, part := range parts {
		res, m, n, err := s.scoreSentence(ctx, part)
		if err != nil {
			continue
		}
		scoredCount++
		total.Score += res.Score
		matches += m
		tokens += n
		total.Features.PositiveWords = append(total.Features.PositiveWords, res.Features.PositiveWords...)
		total.Features.NegativeWords = append(total.Features.NegativeWords, res.Features.NegativeWords...)
		total.Features.Predicate = append(total.Features.Predicate, res.Features.Predicate...)
		if res.Predicate != nil {
			total.Predicate = res.Predicate
		}
	}

	if scoredCount == 0 {
		return Result{Sentiment: SentimentError}
	}

	if tokens > 0 {
		total.Confidence = float64(matches) / float64(tokens)
	}
	total.Sentiment = classifyScore(total.Score)
	return total
}
