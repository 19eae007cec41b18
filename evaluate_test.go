package duygu

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluatePerfectRun(t *testing.T) {
	scorer := newTestScorer()
	cases := []TestCase{
		{Text: "iyi bir film", Label: LabelPositive},
		{Text: "kötü bir film", Label: LabelNegative},
	}

	eval, err := NewEvaluator(scorer).Evaluate(context.Background(), cases)
	require.NoError(t, err)

	assert.Equal(t, 1, eval.TP)
	assert.Equal(t, 1, eval.TN)
	assert.Equal(t, 0, eval.FP)
	assert.Equal(t, 0, eval.FN)
	assert.Len(t, eval.Predictions, 2)
	assert.Empty(t, eval.WrongPredictions)

	m := ComputeMetrics(eval)
	assert.Equal(t, 1.0, m.Accuracy)
	assert.Equal(t, 1.0, m.Precision)
	assert.Equal(t, 1.0, m.Recall)
	assert.Equal(t, 1.0, m.F1)
}

func TestEvaluateBuckets(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		label Label
		want  func(*Evaluation) int
	}{
		{"positive vs positive is TP", "iyi bir film", LabelPositive, func(e *Evaluation) int { return e.TP }},
		{"negative vs negative is TN", "kötü bir film", LabelNegative, func(e *Evaluation) int { return e.TN }},
		{"positive vs negative is FP", "iyi bir film", LabelNegative, func(e *Evaluation) int { return e.FP }},
		{"negative vs positive is FN", "kötü bir film", LabelPositive, func(e *Evaluation) int { return e.FN }},
		{"neutral vs positive is FN", "sıradan bir film", LabelPositive, func(e *Evaluation) int { return e.FN }},
		{"neutral vs negative is FP", "sıradan bir film", LabelNegative, func(e *Evaluation) int { return e.FP }},
	}

	scorer := newTestScorer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval, err := NewEvaluator(scorer).Evaluate(context.Background(), []TestCase{{Text: tt.text, Label: tt.label}})
			require.NoError(t, err)
			assert.Equal(t, 1, tt.want(eval))
			assert.Equal(t, 1, eval.Total())
		})
	}
}

func TestEvaluateErrorOutcomeCountsAsIncorrect(t *testing.T) {
	scorer := NewScorer(failingAnalyzer{}, NewLexicon(nil), NewLexicon(nil))
	cases := []TestCase{
		{Text: "iyi bir film", Label: LabelPositive},
		{Text: "kötü bir film", Label: LabelNegative},
	}

	eval, err := NewEvaluator(scorer).Evaluate(context.Background(), cases)
	require.NoError(t, err)

	assert.Equal(t, 1, eval.FN, "error against a positive label buckets as FN")
	assert.Equal(t, 1, eval.FP, "error against a negative label buckets as FP")
	require.Len(t, eval.WrongPredictions, 2)
	for _, wp := range eval.WrongPredictions {
		assert.Equal(t, SentimentError, wp.Predicted)
	}
}

func TestEvaluateWrongPredictionMembership(t *testing.T) {
	scorer := newTestScorer()
	cases := []TestCase{
		{Text: "iyi bir film", Label: LabelPositive},   // TP
		{Text: "iyi bir film", Label: LabelNegative},   // FP
		{Text: "sıradan film", Label: LabelPositive},   // Neutral → FN
		{Text: "kötü bir film", Label: LabelNegative},  // TN
		{Text: "kötü bir film", Label: LabelPositive},  // FN
	}

	eval, err := NewEvaluator(scorer).Evaluate(context.Background(), cases)
	require.NoError(t, err)

	assert.Len(t, eval.Predictions, len(cases), "every case is recorded")
	require.Len(t, eval.WrongPredictions, 3)

	// No correct case may appear among the wrong predictions.
	for _, wp := range eval.WrongPredictions {
		correct := (wp.Predicted == Positive && wp.TrueLabel == LabelPositive) ||
			(wp.Predicted == Negative && wp.TrueLabel == LabelNegative)
		assert.False(t, correct, "correct case leaked into wrong predictions: %+v", wp)
	}

	// Input order is preserved in both lists.
	assert.Equal(t, "iyi bir film", eval.Predictions[0].Text)
	assert.Equal(t, LabelNegative, eval.WrongPredictions[0].TrueLabel)
	assert.Equal(t, Neutral, eval.WrongPredictions[1].Predicted)
}

func TestEvaluateOneBadSentenceDoesNotCorruptRun(t *testing.T) {
	sa := newTurkishAnalyzer()
	scorer := NewScorer(sa,
		NewLexicon(map[string]float64{"iyi": 1}),
		NewLexicon(map[string]float64{"kötü": 1}),
	)

	cases := []TestCase{
		{Text: "iyi bir film", Label: LabelPositive},
		{Text: "", Label: LabelNegative}, // scores Neutral, still bucketed
		{Text: "kötü bir film", Label: LabelNegative},
	}

	eval, err := NewEvaluator(scorer).Evaluate(context.Background(), cases)
	require.NoError(t, err)
	assert.Equal(t, 1, eval.TP)
	assert.Equal(t, 1, eval.TN)
	assert.Equal(t, 1, eval.FP)
	assert.Equal(t, 3, eval.Total())
}

func TestEvaluateCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEvaluator(newTestScorer()).Evaluate(ctx, []TestCase{{Text: "iyi", Label: LabelPositive}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConfidenceSummary(t *testing.T) {
	eval := &Evaluation{Predictions: []Prediction{
		{Confidence: 0.2},
		{Confidence: 0.4},
	}}

	mean, stddev := eval.ConfidenceSummary()
	assert.InDelta(t, 0.3, mean, 1e-9)
	assert.Greater(t, stddev, 0.0)

	empty := &Evaluation{}
	mean, stddev = empty.ConfidenceSummary()
	assert.Zero(t, mean)
	assert.Zero(t, stddev)

	single := &Evaluation{Predictions: []Prediction{{Confidence: 0.5}}}
	mean, stddev = single.ConfidenceSummary()
	assert.Equal(t, 0.5, mean)
	assert.Zero(t, stddev)
}
