package duygu

import (
	"context"
	"math"

	"gonum.org/v1/gonum/stat"
)

// A Prediction records one scored test case.
type Prediction struct {
	Text       string
	TrueLabel  Label
	Predicted  Sentiment
	Confidence float64
	Features   Features
}

// An Evaluation accumulates a confusion matrix and the per-case prediction
// lists for one evaluation run. It is mutated only by Evaluator.Evaluate;
// afterwards it is read-only.
type Evaluation struct {
	TP int // predicted Positive, labeled positive
	TN int // predicted Negative, labeled negative
	FP int // predicted Positive (or degraded) against a negative label
	FN int // predicted Negative (or degraded) against a positive label

	// Predictions holds every case in input order, correct or not.
	// WrongPredictions holds the FP and FN cases, including every Neutral
	// and Error outcome, in the same order.
	Predictions      []Prediction
	WrongPredictions []Prediction
}

// Total returns the number of bucketed cases.
func (e *Evaluation) Total() int {
	return e.TP + e.TN + e.FP + e.FN
}

// ConfidenceSummary returns the mean and standard deviation of prediction
// confidences across the run. Both are 0 for an empty run, and the
// deviation is 0 for a single-case run.
func (e *Evaluation) ConfidenceSummary() (mean, stddev float64) {
	if len(e.Predictions) == 0 {
		return 0, 0
	}
	confs := make([]float64, len(e.Predictions))
	for i, p := range e.Predictions {
		confs[i] = p.Confidence
	}
	mean = stat.Mean(confs, nil)
	stddev = stat.StdDev(confs, nil)
	if math.IsNaN(stddev) {
		stddev = 0
	}
	return mean, stddev
}

// An Evaluator runs a Scorer over a labeled dataset.
type Evaluator struct {
	scorer *Scorer
}

// NewEvaluator creates an Evaluator over the given scorer.
func NewEvaluator(scorer *Scorer) *Evaluator {
	return &Evaluator{scorer: scorer}
}

// Evaluate scores every test case in order and buckets each outcome against
// its two-class ground truth:
//
//	Positive vs positive → TP        Negative vs negative → TN
//	Positive vs negative → FP        Negative vs positive → FN
//	Neutral or Error     → FN against positive, FP against negative
//
// Neutral and Error outcomes always count as incorrect; a Neutral produced
// by matches canceling out is not distinguished from one with no matches at
// all, though the recorded confidence separates them after the fact.
//
// Scoring failures are contained per case by the scorer's fail-soft
// contract, so one bad sentence never corrupts the accumulated state. The
// only error Evaluate itself returns is context cancellation, with the
// partial accumulator discarded.
func (ev *Evaluator) Evaluate(ctx context.Context, cases []TestCase) (*Evaluation, error) {
	eval := &Evaluation{}

	for _, tc := range cases {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		res := ev.scorer.Score(ctx, tc.Text)

		pred := Prediction{
			Text:       tc.Text,
			TrueLabel:  tc.Label,
			Predicted:  res.Sentiment,
			Confidence: res.Confidence,
		}

		correct := false
		switch {
		case res.Sentiment == Positive && tc.Label == LabelPositive:
			eval.TP++
			correct = true
		case res.Sentiment == Negative && tc.Label == LabelNegative:
			eval.TN++
			correct = true
		case res.Sentiment == Positive && tc.Label == LabelNegative:
			eval.FP++
		case res.Sentiment == Negative && tc.Label == LabelPositive:
			eval.FN++
		default:
			// Neutral and Error degrade to the wrong bucket for the label.
			if tc.Label == LabelPositive {
				eval.FN++
			} else {
				eval.FP++
			}
		}

		if !correct {
			eval.WrongPredictions = append(eval.WrongPredictions, pred)
		}

		pred.Features = res.Features
		eval.Predictions = append(eval.Predictions, pred)
	}

	return eval, nil
}
