package duygu

// Metrics holds the derived performance ratios of an evaluation run. Every
// value is in [0,1]; a ratio whose denominator is zero is reported as 0,
// never NaN.
type Metrics struct {
	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64
}

// ComputeMetrics derives Metrics from the confusion counts. It is a pure
// function of the four counters.
func ComputeMetrics(ev *Evaluation) Metrics {
	tp := float64(ev.TP)
	tn := float64(ev.TN)
	fp := float64(ev.FP)
	fn := float64(ev.FN)

	precision := ratio(tp, tp+fp)
	recall := ratio(tp, tp+fn)

	return Metrics{
		Accuracy:  ratio(tp+tn, tp+tn+fp+fn),
		Precision: precision,
		Recall:    recall,
		F1:        ratio(2*precision*recall, precision+recall),
	}
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
