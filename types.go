// Package duygu provides rule-based sentiment analysis for Turkish text.
//
// Polarity is decided by matching morphological roots against positive and
// negative word lexicons, with negation handled through a heuristic on the
// sentence's governing predicate. Morphological analysis itself is delegated
// to an external backend behind the Analyzer interface.
package duygu

// Sentiment is the polarity class assigned to a sentence.
type Sentiment string

const (
	Positive Sentiment = "Positive"
	Negative Sentiment = "Negative"
	Neutral  Sentiment = "Neutral"

	// SentimentError marks a result produced after an analysis failure.
	// Scoring never panics or returns a Go error; failures surface here.
	SentimentError Sentiment = "Error"
)

// A TokenAnalysis holds the morphological analysis of a single token, in
// original token order within its sentence.
type TokenAnalysis struct {
	Root       string   // canonical lexical root; may be empty
	Normalized string   // normalized surface form
	Tags       []string // ordered morpheme tags, e.g. ["Noun", "A3sg"]
	Raw        string   // full analysis string as produced by the backend
}

// HasTag reports whether the analysis carries the given morpheme tag.
func (a TokenAnalysis) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// PredicateInfo describes the governing predicate found in a sentence.
type PredicateInfo struct {
	Root     string
	Negative bool
	Analysis string
}

// Features records the lexicon matches and predicate that contributed to a
// result, in match order.
type Features struct {
	PositiveWords []string
	NegativeWords []string
	Predicate     []PredicateInfo
}

// A Result is the outcome of scoring one sentence.
//
// Sentiment follows the sign of Score, except for SentimentError which
// zeroes every other field. Confidence is the fraction of tokens that hit a
// lexicon entry; it is a raw coverage ratio, not a calibrated probability.
type Result struct {
	Sentiment  Sentiment
	Score      float64
	Confidence float64
	Features   Features
	Predicate  *PredicateInfo
}

// Label is a ground-truth class from a labeled dataset. Datasets carry only
// the two non-neutral classes.
type Label string

const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
)

// A TestCase pairs a sentence with its ground-truth label.
type TestCase struct {
	Text  string
	Label Label
}
