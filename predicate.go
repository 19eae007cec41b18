package duygu

// A PredicateFunc locates the governing predicate in a sentence's analyses.
// It is the replaceable half of the negation heuristic: swapping in a real
// negation-scope resolver leaves the scoring arithmetic untouched.
type PredicateFunc func(analyses []TokenAnalysis) (PredicateInfo, bool)

// FindPredicate scans the analyses in reverse order and returns the first
// verb-tagged analysis as the governing predicate, relying on Turkish
// clauses being predicate-final. Analyses before the match are not
// inspected. The second return is false when no verb-tagged analysis exists.
//
// The predicate is negative iff its own tag sequence carries the negation
// marker. This single morphological signal approximates negation scope; it
// is deliberately not a syntactic analysis.
func FindPredicate(analyses []TokenAnalysis) (PredicateInfo, bool) {
	for i := len(analyses) - 1; i >= 0; i-- {
		a := analyses[i]
		if !a.HasTag(TagVerb) {
			continue
		}
		return PredicateInfo{
			Root:     a.Root,
			Negative: a.HasTag(TagNeg),
			Analysis: a.Raw,
		}, true
	}
	return PredicateInfo{}, false
}
