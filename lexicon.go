package duygu

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/bbalet/stopwords"
)

// DefaultWeight is the sentiment weight assigned to every word-list entry.
const DefaultWeight = 1.0

// A Lexicon maps lexical roots to sentiment weights. It is built once and
// read-only afterwards, so it is safe for concurrent lookups.
type Lexicon struct {
	weights map[string]float64
}

// NewLexicon builds a Lexicon from a root→weight map. The map is copied;
// later mutation of the argument does not reach the Lexicon.
func NewLexicon(weights map[string]float64) Lexicon {
	m := make(map[string]float64, len(weights))
	for root, w := range weights {
		m[root] = w
	}
	return Lexicon{weights: m}
}

// Weight returns the weight for root and whether it is present.
func (l Lexicon) Weight(root string) (float64, bool) {
	w, ok := l.weights[root]
	return w, ok
}

// Len returns the number of entries.
func (l Lexicon) Len() int {
	return len(l.weights)
}

type lexiconLoader struct {
	stopwordLang string
	log          *slog.Logger
}

// LexiconOpt configures word-list loading.
type LexiconOpt func(*lexiconLoader)

// FilterStopwords drops stop words for the given ISO 639-1 language code
// ("tr", "en", ...) from the word list before root extraction.
func FilterStopwords(lang string) LexiconOpt {
	return func(ll *lexiconLoader) {
		ll.stopwordLang = lang
	}
}

// UsingLexiconLogger routes load diagnostics to the given logger.
func UsingLexiconLogger(log *slog.Logger) LexiconOpt {
	return func(ll *lexiconLoader) {
		ll.log = log
	}
}

// LoadWordList reads a newline-delimited word list, reduces each word to its
// morphological roots via analyzer, and returns a Lexicon mapping every root
// to DefaultWeight. Duplicate roots collapse to a single entry.
//
// Failures degrade rather than abort: an unreadable file yields an empty
// Lexicon, and a word whose analysis fails is skipped. Both are logged.
func LoadWordList(ctx context.Context, path string, analyzer Analyzer, opts ...LexiconOpt) Lexicon {
	ll := &lexiconLoader{log: slog.Default()}
	for _, applyOpt := range opts {
		applyOpt(ll)
	}

	f, err := os.Open(path)
	if err != nil {
		ll.log.Warn("word list unreadable, using empty lexicon", "path", path, "error", err)
		return NewLexicon(nil)
	}
	defer f.Close()

	roots := make(map[string]float64)
	skipped := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if ll.stopwordLang != "" && isStopword(word, ll.stopwordLang) {
			continue
		}

		analyses, err := analyzer.AnalyzeAndDisambiguate(ctx, word)
		if err != nil {
			skipped++
			continue
		}
		for _, a := range analyses {
			if a.Root == "" {
				continue
			}
			roots[strings.ToLower(a.Root)] = DefaultWeight
		}
	}
	if err := scanner.Err(); err != nil {
		ll.log.Warn("word list read failed, using empty lexicon", "path", path, "error", err)
		return NewLexicon(nil)
	}
	if skipped > 0 {
		ll.log.Warn("skipped unanalyzable words", "path", path, "count", skipped)
	}

	return NewLexicon(roots)
}

// isStopword reports whether the stopword corpus for langCode filters the
// word out. The library only exposes whole-string cleaning, so a word is a
// stop word exactly when cleaning erases it.
func isStopword(word, langCode string) bool {
	return strings.TrimSpace(stopwords.CleanString(word, langCode, false)) == ""
}
