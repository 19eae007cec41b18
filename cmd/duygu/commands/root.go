// Package commands implements the duygu command line interface.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gokaykeskin/duygu"
	"github.com/gokaykeskin/duygu/internal/config"
)

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "duygu",
	Short: "Rule-based Turkish sentiment analysis",
	Long: `Duygu assigns polarity labels (Positive/Negative/Neutral) to Turkish
sentences by matching morphological roots against sentiment lexicons, with
negation handled through predicate analysis.

Two modes are available:
  - analyze: interactively score sentences read from standard input
  - eval:    score a labeled dataset and report accuracy metrics`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		setupLogger(cfg.Log)
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (YAML)")
}

// setupLogger installs the default slog logger per the log configuration.
// Format "json" produces structured output; anything else is human-readable
// text. Output always goes to stderr so results stay clean on stdout.
func setupLogger(lc config.LogConfig) {
	opts := &slog.HandlerOptions{Level: parseLevel(lc.Level)}

	var handler slog.Handler
	if strings.EqualFold(lc.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newAnalyzer builds the configured morphology backend. Without a server
// URL the in-process static analyzer is used; scoring then degrades to
// exact word matching, which is logged once.
func newAnalyzer() duygu.Analyzer {
	if cfg.Analyzer.URL != "" {
		return duygu.NewRemoteAnalyzer(cfg.Analyzer.URL,
			duygu.UsingRequestTimeout(cfg.Analyzer.Timeout))
	}
	slog.Info("no morphology server configured, using exact word matching")
	return duygu.NewStaticAnalyzer()
}

// newScorer wires the analyzer and both lexicons into a Scorer.
func newScorer(ctx context.Context) (*duygu.Scorer, error) {
	analyzer := newAnalyzer()

	var opts []duygu.LexiconOpt
	if cfg.Lexicon.FilterStopwords {
		opts = append(opts, duygu.FilterStopwords("tr"))
	}

	positive := duygu.LoadWordList(ctx, cfg.Lexicon.PositiveWords, analyzer, opts...)
	negative := duygu.LoadWordList(ctx, cfg.Lexicon.NegativeWords, analyzer, opts...)
	if positive.Len() == 0 && negative.Len() == 0 {
		return nil, fmt.Errorf("both lexicons are empty, check %s and %s",
			cfg.Lexicon.PositiveWords, cfg.Lexicon.NegativeWords)
	}
	slog.Debug("lexicons loaded", "positive", positive.Len(), "negative", negative.Len())

	return duygu.NewScorer(analyzer, positive, negative), nil
}

// OutputError writes an error message to stderr.
func OutputError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
