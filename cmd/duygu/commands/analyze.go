package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gokaykeskin/duygu"
)

const quitToken = "q"

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Interactively score sentences from standard input",
	Long: `Analyze reads sentences from standard input, one per line, and prints
the sentiment, confidence, predicate diagnostics and matched lexicon
features for each. Enter 'q' to quit.`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	scorer, err := newScorer(ctx)
	if err != nil {
		return err
	}

	fmt.Println("Enter sentences to analyze. Type 'q' to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Sentence: ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, quitToken) {
			break
		}
		if line == "" {
			continue
		}

		printResult(line, scorer.ScoreText(ctx, line))
	}
	return scanner.Err()
}

// printResult prints one scored sentence. An Error sentiment is printed
// like any other outcome; failures are visible, never silent.
func printResult(sentence string, res duygu.Result) {
	fmt.Printf("\nSentence: %s\n", sentence)
	fmt.Printf("Sentiment: %s\n", res.Sentiment)
	fmt.Printf("Confidence Score: %.2f\n", res.Confidence)
	if res.Predicate != nil {
		negation := "plain"
		if res.Predicate.Negative {
			negation = "negated"
		}
		fmt.Printf("Predicate: %s (%s) %s\n", res.Predicate.Root, negation, res.Predicate.Analysis)
	}
	if len(res.Features.PositiveWords) > 0 {
		fmt.Printf("Positive words: %s\n", strings.Join(res.Features.PositiveWords, ", "))
	}
	if len(res.Features.NegativeWords) > 0 {
		fmt.Printf("Negative words: %s\n", strings.Join(res.Features.NegativeWords, ", "))
	}
	fmt.Println()
}
