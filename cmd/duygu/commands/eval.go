package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gokaykeskin/duygu"
	"github.com/gokaykeskin/duygu/internal/chart"
	"github.com/gokaykeskin/duygu/internal/store"
)

var (
	evalDataset string
	evalDBPath  string
	showWrong   bool
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate the classifier against a labeled dataset",
	Long: `Eval scores every sentence of a labeled CSV dataset, accumulates the
confusion matrix and prints accuracy, precision, recall and F1 along with
the misclassified sentences.`,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringVar(&evalDataset, "dataset", "", "Dataset path (default from config)")
	evalCmd.Flags().StringVar(&evalDBPath, "db", "", "Persist the run to this SQLite database")
	evalCmd.Flags().BoolVar(&showWrong, "wrong", true, "List misclassified sentences")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	dataset := evalDataset
	if dataset == "" {
		dataset = cfg.Dataset.Path
	}

	cases, err := duygu.LoadDataset(dataset)
	if err != nil {
		return err
	}
	if len(cases) == 0 {
		return fmt.Errorf("dataset %s contains no usable records", dataset)
	}
	slog.Info("dataset loaded", "path", dataset, "cases", len(cases))

	scorer, err := newScorer(ctx)
	if err != nil {
		return err
	}

	eval, err := duygu.NewEvaluator(scorer).Evaluate(ctx, cases)
	if err != nil {
		return err
	}
	metrics := duygu.ComputeMetrics(eval)

	fmt.Printf("Evaluated %d sentences: TP=%d TN=%d FP=%d FN=%d\n\n",
		eval.Total(), eval.TP, eval.TN, eval.FP, eval.FN)

	fmt.Println("Performance Metrics:")
	fmt.Print(chart.Render([]chart.Metric{
		{Name: "Accuracy", Value: metrics.Accuracy},
		{Name: "Precision", Value: metrics.Precision},
		{Name: "Recall", Value: metrics.Recall},
		{Name: "F1 Score", Value: metrics.F1},
	}))

	mean, stddev := eval.ConfidenceSummary()
	fmt.Printf("\nLexicon coverage: mean %.2f, stddev %.2f\n", mean, stddev)

	if showWrong && len(eval.WrongPredictions) > 0 {
		fmt.Printf("\nIncorrect Predictions (%d):\n", len(eval.WrongPredictions))
		for _, wp := range eval.WrongPredictions {
			fmt.Printf("  - Sentence: %s\n", wp.Text)
			fmt.Printf("    True Label: %s\n", wp.TrueLabel)
			fmt.Printf("    Predicted: %s (confidence %.2f)\n", wp.Predicted, wp.Confidence)
		}
	}

	dbPath := evalDBPath
	if dbPath == "" {
		dbPath = cfg.Store.Path
	}
	if dbPath != "" {
		if err := saveRun(cmd, dbPath, dataset, eval, metrics); err != nil {
			return err
		}
	}
	return nil
}

func saveRun(cmd *cobra.Command, dbPath, dataset string, eval *duygu.Evaluation, metrics duygu.Metrics) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := st.SaveRun(cmd.Context(), store.Run{
		Dataset: dataset,
		Cases:   len(eval.Predictions),
		TP:      eval.TP,
		TN:      eval.TN,
		FP:      eval.FP,
		FN:      eval.FN,
		Metrics: metrics,
		Wrong:   eval.WrongPredictions,
	})
	if err != nil {
		return err
	}
	slog.Info("evaluation run saved", "db", dbPath, "run_id", id)
	return nil
}
