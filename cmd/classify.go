package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"titleguard/internal/clix"
	"titleguard/internal/heuristics"
)

var classifyJSON bool

var classifyCmd = &cobra.Command{
	Use:   "classify [title...]",
	Short: "Score titles for clickbait and vague phrasing",
	Long: `Scores each title with the heuristic classifier. Titles come from the
arguments (one per argument), from --file (one per line), or from stdin
when the only argument is "-".`,
	Example: `  titleguard classify "You won't believe this" "How to cook pasta"
  titleguard classify --file titles.txt --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		titles, err := clix.ReadTitles(cmd.Flags(), args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		if len(titles) == 0 {
			return errors.New("no titles given")
		}
		threshold, err := clix.ParseThreshold(cmd.Flags())
		if err != nil {
			return err
		}

		var results []heuristics.Result
		if threshold > 0 && threshold != appInstance.Classifier.Threshold() {
			// Cached results carry the configured threshold's verdict.
			c := heuristics.New(appInstance.Tagger, heuristics.Config{Threshold: threshold})
			for _, t := range titles {
				results = append(results, c.Classify(t))
			}
		} else {
			results, err = appInstance.ClassificationService.ClassifyBatch(cmd.Context(), titles)
			if err != nil {
				return fmt.Errorf("classify: %w", err)
			}
		}

		if classifyJSON {
			return renderResultsJSON(cmd.OutOrStdout(), titles, results)
		}
		renderResults(cmd.OutOrStdout(), titles, results)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().String("file", "", "Read titles from a file, one per line")
	classifyCmd.Flags().Int("threshold", heuristics.DefaultThreshold, "Override the block threshold")
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Print results as JSON")
}
