package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"titleguard/internal/filter"
	"titleguard/internal/heuristics"
	"titleguard/internal/util"
)

var rulesTestHeuristics bool

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage title rules",
	Long:  `A title rule is a phrase; any title containing it (ignoring case) is hidden.`,
}

var rulesAddCmd = &cobra.Command{
	Use:   "add <phrase>",
	Short: "Add a title rule",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		rule, err := appInstance.RuleService.AddRule(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added rule %d: %q\n", rule.ID, rule.Phrase)
		return nil
	},
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List title rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		rules, err := appInstance.RuleService.ListRules(cmd.Context())
		if err != nil {
			return err
		}
		if len(rules) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No rules found.")
			return nil
		}
		table := newTable(cmd.OutOrStdout(), []string{"ID", "Phrase", "Created At"})
		for _, r := range rules {
			table.Append([]string{strconv.FormatInt(r.ID, 10), r.Phrase, r.CreatedAt.Format("2006-01-02 15:04:05")})
		}
		table.Render()
		return nil
	},
}

var rulesRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a title rule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid rule id %q", args[0])
		}
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		if err := appInstance.RuleService.RemoveRule(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed rule %d\n", id)
		return nil
	},
}

var rulesImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add every rule in a file, one per line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		added, err := appInstance.RuleService.ImportRules(cmd.Context(), string(data))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d rules\n", added)
		return nil
	},
}

var rulesTestCmd = &cobra.Command{
	Use:   "test [titles-file]",
	Short: "Try the stored rules against sample titles",
	Long: `Runs the stored title rules over the titles in titles-file (one per line),
or over a built-in set of sample titles when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		rules, err := appInstance.RuleService.Phrases(cmd.Context())
		if err != nil {
			return err
		}
		if len(rules) == 0 {
			return errors.New("no rules to test")
		}
		var titles []string
		if len(args) == 1 {
			if titles, err = util.ReadLines(args[0]); err != nil {
				return err
			}
		}

		outcomes, blocked := filter.TestRules(rules, titles)
		var scores []heuristics.Result
		if rulesTestHeuristics {
			tested := make([]string, len(outcomes))
			for i, o := range outcomes {
				tested[i] = o.Title
			}
			if scores, err = appInstance.ClassificationService.ClassifyBatch(cmd.Context(), tested); err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		renderRuleTest(out, outcomes, scores)
		fmt.Fprintf(out, "\nTested %d titles: %d blocked, %d allowed\n", len(outcomes), blocked, len(outcomes)-blocked)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesAddCmd, rulesListCmd, rulesRemoveCmd, rulesImportCmd, rulesTestCmd)
	rulesTestCmd.Flags().BoolVar(&rulesTestHeuristics, "heuristics", false, "Also show the heuristic classifier's verdict")
}
