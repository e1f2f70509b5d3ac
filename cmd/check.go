package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"titleguard/internal/models"
)

var checkURL string

var checkCmd = &cobra.Command{
	Use:   "check <title>",
	Short: "Decide whether a video would be hidden",
	Long: `Runs the full filter: user title rules first, then the video blocklist
(when --url carries a video id), then the heuristic classifier.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		video := models.Video{Title: strings.Join(args, " "), URL: checkURL}
		d, err := appInstance.Filter.Decide(cmd.Context(), video)
		if err != nil {
			return fmt.Errorf("check: %w", err)
		}

		out := cmd.OutOrStdout()
		if d.Blocked {
			fmt.Fprintf(out, "%s by %s\n", verdict(true), d.Source)
		} else {
			fmt.Fprintln(out, verdict(false))
		}
		b, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(b))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&checkURL, "url", "", "Watch or shorts link (or bare video id)")
}
