package cmd

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"titleguard/internal/fileingest"
	"titleguard/internal/models"
	"titleguard/internal/store"
)

var enqueueCmd = &cobra.Command{
	Use:   "enqueue <file-or-dir>",
	Short: "Queue titles for background classification",
	Long: fmt.Sprintf(`Reads titles (one per line) from a file, or from every .txt file under a
directory, and enqueues one classify task per batch of up to %d titles for
"titleguard worker" to process.`, store.MaxBatchSize),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		files, err := fileingest.DiscoverTitleFiles(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, f := range files {
			log.WithFields(log.Fields{"path": f.Path, "titles": len(f.Titles)}).Debug("titles file discovered")
		}
		titles := fileingest.AllTitles(files)
		if len(titles) == 0 {
			return errors.New("no titles found")
		}

		ids, err := appInstance.JobClient.EnqueueClassifyBatch(cmd.Context(), titles)
		out := cmd.OutOrStdout()
		for _, id := range ids {
			fmt.Fprintf(out, "%s %s\n", id, models.JobStatusEnqueued)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Enqueued %d titles in %d batches\n", len(titles), len(ids))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(enqueueCmd)
}
