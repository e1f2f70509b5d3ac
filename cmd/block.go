package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var blockCmd = &cobra.Command{
	Use:   "block <url-or-id> [title]",
	Short: "Block a video by id",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		v, err := appInstance.BlocklistService.Block(cmd.Context(), args[0], strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Blocked %s: %s\n", v.VideoID, v.Title)
		return nil
	},
}

var unblockCmd = &cobra.Command{
	Use:   "unblock <url-or-id>",
	Short: "Remove a video from the blocklist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		if err := appInstance.BlocklistService.Unblock(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Unblocked %s\n", args[0])
		return nil
	},
}

var blockedCmd = &cobra.Command{
	Use:   "blocked",
	Short: "Inspect the video blocklist",
}

var blockedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List blocked videos",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		videos, err := appInstance.BlocklistService.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(videos) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No blocked videos.")
			return nil
		}
		table := newTable(cmd.OutOrStdout(), []string{"Video ID", "Title", "Blocked At"})
		for _, v := range videos {
			table.Append([]string{v.VideoID, v.Title, v.CreatedAt.Format("2006-01-02 15:04:05")})
		}
		table.Render()
		return nil
	},
}

var importBlockedCmd = &cobra.Command{
	Use:   "import-blocked <file>",
	Short: `Import "id: title" lines into the blocklist`,
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
		added, err := appInstance.BlocklistService.Import(cmd.Context(), string(data))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d blocked videos\n", added)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(blockCmd, unblockCmd, blockedCmd, importBlockedCmd)
	blockedCmd.AddCommand(blockedListCmd)
}
