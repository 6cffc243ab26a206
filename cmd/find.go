package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"sftpsync/internal/models"
	"sftpsync/internal/sftpclient"
	"sftpsync/internal/syncer"
	"sftpsync/pkg/utils"
)

var findCmd = &cobra.Command{
	Use:   "find <remote-dir>",
	Short: "List matching files on the SFTP server",
	Long: `List every file in a remote directory whose base name matches a
shell-style glob pattern, without transferring anything.

The result contains both the matching base names and their normalized
absolute remote paths. Neither the remote nor the local filesystem is
touched.`,
	Example: `  # Find all CSV exports
  sftpsync find /outbound --pattern "*.csv"

  # Find everything in a directory
  sftpsync find /outbound`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFind(cmd, args)
	},
}

func runFind(cmd *cobra.Command, args []string) error {
	remotePath := args[0]
	pattern, _ := cmd.Flags().GetString("pattern")

	conn := connectionConfig(cmd)
	if err := conn.Validate(); err != nil {
		utils.PrintError(err, "find")
		return err
	}

	client, err := sftpclient.New(conn)
	if err != nil {
		utils.PrintError(err, "find")
		return err
	}
	defer client.Close()

	timeout, _ := cmd.Flags().GetInt("timeout")
	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(timeout)*time.Second)
	defer cancel()

	res, err := syncer.New(client, syncer.Options{
		Mode:       syncer.ModeFind,
		RemotePath: remotePath,
		Pattern:    pattern,
	}).Run(ctx)
	if err != nil {
		utils.PrintError(err, "find")
		return err
	}

	if err := utils.PrintJSON(models.NewFindResult(res)); err != nil {
		utils.PrintError(err, "find")
		return err
	}

	if isVerbose(cmd) {
		cmd.Printf("Found %d matching files\n", len(res.Matched))
	}
	return nil
}

func init() {
	findCmd.Flags().StringP("pattern", "p", "*", "Glob pattern matched against remote base names")
	findCmd.Flags().Int("timeout", 300, "Timeout in seconds for the operation")
}
