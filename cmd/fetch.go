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

var fetchCmd = &cobra.Command{
	Use:   "fetch <remote-file>",
	Short: "Fetch a single file from the SFTP server",
	Long: `Fetch one exact remote file path into the local directory.

The file is skipped when a local copy with the same modification time is
already present. After a successful transfer the remote file can be moved
into an Archive/ subdirectory next to it with --archive; a failed archive
rename (for example when no Archive directory exists) is reported as a
warning and never fails the run.`,
	Example: `  # Fetch one file into /tmp
  sftpsync fetch /outbound/report.txt --local-path /tmp

  # Fetch and archive the remote original
  sftpsync fetch /outbound/report.txt --local-path /tmp --archive

  # See what would happen without transferring
  sftpsync fetch /outbound/report.txt --local-path /tmp --check`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFetch(cmd, args)
	},
}

func runFetch(cmd *cobra.Command, args []string) error {
	src := args[0]
	localPath, _ := cmd.Flags().GetString("local-path")
	archive, _ := cmd.Flags().GetBool("archive")

	conn := connectionConfig(cmd)
	if err := conn.Validate(); err != nil {
		utils.PrintError(err, "fetch")
		return err
	}

	client, err := sftpclient.New(conn)
	if err != nil {
		utils.PrintError(err, "fetch")
		return err
	}
	defer client.Close()

	timeout, _ := cmd.Flags().GetInt("timeout")
	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(timeout)*time.Second)
	defer cancel()

	action := syncer.ActionNone
	if archive {
		action = syncer.ActionArchive
	}

	if isVerbose(cmd) {
		cmd.Printf("Fetching %s to %s\n", src, localPath)
	}

	res, err := syncer.New(client, syncer.Options{
		Mode:       syncer.ModeFetch,
		RemotePath: src,
		LocalDir:   localPath,
		Action:     action,
		DryRun:     isCheckMode(cmd),
	}).Run(ctx)
	if err != nil {
		utils.PrintError(err, "fetch")
		return err
	}

	if err := utils.PrintJSON(models.NewFetchResult(res, isCheckMode(cmd))); err != nil {
		utils.PrintError(err, "fetch")
		return err
	}

	if isVerbose(cmd) {
		cmd.Println("Fetch operation completed successfully")
	}
	return nil
}

func init() {
	fetchCmd.Flags().StringP("local-path", "l", "", "Local destination directory (must exist)")
	fetchCmd.Flags().Bool("archive", false, "Move the remote file into an Archive/ subdirectory after transfer")
	fetchCmd.Flags().Int("timeout", 3600, "Timeout in seconds for the operation (default: 1 hour)")
	fetchCmd.MarkFlagRequired("local-path")
}
