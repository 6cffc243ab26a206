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

var getCmd = &cobra.Command{
	Use:   "get <remote-dir>",
	Short: "Get all matching files from a remote directory",
	Long: `Get every file in a remote directory whose base name matches a
shell-style glob pattern (*, ?, character classes).

Files whose local copy already carries the remote modification time are
skipped. A transfer failure for one file is reported and does not stop the
remaining files. After a successful transfer the remote file can be moved
into an Archive/ subdirectory with --archive, or removed with --delete;
post-action failures are reported as warnings, never as run failures.`,
	Example: `  # Get all CSV exports
  sftpsync get /outbound --pattern "*.csv" --local-path /data/in

  # Get and delete the remote originals
  sftpsync get /outbound --pattern "*.csv" --local-path /data/in --delete

  # Get and archive the remote originals, four transfers at a time
  sftpsync get /outbound --local-path /data/in --archive --workers 4

  # Show the decision set without transferring anything
  sftpsync get /outbound --pattern "ADD_????????_export.csv" --local-path /data/in --check`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGet(cmd, args)
	},
}

func runGet(cmd *cobra.Command, args []string) error {
	remotePath := args[0]
	pattern, _ := cmd.Flags().GetString("pattern")
	localPath, _ := cmd.Flags().GetString("local-path")
	archive, _ := cmd.Flags().GetBool("archive")
	del, _ := cmd.Flags().GetBool("delete")
	workers, _ := cmd.Flags().GetInt("workers")

	conn := connectionConfig(cmd)
	if err := conn.Validate(); err != nil {
		utils.PrintError(err, "get")
		return err
	}

	client, err := sftpclient.New(conn)
	if err != nil {
		utils.PrintError(err, "get")
		return err
	}
	defer client.Close()

	timeout, _ := cmd.Flags().GetInt("timeout")
	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(timeout)*time.Second)
	defer cancel()

	action := syncer.ActionNone
	switch {
	case archive:
		action = syncer.ActionArchive
	case del:
		action = syncer.ActionDelete
	}

	if isVerbose(cmd) {
		cmd.Printf("Getting files matching %q from %s to %s\n", pattern, remotePath, localPath)
	}

	res, err := syncer.New(client, syncer.Options{
		Mode:       syncer.ModeGet,
		RemotePath: remotePath,
		Pattern:    pattern,
		LocalDir:   localPath,
		Action:     action,
		DryRun:     isCheckMode(cmd),
		Workers:    workers,
	}).Run(ctx)
	if res != nil {
		// Partial progress is reported even when the run aborts mid-batch.
		if printErr := utils.PrintJSON(models.NewSyncResult(res, isCheckMode(cmd))); printErr != nil && err == nil {
			err = printErr
		}
	}
	if err != nil {
		utils.PrintError(err, "get")
		return err
	}

	if isVerbose(cmd) {
		cmd.Printf("Get operation completed: %d processed, %d skipped\n", len(res.Processed), len(res.Skipped))
	}
	return nil
}

func init() {
	getCmd.Flags().StringP("pattern", "p", "*", "Glob pattern matched against remote base names")
	getCmd.Flags().StringP("local-path", "l", "", "Local destination directory (must exist)")
	getCmd.Flags().Bool("archive", false, "Move remote files into an Archive/ subdirectory after transfer")
	getCmd.Flags().Bool("delete", false, "Delete remote files after transfer")
	getCmd.Flags().Int("workers", 1, "Number of concurrent transfers")
	getCmd.Flags().Int("timeout", 3600, "Timeout in seconds for the operation (default: 1 hour)")
	getCmd.MarkFlagRequired("local-path")
	getCmd.MarkFlagsMutuallyExclusive("archive", "delete")
}
