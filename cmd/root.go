package cmd

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"sftpsync/config"
)

var (
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "sftpsync",
	Short: "SFTP one-way file synchronization tool",
	Long: `sftpsync fetches files from a remote SFTP directory into a local one.

Files are skipped when the local copy already carries the remote file's
modification time, so repeated runs transfer nothing for unchanged files.
Transferred files can optionally be archived (renamed into an Archive/
subdirectory) or deleted on the remote side.
Connection settings are loaded from a .env file or environment variables
(SFTP_SERVER, SFTP_PORT, SFTP_USERNAME, SFTP_PASSWORD) and can be
overridden with flags. The password is never accepted as a flag.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger(isVerbose(cmd))
	},
}

func Execute(config *config.Config) error {
	cfg = config
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a caller-owned context so a
// SIGINT/SIGTERM cancels in-flight transfers.
func ExecuteContext(ctx context.Context, config *config.Config) error {
	cfg = config
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(findCmd)

	rootCmd.PersistentFlags().String("server", "", "Override SFTP server from config")
	rootCmd.PersistentFlags().Int("port", 0, "Override SFTP port from config (default 22)")
	rootCmd.PersistentFlags().StringP("username", "u", "", "Override SFTP username from config")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().Bool("check", false, "Report what would change without touching any file")
}

// connectionConfig merges persistent flag overrides over the loaded config.
func connectionConfig(cmd *cobra.Command) *config.Config {
	merged := *cfg
	if server, _ := cmd.Flags().GetString("server"); server != "" {
		merged.Server = server
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		merged.Port = port
	}
	if username, _ := cmd.Flags().GetString("username"); username != "" {
		merged.Username = username
	}
	return &merged
}

func isVerbose(cmd *cobra.Command) bool {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return verbose
}

func isCheckMode(cmd *cobra.Command) bool {
	check, _ := cmd.Flags().GetBool("check")
	return check
}

func setupLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})
	slog.SetDefault(slog.New(handler))
}
