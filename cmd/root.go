package cmd

import (
	"fmt"

	"studio-launcher/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Flags shared by every command. Only flags the user actually sets override
// the loaded configuration.
var (
	portFlag     string
	rootFlag     string
	entryFlag    string
	logLevelFlag string
	configDir    string
)

// RootCmd represents the base command when called without any subcommands.
// Without a subcommand it behaves like "start".
var RootCmd = &cobra.Command{
	Use:   "studio-launcher",
	Short: "Start Remotion Studio for a project",
	Long: `Studio Launcher assembles the configuration Remotion Studio needs
(render defaults, browser flags, project paths) and starts the studio server.
It can also mirror shared public assets from S3/MinIO, expose the launch
state over HTTP and keep a journal of launches.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runStart,
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding with the debug preset gives ISO8601 timestamps on the terminal.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		return 1
	}
	return 0
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVarP(&portFlag, "port", "p", "", `studio port, or "auto" to let the studio server choose`)
	flags.StringVarP(&rootFlag, "root", "r", "", "project root (default: current directory)")
	flags.StringVarP(&entryFlag, "entry", "e", "", "entry point relative to the project root (default: ./src/index.ts)")
	flags.StringVar(&logLevelFlag, "log-level", "", "studio log level: info, verbose, warn, error")
	flags.StringVar(&configDir, "config-dir", ".", "directory holding .env and studio.yaml")
}
