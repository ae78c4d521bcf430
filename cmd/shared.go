package cmd

import (
	"fmt"
	"os"

	"studio-launcher/core/config"
	"studio-launcher/core/database"
	"studio-launcher/core/logger"
	"studio-launcher/feature/journal"
	"studio-launcher/feature/studio"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newStarter builds the Starter that hosts the studio server.
// Tests swap it for a fake.
var newStarter = func(cfg *config.Config, logg *zap.Logger) studio.Starter {
	return studio.NewNodeStarter(cfg.Studio.NodeBinary, logg)
}

// loadRuntime loads configuration, applies the command-line overrides and
// builds the logger.
func loadRuntime(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlags(cmd, cfg)

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Studio.Port = portFlag
	}
	if flags.Changed("root") {
		cfg.Studio.Root = rootFlag
	}
	if flags.Changed("entry") {
		cfg.Studio.EntryPoint = entryFlag
	}
	if flags.Changed("log-level") {
		cfg.Studio.LogLevel = logLevelFlag
	}
}

// projectRoot is the configured root, or the working directory.
func projectRoot(opts studio.Options) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return opts.WithDefaults(cwd).RemotionRoot, nil
}

// openJournal connects the launch journal. It returns nil when the journal is
// disabled or unreachable; the launcher works without it.
func openJournal(cfg database.Config, logg *zap.Logger) *journal.Service {
	if !cfg.Enabled {
		return nil
	}
	db, err := database.Connect(cfg)
	if err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
		return nil
	}
	svc := journal.NewService(db, logg)
	if err := svc.Migrate(); err != nil {
		logg.Warn("Launch journal unavailable", zap.Error(err))
		return nil
	}
	logg.Debug("Launch journal connected", zap.String("driver", cfg.Driver))
	return svc
}
