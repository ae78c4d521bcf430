package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"studio-launcher/core/storage"
	"studio-launcher/feature/assets"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Manage shared public assets",
}

var assetsSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Mirror public assets from object storage",
	Long: `Downloads the objects under storage.prefix into the project's public
directory. Files whose size already matches are left alone.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		defer logg.Sync()

		opts, err := cfg.Studio.Options()
		if err != nil {
			return err
		}
		root, err := projectRoot(opts)
		if err != nil {
			return err
		}

		report, err := syncAssets(cmd.Context(), cfg.Storage, root, logg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, key := range report.Downloaded {
			fmt.Fprintf(out, "  %s %s\n", color.GreenString("+"), key)
		}
		for key, reason := range report.Failed {
			fmt.Fprintf(out, "  %s %s: %s\n", color.RedString("x"), key, reason)
		}
		fmt.Fprintf(out, "%d downloaded, %d unchanged, %d failed\n",
			len(report.Downloaded), len(report.Skipped), len(report.Failed))
		if len(report.Failed) > 0 {
			return fmt.Errorf("failed to sync %d assets", len(report.Failed))
		}
		return nil
	},
}

// syncAssets mirrors the configured bucket prefix into <root>/<public_dir>.
func syncAssets(ctx context.Context, cfg storage.Config, root string, logg *zap.Logger) (*assets.Report, error) {
	client, err := storage.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	dest := cfg.PublicDir
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(root, dest)
	}
	return assets.NewSyncer(client, cfg.Bucket, cfg.Prefix, logg).Sync(ctx, dest)
}

func init() {
	assetsCmd.AddCommand(assetsSyncCmd)
	RootCmd.AddCommand(assetsCmd)
}
