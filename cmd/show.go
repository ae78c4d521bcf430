package cmd

import (
	"encoding/json"
	"fmt"

	"studio-launcher/feature/studio"

	"github.com/spf13/cobra"
)

// configCmd prints the configuration "start" would hand to the studio server.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the merged studio configuration",
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
		svc := studio.NewService(nil, cfg.Studio.Base(), studio.NoopHooks(), logg)
		merged, err := svc.Prepare(opts)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(merged, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode configuration: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
