package cmd

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"studio-launcher/core/database"
	"studio-launcher/feature/journal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent studio launches",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		defer logg.Sync()

		if !cfg.Database.Enabled {
			return errors.New("launch journal is disabled (set database.enabled)")
		}
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}
		svc := journal.NewService(db, logg)
		if err := svc.Migrate(); err != nil {
			return err
		}

		launches, err := svc.Recent(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}
		printLaunches(cmd.OutOrStdout(), launches)
		return nil
	},
}

func printLaunches(w io.Writer, launches []journal.StudioLaunch) {
	if len(launches) == 0 {
		fmt.Fprintln(w, "No launches recorded.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STARTED\tSTATUS\tPORT\tROOT\tERROR")
	for _, l := range launches {
		port := "auto"
		if l.Port != 0 {
			port = fmt.Sprint(l.Port)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			l.StartedAt.Local().Format(time.DateTime), statusColor(l.Status), port, l.RemotionRoot, l.Error)
	}
	_ = tw.Flush()
}

func statusColor(s string) string {
	switch s {
	case journal.StatusRunning:
		return color.GreenString(s)
	case journal.StatusFailed:
		return color.RedString(s)
	case journal.StatusStarting:
		return color.YellowString(s)
	default:
		return s
	}
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of launches to show")
	RootCmd.AddCommand(historyCmd)
}
