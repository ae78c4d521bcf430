package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studio-launcher/feature/status"
	"studio-launcher/feature/studio"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const stopTimeout = 10 * time.Second

var noSpinner bool

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start Remotion Studio",
	Long: `Builds the studio configuration for the project, syncs public assets
when storage is enabled and starts the studio server. The command keeps
running until the studio exits or an interrupt arrives.`,
	RunE: runStart,
}

// stoppedObserver is told when a running studio exits.
type stoppedObserver interface {
	Stopped(err error)
}

func runStart(cmd *cobra.Command, args []string) error {
	// 1. Load Configuration and Logger
	cfg, logg, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	defer logg.Sync()

	opts, err := cfg.Studio.Options()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Public assets (Optional)
	if cfg.Storage.Enabled {
		root, err := projectRoot(opts)
		if err != nil {
			return err
		}
		if _, err := syncAssets(ctx, cfg.Storage, root, logg); err != nil {
			logg.Warn("Public asset sync failed, starting with local assets", zap.Error(err))
		}
	}

	// 3. Observers
	tracker := status.NewTracker()
	svc := studio.NewService(newStarter(cfg, logg), cfg.Studio.Base(), studio.NoopHooks(), logg)
	svc.SetConsole(studio.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr()))
	svc.AddObserver(tracker)
	stopped := []stoppedObserver{tracker}

	if j := openJournal(cfg.Database, logg); j != nil {
		svc.AddObserver(j)
		stopped = append(stopped, j)
	}

	if !noSpinner && !color.NoColor {
		svc.SetProgress(spinner.New(spinner.CharSets[14], 100*time.Millisecond,
			spinner.WithWriter(cmd.ErrOrStderr()),
			spinner.WithSuffix(" Waiting for the studio server..."),
		))
	}

	// 4. Status server (Optional)
	if cfg.Server.Enabled {
		app, err := startStatusServer(cfg.Server, tracker, logg)
		if err != nil {
			return err
		}
		defer func() { _ = app.Shutdown() }()
	}

	// 5. Start Studio
	inst, err := svc.StartStudio(ctx, opts)
	if err != nil {
		return err
	}

	// 6. Wait for exit or Graceful Shutdown
	exited := make(chan error, 1)
	go func() { exited <- inst.Wait() }()

	select {
	case err := <-exited:
		err = exitError(ctx, err)
		notifyStopped(stopped, err)
		if err != nil {
			return fmt.Errorf("studio server exited: %w", err)
		}
		logg.Info("Studio server exited")
		return nil
	case <-ctx.Done():
		logg.Info("Shutting down studio...")
		stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
		defer cancel()
		err := inst.Stop(stopCtx)
		notifyStopped(stopped, err)
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			logg.Warn("Studio server did not exit cleanly", zap.Error(err))
		}
		return nil
	}
}

// exitError is the error a studio exit should be reported with. A terminal
// interrupt reaches the studio too, so an exit after ctx is done is a clean stop.
func exitError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func notifyStopped(observers []stoppedObserver, err error) {
	for _, o := range observers {
		o.Stopped(err)
	}
}

func init() {
	startCmd.Flags().BoolVar(&noSpinner, "no-spinner", false, "do not show the wait indicator")
	RootCmd.AddCommand(startCmd)
}
