package studio

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Starter launches the studio server with a complete configuration.
type Starter interface {
	Start(ctx context.Context, cfg *StartupConfiguration, queue Queue) (Instance, error)
}

// Instance is a running studio server.
type Instance interface {
	// Port is the bound port, or AutoPort when the server did not report one.
	Port() int
	// Wait blocks until the studio server exits.
	Wait() error
	// Stop asks the studio server to exit and waits for it.
	Stop(ctx context.Context) error
}

// Progress is shown while the studio server is coming up.
type Progress interface {
	Start()
	Stop()
}

// Observer is told about each phase of a start.
type Observer interface {
	Starting(cfg *StartupConfiguration)
	Started(cfg *StartupConfiguration, inst Instance)
	// Failed receives a nil cfg when the options were rejected before merging.
	Failed(cfg *StartupConfiguration, err error)
}

// Service assembles startup configurations and hands them to a Starter.
type Service struct {
	starter   Starter
	base      StartupConfiguration
	hooks     Hooks
	logger    *zap.Logger
	console   *Console
	progress  Progress
	observers []Observer
}

// NewService creates a studio service. base is the default configuration
// every start is merged onto, usually DefaultConfiguration() or Config.Base().
func NewService(starter Starter, base StartupConfiguration, hooks Hooks, logger *zap.Logger) *Service {
	return &Service{
		starter: starter,
		base:    base,
		hooks:   hooks.withDefaults(),
		logger:  logger,
		console: StdConsole(),
	}
}

// SetConsole replaces the banner output.
func (s *Service) SetConsole(c *Console) {
	s.console = c
}

// SetProgress installs an indicator shown while waiting on the Starter.
func (s *Service) SetProgress(p Progress) {
	s.progress = p
}

// AddObserver registers an observer for subsequent starts.
func (s *Service) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// Prepare builds the configuration for opts without starting anything.
func (s *Service) Prepare(opts Options) (*StartupConfiguration, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	opts = opts.WithDefaults(cwd)
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	cfg, err := Merge(s.base, opts)
	if err != nil {
		return nil, err
	}
	if err := cfg.CheckPaths(); err != nil {
		return nil, err
	}

	cfg.Snapshot(s.hooks.Props, s.hooks.Queue)
	return cfg, nil
}

// StartStudio starts the studio server for opts. Failures are reported on the
// console and the log, then returned unchanged.
func (s *Service) StartStudio(ctx context.Context, opts Options) (Instance, error) {
	cfg, err := s.Prepare(opts)
	if err != nil {
		s.fail(nil, err)
		return nil, err
	}

	s.console.Parameters(cfg)
	s.logger.Info("Starting studio",
		zap.String("remotion_root", cfg.RemotionRoot),
		zap.String("entry_point", cfg.FullEntryPath),
		zap.String("preview_entry", cfg.PreviewEntry),
		zap.Int("desired_port", cfg.Port()),
		zap.String("log_level", string(cfg.LogLevel)),
	)
	for _, o := range s.observers {
		o.Starting(cfg)
	}

	if s.progress != nil {
		s.progress.Start()
	}
	inst, err := s.starter.Start(ctx, cfg, s.hooks.Queue)
	if s.progress != nil {
		s.progress.Stop()
	}
	if err != nil {
		s.fail(cfg, err)
		return nil, err
	}

	s.console.Started(inst.Port())
	s.logger.Info("Studio started", zap.Int("port", inst.Port()))
	for _, o := range s.observers {
		o.Started(cfg, inst)
	}
	return inst, nil
}

func (s *Service) fail(cfg *StartupConfiguration, err error) {
	s.console.Failed(err)
	s.logger.Error("Failed to start studio", zap.Error(err))
	for _, o := range s.observers {
		o.Failed(cfg, err)
	}
}
