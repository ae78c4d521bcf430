package cmd

import (
	"fmt"

	"studio-launcher/core/loader"
	"studio-launcher/core/logger"
	"studio-launcher/core/middleware/auth"
	"studio-launcher/core/middleware/rayid"
	"studio-launcher/core/server"
	"studio-launcher/feature/status"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// newStatusApp builds the fiber app that exposes the launch state.
func newStatusApp(cfg server.Config, tracker *status.Tracker, logg *zap.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// RayID first so every log line below carries it.
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Debug("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Use(auth.New(auth.Config{ApiKey: cfg.ApiKey}))

	mgr := loader.NewManager()
	mgr.Register(status.NewFeature(tracker, logg))

	loaded, err := mgr.LoadAll(app)
	if err != nil {
		return nil, fmt.Errorf("failed to load features: %w", err)
	}
	logg.Debug("Status features loaded", zap.Strings("features", loaded))
	return app, nil
}

// startStatusServer serves the status app in the background.
func startStatusServer(cfg server.Config, tracker *status.Tracker, logg *zap.Logger) (*fiber.App, error) {
	app, err := newStatusApp(cfg, tracker, logg)
	if err != nil {
		return nil, err
	}
	if !cfg.RequiresAuth() {
		logg.Warn("Status server has no API key configured")
	}

	go func() {
		logg.Info("Starting status server", zap.String("address", cfg.Address()))
		if err := app.Listen(cfg.Address()); err != nil {
			logg.Error("Status server stopped", zap.Error(err))
		}
	}()
	return app, nil
}
