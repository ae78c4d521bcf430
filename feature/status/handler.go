package status

import (
	"studio-launcher/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the launch state over HTTP.
type Handler struct {
	tracker *Tracker
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(tracker *Tracker, logger *zap.Logger) *Handler {
	return &Handler{tracker: tracker, logger: logger}
}

// RegisterRoutes registers the status routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/status")
	group.Get("/", h.HandleStatus)
	group.Get("/config", h.HandleConfig)
}

// HandleStatus returns the current launch snapshot.
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	snap := h.tracker.Snapshot()
	logger.WithRayID(h.logger, c).Debug("Status requested", zap.String("state", string(snap.State)))
	return c.JSON(snap)
}

// HandleConfig returns the configuration handed to the studio server.
func (h *Handler) HandleConfig(c *fiber.Ctx) error {
	cfg := h.tracker.Configuration()
	if cfg == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no studio launch yet"})
	}
	return c.JSON(cfg)
}

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates the status feature around tracker.
func NewFeature(tracker *Tracker, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(tracker, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "status"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
