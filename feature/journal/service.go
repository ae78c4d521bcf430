package journal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"studio-launcher/feature/studio"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service writes studio launches to the journal database.
// It implements studio.Observer; write failures are logged, never returned
// to the start path.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
	now    func() time.Time

	mu      sync.Mutex
	current string
}

// NewService creates a journal service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger, now: time.Now}
}

// Migrate creates or updates the journal table.
func (s *Service) Migrate() error {
	if err := s.db.AutoMigrate(&StudioLaunch{}); err != nil {
		return fmt.Errorf("failed to migrate launch journal: %w", err)
	}
	return nil
}

// Starting inserts a new launch row.
func (s *Service) Starting(cfg *studio.StartupConfiguration) {
	launch := StudioLaunch{
		ID:           uuid.NewString(),
		RemotionRoot: cfg.RemotionRoot,
		EntryPoint:   cfg.FullEntryPath,
		DesiredPort:  cfg.Port(),
		LogLevel:     string(cfg.LogLevel),
		Status:       StatusStarting,
		StartedAt:    s.now(),
	}
	if err := s.db.Create(&launch).Error; err != nil {
		s.logger.Warn("Failed to record studio launch", zap.Error(err))
		return
	}

	s.mu.Lock()
	s.current = launch.ID
	s.mu.Unlock()
}

// Started marks the current launch as running.
func (s *Service) Started(cfg *studio.StartupConfiguration, inst studio.Instance) {
	s.update(map[string]any{"status": StatusRunning, "port": inst.Port()})
}

// Failed marks the current launch as failed. A launch rejected before its
// configuration existed gets a row of its own.
func (s *Service) Failed(cfg *studio.StartupConfiguration, err error) {
	now := s.now()
	if cfg == nil {
		launch := StudioLaunch{
			ID:         uuid.NewString(),
			Status:     StatusFailed,
			Error:      err.Error(),
			StartedAt:  now,
			FinishedAt: &now,
		}
		if dbErr := s.db.Create(&launch).Error; dbErr != nil {
			s.logger.Warn("Failed to record rejected studio launch", zap.Error(dbErr))
		}
		return
	}
	s.update(map[string]any{"status": StatusFailed, "error": err.Error(), "finished_at": now})
}

// Stopped marks the current launch as stopped.
func (s *Service) Stopped(err error) {
	fields := map[string]any{"status": StatusStopped, "finished_at": s.now()}
	if err != nil {
		fields["error"] = err.Error()
	}
	s.update(fields)
}

// Recent returns the latest launches, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]StudioLaunch, error) {
	if limit <= 0 {
		limit = 20
	}
	var launches []StudioLaunch
	if err := s.db.WithContext(ctx).Order("started_at desc").Limit(limit).Find(&launches).Error; err != nil {
		return nil, fmt.Errorf("failed to list studio launches: %w", err)
	}
	return launches, nil
}

func (s *Service) update(fields map[string]any) {
	s.mu.Lock()
	id := s.current
	s.mu.Unlock()
	if id == "" {
		return
	}
	if err := s.db.Model(&StudioLaunch{ID: id}).Updates(fields).Error; err != nil {
		s.logger.Warn("Failed to update studio launch", zap.String("launch_id", id), zap.Error(err))
	}
}
