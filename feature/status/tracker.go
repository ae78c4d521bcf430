package status

import (
	"sync"
	"time"

	"studio-launcher/feature/studio"

	"github.com/google/uuid"
)

// State of the supervised studio.
type State string

const (
	StateIdle     State = "idle"
	StateStarting State = "starting"
	StateRunning  State = "running"
	StateFailed   State = "failed"
	StateStopped  State = "stopped"
)

// Snapshot is a point-in-time copy of the tracker.
type Snapshot struct {
	LaunchID     string     `json:"launch_id,omitempty"`
	State        State      `json:"state"`
	RemotionRoot string     `json:"remotion_root,omitempty"`
	EntryPoint   string     `json:"entry_point,omitempty"`
	DesiredPort  int        `json:"desired_port"`
	Port         int        `json:"port"`
	LogLevel     string     `json:"log_level,omitempty"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	RunningAt    *time.Time `json:"running_at,omitempty"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	Error        string     `json:"error,omitempty"`
}

// Tracker follows one studio launch. It implements studio.Observer.
type Tracker struct {
	mu     sync.RWMutex
	now    func() time.Time
	snap   Snapshot
	config *studio.StartupConfiguration
}

// NewTracker creates an idle tracker.
func NewTracker() *Tracker {
	return &Tracker{now: time.Now, snap: Snapshot{State: StateIdle}}
}

// Starting records a new launch.
func (t *Tracker) Starting(cfg *studio.StartupConfiguration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	t.config = cfg
	t.snap = Snapshot{
		LaunchID:     uuid.NewString(),
		State:        StateStarting,
		RemotionRoot: cfg.RemotionRoot,
		EntryPoint:   cfg.FullEntryPath,
		DesiredPort:  cfg.Port(),
		LogLevel:     string(cfg.LogLevel),
		StartedAt:    &now,
	}
}

// Started marks the launch as running.
func (t *Tracker) Started(cfg *studio.StartupConfiguration, inst studio.Instance) {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	t.snap.State = StateRunning
	t.snap.Port = inst.Port()
	t.snap.RunningAt = &now
}

// Failed marks the launch as failed.
func (t *Tracker) Failed(cfg *studio.StartupConfiguration, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	if t.snap.LaunchID == "" {
		t.snap.LaunchID = uuid.NewString()
	}
	t.snap.State = StateFailed
	t.snap.Error = err.Error()
	t.snap.FinishedAt = &now
}

// Stopped records that the studio exited. A nil err is a clean stop.
func (t *Tracker) Stopped(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	t.snap.State = StateStopped
	t.snap.FinishedAt = &now
	if err != nil {
		t.snap.Error = err.Error()
	}
}

// Snapshot returns the current state.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.snap
}

// Configuration returns the configuration of the current launch, if any.
func (t *Tracker) Configuration() *studio.StartupConfiguration {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.config
}
