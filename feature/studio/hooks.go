package studio

import "context"

// Job is an opaque render queue entry owned by the studio server.
type Job map[string]any

// PropsSource supplies the values behind the studio's input-prop and
// environment getters. They are read once per start.
type PropsSource interface {
	InputProps() map[string]any
	EnvVariables() map[string]string
}

// Queue backs the studio's render queue. RenderQueue is read once per start;
// the job methods are called while the studio runs.
type Queue interface {
	RenderQueue() []Job
	AddJob(ctx context.Context, job Job) (string, error)
	CancelJob(ctx context.Context, jobID string) error
	RemoveJob(ctx context.Context, jobID string) error
}

// Hooks groups the capabilities the studio server calls back into.
type Hooks struct {
	Props PropsSource
	Queue Queue
}

// NoopJobID is the id NoopQueue hands out for every added job.
const NoopJobID = "test-job"

// NoopProps reports no input props and no environment variables.
type NoopProps struct{}

func (NoopProps) InputProps() map[string]any      { return map[string]any{} }
func (NoopProps) EnvVariables() map[string]string { return map[string]string{} }

// NoopQueue accepts and forgets every job.
type NoopQueue struct{}

func (NoopQueue) RenderQueue() []Job                                  { return []Job{} }
func (NoopQueue) AddJob(ctx context.Context, job Job) (string, error) { return NoopJobID, nil }
func (NoopQueue) CancelJob(ctx context.Context, jobID string) error   { return nil }
func (NoopQueue) RemoveJob(ctx context.Context, jobID string) error   { return nil }

// NoopHooks returns hooks backed by NoopProps and NoopQueue.
func NoopHooks() Hooks {
	return Hooks{Props: NoopProps{}, Queue: NoopQueue{}}
}

func (h Hooks) withDefaults() Hooks {
	if h.Props == nil {
		h.Props = NoopProps{}
	}
	if h.Queue == nil {
		h.Queue = NoopQueue{}
	}
	return h
}
