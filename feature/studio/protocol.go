package studio

import (
	"context"
	"encoding/json"
	"fmt"
)

// Bridge message types. Start and reply travel to the bridge on its stdin;
// call, started and failed come back on the channel descriptor.
const (
	msgStart   = "start"
	msgReply   = "reply"
	msgCall    = "call"
	msgStarted = "started"
	msgFailed  = "failed"
)

// Queue methods the bridge proxies.
const (
	methodAddJob    = "addJob"
	methodCancelJob = "cancelJob"
	methodRemoveJob = "removeJob"
)

// message is one newline-delimited JSON frame of the bridge protocol.
type message struct {
	Type   string                `json:"type"`
	ID     int64                 `json:"id,omitempty"`
	Method string                `json:"method,omitempty"`
	Params json.RawMessage       `json:"params,omitempty"`
	Config *StartupConfiguration `json:"config,omitempty"`
	Result any                   `json:"result,omitempty"`
	Error  string                `json:"error,omitempty"`
	Stack  string                `json:"stack,omitempty"`
	Port   int                   `json:"port,omitempty"`
}

type jobRef struct {
	JobID string `json:"jobId"`
}

type addJobResult struct {
	ID string `json:"id"`
}

// dispatch runs a proxied queue call and returns the reply frame.
func dispatch(ctx context.Context, queue Queue, call message) message {
	reply := message{Type: msgReply, ID: call.ID}
	result, err := invoke(ctx, queue, call.Method, call.Params)
	if err != nil {
		reply.Error = err.Error()
		return reply
	}
	reply.Result = result
	return reply
}

func invoke(ctx context.Context, queue Queue, method string, params json.RawMessage) (any, error) {
	switch method {
	case methodAddJob:
		var job Job
		if err := unmarshalParams(params, &job); err != nil {
			return nil, err
		}
		id, err := queue.AddJob(ctx, job)
		if err != nil {
			return nil, err
		}
		return addJobResult{ID: id}, nil
	case methodCancelJob, methodRemoveJob:
		var ref jobRef
		if err := unmarshalParams(params, &ref); err != nil {
			return nil, err
		}
		if method == methodCancelJob {
			return nil, queue.CancelJob(ctx, ref.JobID)
		}
		return nil, queue.RemoveJob(ctx, ref.JobID)
	default:
		return nil, fmt.Errorf("unknown bridge method %q", method)
	}
}

func unmarshalParams(params json.RawMessage, v any) error {
	if len(params) == 0 {
		return nil
	}
	if err := json.Unmarshal(params, v); err != nil {
		return fmt.Errorf("failed to decode bridge params: %w", err)
	}
	return nil
}
