package studio

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockQueue struct {
	mock.Mock
}

func (m *mockQueue) RenderQueue() []Job {
	args := m.Called()
	jobs, _ := args.Get(0).([]Job)
	return jobs
}

func (m *mockQueue) AddJob(ctx context.Context, job Job) (string, error) {
	args := m.Called(ctx, job)
	return args.String(0), args.Error(1)
}

func (m *mockQueue) CancelJob(ctx context.Context, jobID string) error {
	return m.Called(ctx, jobID).Error(0)
}

func (m *mockQueue) RemoveJob(ctx context.Context, jobID string) error {
	return m.Called(ctx, jobID).Error(0)
}

func TestDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("AddJob", func(t *testing.T) {
		q := new(mockQueue)
		q.On("AddJob", ctx, Job{"compositionId": "Intro"}).Return("job-7", nil)

		reply := dispatch(ctx, q, message{Type: msgCall, ID: 3, Method: methodAddJob, Params: json.RawMessage(`{"compositionId":"Intro"}`)})
		assert.Equal(t, msgReply, reply.Type)
		assert.Equal(t, int64(3), reply.ID)
		assert.Empty(t, reply.Error)
		assert.Equal(t, addJobResult{ID: "job-7"}, reply.Result)
		q.AssertExpectations(t)
	})

	t.Run("CancelJob", func(t *testing.T) {
		q := new(mockQueue)
		q.On("CancelJob", ctx, "job-7").Return(nil)

		reply := dispatch(ctx, q, message{ID: 4, Method: methodCancelJob, Params: json.RawMessage(`{"jobId":"job-7"}`)})
		assert.Empty(t, reply.Error)
		assert.Nil(t, reply.Result)
		q.AssertExpectations(t)
	})

	t.Run("RemoveJobError", func(t *testing.T) {
		q := new(mockQueue)
		q.On("RemoveJob", ctx, "job-8").Return(errors.New("no such job"))

		reply := dispatch(ctx, q, message{ID: 5, Method: methodRemoveJob, Params: json.RawMessage(`{"jobId":"job-8"}`)})
		assert.Equal(t, "no such job", reply.Error)
		q.AssertExpectations(t)
	})

	t.Run("UnknownMethod", func(t *testing.T) {
		q := new(mockQueue)
		reply := dispatch(ctx, q, message{ID: 6, Method: "renderNow"})
		assert.Contains(t, reply.Error, "unknown bridge method")
		q.AssertNotCalled(t, "AddJob", mock.Anything, mock.Anything)
	})

	t.Run("MalformedParams", func(t *testing.T) {
		q := new(mockQueue)
		reply := dispatch(ctx, q, message{ID: 7, Method: methodCancelJob, Params: json.RawMessage(`[1,2`)})
		assert.Contains(t, reply.Error, "failed to decode bridge params")
	})

	t.Run("NoopQueue", func(t *testing.T) {
		reply := dispatch(ctx, NoopQueue{}, message{ID: 8, Method: methodAddJob})
		assert.Equal(t, addJobResult{ID: "test-job"}, reply.Result)
	})
}

func TestMessage_Encoding(t *testing.T) {
	cfg := DefaultConfiguration()
	data, err := json.Marshal(message{Type: msgStart, Config: &cfg})
	assert.NoError(t, err)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "start", decoded["type"])
	assert.NotContains(t, decoded, "id")
	config := decoded["config"].(map[string]any)
	assert.Contains(t, config, "desiredPort")
	assert.Nil(t, config["desiredPort"])
	assert.Equal(t, "chrome", config["browserFlag"])
}
