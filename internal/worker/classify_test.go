package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"titleguard/internal/heuristics"
	"titleguard/internal/models"
	"titleguard/internal/tasks"
)

type mockClassifier struct{ mock.Mock }

func (m *mockClassifier) ClassifyBatch(ctx context.Context, titles []string) ([]heuristics.Result, error) {
	args := m.Called(ctx, titles)
	res, _ := args.Get(0).([]heuristics.Result)
	return res, args.Error(1)
}

func TestProcessClassifyBatch(t *testing.T) {
	ctx := context.Background()
	titles := []string{"This is INSANE", "How to cook pasta"}
	task, err := tasks.NewClassifyBatchTask("batch-1", titles)
	require.NoError(t, err)

	c := &mockClassifier{}
	c.On("ClassifyBatch", ctx, titles).Return([]heuristics.Result{
		{Score: 35, Blocked: true, Reasons: []string{"a"}},
		{Reasons: []string{}},
	}, nil)

	var buf bytes.Buffer
	require.NoError(t, processClassifyBatch(ctx, c, task.Payload(), &buf))

	var summary BatchSummary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &summary))
	assert.Equal(t, "batch-1", summary.BatchID)
	assert.Equal(t, models.JobStatusCompleted, summary.Status)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Blocked)
	assert.Equal(t, 0, summary.Degraded)
	c.AssertExpectations(t)
}

func TestProcessClassifyBatch_BadPayload(t *testing.T) {
	err := processClassifyBatch(context.Background(), &mockClassifier{}, []byte("nope"), nil)
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestProcessClassifyBatch_ClassifierError(t *testing.T) {
	ctx := context.Background()
	task, err := tasks.NewClassifyBatchTask("batch-2", []string{"x"})
	require.NoError(t, err)

	c := &mockClassifier{}
	c.On("ClassifyBatch", ctx, []string{"x"}).Return(nil, errors.New("canceled"))

	err = processClassifyBatch(ctx, c, task.Payload(), nil)
	assert.ErrorContains(t, err, "canceled")
}

func TestSummarize_Degraded(t *testing.T) {
	s := Summarize("b", []heuristics.Result{{Diagnostic: "tagger unavailable"}})
	assert.Equal(t, 1, s.Degraded)
	assert.Equal(t, 0, s.Blocked)
}
