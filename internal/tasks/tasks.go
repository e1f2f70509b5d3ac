package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// Task types used in Asynq.
const (
	// TypeClassifyBatch scores a batch of titles and stores a summary as the
	// task result.
	TypeClassifyBatch = "classify:batch"
)

const (
	QueueDefault = "default"
	// ResultRetention keeps completed batch summaries inspectable.
	ResultRetention = 24 * time.Hour
)

// ClassifyBatchPayload is the body of a TypeClassifyBatch task.
type ClassifyBatchPayload struct {
	BatchID string   `json:"batch_id"`
	Titles  []string `json:"titles"`
}

func NewClassifyBatchTask(batchID string, titles []string) (*asynq.Task, error) {
	b, err := json.Marshal(ClassifyBatchPayload{BatchID: batchID, Titles: titles})
	if err != nil {
		return nil, fmt.Errorf("marshal classify batch payload: %w", err)
	}
	return asynq.NewTask(TypeClassifyBatch, b), nil
}

func ParseClassifyBatchPayload(b []byte) (ClassifyBatchPayload, error) {
	var p ClassifyBatchPayload
	if err := json.Unmarshal(b, &p); err != nil {
		return p, fmt.Errorf("unmarshal classify batch payload: %w", err)
	}
	if p.BatchID == "" {
		return p, fmt.Errorf("classify batch payload missing batch_id")
	}
	return p, nil
}
