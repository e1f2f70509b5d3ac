// Package worker holds the asynq task handlers.
package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"

	"titleguard/internal/heuristics"
	"titleguard/internal/models"
	"titleguard/internal/tasks"
)

// BatchClassifier is satisfied by services.ClassificationService.
type BatchClassifier interface {
	ClassifyBatch(ctx context.Context, titles []string) ([]heuristics.Result, error)
}

// BatchSummary is written as the task result.
type BatchSummary struct {
	BatchID  string              `json:"batch_id"`
	Status   string              `json:"status"`
	Total    int                 `json:"total"`
	Blocked  int                 `json:"blocked"`
	Degraded int                 `json:"degraded"`
	Results  []heuristics.Result `json:"results"`
}

func Summarize(batchID string, results []heuristics.Result) BatchSummary {
	s := BatchSummary{
		BatchID: batchID,
		Status:  models.JobStatusCompleted,
		Total:   len(results),
		Results: results,
	}
	for _, r := range results {
		if r.Blocked {
			s.Blocked++
		}
		if r.Degraded() {
			s.Degraded++
		}
	}
	return s
}

// resultWriter is the part of *asynq.ResultWriter the handler uses.
type resultWriter interface {
	Write(p []byte) (int, error)
}

// HandleClassifyBatch classifies every title in the payload. Classification
// goes through the service, so results also land in the shared cache.
func HandleClassifyBatch(c BatchClassifier) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var w resultWriter
		if rw := t.ResultWriter(); rw != nil {
			w = rw
		}
		return processClassifyBatch(ctx, c, t.Payload(), w)
	}
}

func processClassifyBatch(ctx context.Context, c BatchClassifier, payload []byte, w resultWriter) error {
	p, err := tasks.ParseClassifyBatchPayload(payload)
	if err != nil {
		// A malformed payload will never succeed.
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}
	logger := log.WithFields(log.Fields{"batch_id": p.BatchID, "titles": len(p.Titles)})
	logger.Info("processing classify batch")

	results, err := c.ClassifyBatch(ctx, p.Titles)
	if err != nil {
		logger.WithError(err).Error("classify batch failed")
		return err
	}
	summary := Summarize(p.BatchID, results)
	logger.WithFields(log.Fields{"blocked": summary.Blocked, "degraded": summary.Degraded}).Info("classify batch completed")

	if w == nil {
		return nil
	}
	b, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal batch summary: %w", err)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write batch result: %w", err)
	}
	return nil
}

// RegisterHandlers wires every task type onto mux.
func RegisterHandlers(mux *asynq.ServeMux, c BatchClassifier) {
	mux.HandleFunc(tasks.TypeClassifyBatch, HandleClassifyBatch(c))
}
