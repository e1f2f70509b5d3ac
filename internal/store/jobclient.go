package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"

	"titleguard/internal/tasks"
)

// MaxBatchSize caps the titles carried by one classify task.
const MaxBatchSize = 100

// AsynqJobClient enqueues classification batches onto Redis.
type AsynqJobClient struct {
	client *asynq.Client
	queue  string
}

var _ JobClient = (*AsynqJobClient)(nil)

func NewAsynqJobClient(opt asynq.RedisClientOpt, queue string) *AsynqJobClient {
	if queue == "" {
		queue = tasks.QueueDefault
	}
	return &AsynqJobClient{client: asynq.NewClient(opt), queue: queue}
}

func (jc *AsynqJobClient) Close() error {
	return jc.client.Close()
}

func (jc *AsynqJobClient) Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if jc.client == nil {
		return nil, fmt.Errorf("AsynqJobClient internal client is not initialized")
	}
	info, err := jc.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		log.WithError(err).WithField("type", task.Type()).Error("enqueue failed")
		return nil, err
	}
	log.WithFields(log.Fields{"type": task.Type(), "id": info.ID, "queue": info.Queue}).Debug("task enqueued")
	return info, nil
}

func (jc *AsynqJobClient) EnqueueClassifyBatch(ctx context.Context, titles []string) ([]string, error) {
	var ids []string
	for _, chunk := range Chunk(titles, MaxBatchSize) {
		batchID := uuid.NewString()
		task, err := tasks.NewClassifyBatchTask(batchID, chunk)
		if err != nil {
			return ids, err
		}
		// The batch id doubles as the task id so duplicates are rejected.
		if _, err := jc.Enqueue(ctx, task,
			asynq.Queue(jc.queue),
			asynq.TaskID(batchID),
			asynq.Retention(tasks.ResultRetention),
		); err != nil {
			return ids, fmt.Errorf("enqueue classify batch %s: %w", batchID, err)
		}
		ids = append(ids, batchID)
	}
	return ids, nil
}

// Chunk splits items into consecutive slices of at most size elements.
func Chunk(items []string, size int) [][]string {
	if size <= 0 {
		size = MaxBatchSize
	}
	var out [][]string
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		out = append(out, items[start:end])
	}
	return out
}
