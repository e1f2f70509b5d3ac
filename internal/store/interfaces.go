package store

import (
	"context"

	"github.com/hibiken/asynq"

	"titleguard/internal/models"
)

// --- Job Client ---

type JobClient interface {
	Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	// EnqueueClassifyBatch splits titles into batches and enqueues one task
	// per batch, returning the batch ids in order.
	EnqueueClassifyBatch(ctx context.Context, titles []string) ([]string, error)
	Close() error
}

// --- Rule Store ---

type RuleStore interface {
	AddRule(ctx context.Context, phrase string) (*models.TitleRule, error)
	ListRules(ctx context.Context) ([]models.TitleRule, error)
	RemoveRule(ctx context.Context, id int64) error
}

// --- Blocklist Store ---

type BlocklistStore interface {
	BlockVideo(ctx context.Context, videoID, title string) (*models.BlockedVideo, error)
	UnblockVideo(ctx context.Context, videoID string) error
	ListBlocked(ctx context.Context) ([]models.BlockedVideo, error)
	IsBlocked(ctx context.Context, videoID string) (bool, error)
}

// PrimaryStore is everything the local database provides.
type PrimaryStore interface {
	RuleStore
	BlocklistStore
	Ping(ctx context.Context) error
	Close() error
}
