package models

// Batch status constants reported by the classification worker.
const (
	JobStatusEnqueued  = "enqueued"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)
