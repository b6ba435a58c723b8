package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskFlashSaleSweep clears expired flash-sale windows.
	TaskFlashSaleSweep = "flashsale:sweep"
	// TaskInsightsWarmup pre-populates the insights caches.
	TaskInsightsWarmup = "insights:warmup"
)

// FlashSaleSweepPayload scopes a sweep run.
type FlashSaleSweepPayload struct {
	Reason string `json:"reason,omitempty"`
}

// NewFlashSaleSweepTask constructs a sweep task.
func NewFlashSaleSweepTask(payload FlashSaleSweepPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskFlashSaleSweep, data), nil
}

// InsightsWarmupPayload scopes a warmup run.
type InsightsWarmupPayload struct {
	Reason string `json:"reason,omitempty"`
}

// NewInsightsWarmupTask constructs a warmup task.
func NewInsightsWarmupTask(payload InsightsWarmupPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskInsightsWarmup, data), nil
}
