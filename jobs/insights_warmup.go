package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/clothmarket/clothmarket/internal/insights"
)

// InsightsWarmupJob pre-populates the seller insights caches so the
// dashboard is warm after an invalidation.
type InsightsWarmupJob struct {
	Insights *insights.Service
	Logger   *slog.Logger
}

// NewInsightsWarmupJob wires dependencies for the warmup handler.
func NewInsightsWarmupJob(insightsSvc *insights.Service, logger *slog.Logger) *InsightsWarmupJob {
	return &InsightsWarmupJob{Insights: insightsSvc, Logger: logger}
}

// Handle processes insights warmup tasks.
func (j *InsightsWarmupJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Insights == nil {
		return errors.New("insights warmup: handler not configured")
	}
	var payload InsightsWarmupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	if err := j.Insights.Warmup(ctx); err != nil {
		j.logger().Error("insights warmup failed", slog.Any("error", err))
		return err
	}
	j.logger().Info("insights warmup finished", slog.String("reason", payload.Reason))
	return nil
}

func (j *InsightsWarmupJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return slog.Default()
}
