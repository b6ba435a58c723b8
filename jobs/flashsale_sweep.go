package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/clothmarket/clothmarket/internal/flashsale"
)

// FlashSaleSweepJob drops expired flash-sale windows from the catalog.
type FlashSaleSweepJob struct {
	FlashSales *flashsale.Service
	Logger     *slog.Logger
}

// NewFlashSaleSweepJob wires dependencies for the sweep handler.
func NewFlashSaleSweepJob(flashSales *flashsale.Service, logger *slog.Logger) *FlashSaleSweepJob {
	return &FlashSaleSweepJob{FlashSales: flashSales, Logger: logger}
}

// Handle processes flash-sale sweep tasks.
func (j *FlashSaleSweepJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.FlashSales == nil {
		return errors.New("flashsale sweep: handler not configured")
	}
	var payload FlashSaleSweepPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	cleared, err := j.FlashSales.Sweep(ctx)
	if err != nil {
		j.logger().Error("flash sale sweep failed", slog.Any("error", err))
		return err
	}
	j.logger().Info("flash sale sweep finished", slog.Int64("cleared", cleared), slog.String("reason", payload.Reason))
	return nil
}

func (j *FlashSaleSweepJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return slog.Default()
}
