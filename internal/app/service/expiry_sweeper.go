package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/ujwegh/gamemart/internal/app/logger"
	"go.uber.org/zap"
)

// ExpirySweeper periodically expires pending payments past their deadline.
type ExpirySweeper struct {
	cron       *cron.Cron
	settlement SettlementService
	schedule   string
	batchSize  int
}

func NewExpirySweeper(settlement SettlementService, schedule string, batchSize int) *ExpirySweeper {
	return &ExpirySweeper{
		cron:       cron.New(cron.WithLocation(time.UTC)),
		settlement: settlement,
		schedule:   schedule,
		batchSize:  batchSize,
	}
}

// Sweep runs one pass. It is safe to run concurrently with webhook
// deliveries: every expiry goes through the same compare-and-swap.
func (es *ExpirySweeper) Sweep(ctx context.Context) (int, error) {
	expired, err := es.settlement.ExpireDue(ctx, time.Now().UTC(), es.batchSize)
	if err != nil {
		return 0, fmt.Errorf("sweep expired payments: %w", err)
	}
	if expired > 0 {
		logger.Log.Info("expired pending payments", zap.Int("expired", expired))
	}
	return expired, nil
}

func (es *ExpirySweeper) Start(ctx context.Context) error {
	_, err := es.cron.AddFunc(es.schedule, func() {
		if _, err := es.Sweep(ctx); err != nil {
			logger.Log.Error("expiry sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("schedule expiry sweep %q: %w", es.schedule, err)
	}
	es.cron.Start()
	logger.Log.Info("expiry sweeper started", zap.String("schedule", es.schedule))
	return nil
}

func (es *ExpirySweeper) Stop() {
	<-es.cron.Stop().Done()
	logger.Log.Info("expiry sweeper stopped")
}
