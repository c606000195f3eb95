package service

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/ujwegh/gamemart/internal/app/logger"
	"github.com/ujwegh/gamemart/internal/app/models"
	"go.uber.org/zap"
)

// WithdrawalCache parks withdrawals the provider could not take. When an
// entry expires it is published back to the processing channel.
type WithdrawalCache interface {
	AddWithdrawal(withdrawal *models.Withdrawal)
}

type WithdrawalCacheImpl struct {
	*cache.Cache
	withdrawalChan chan models.Withdrawal
}

func NewWithdrawalCache(defaultExpiration, cleanupInterval time.Duration, withdrawalChan chan models.Withdrawal) *WithdrawalCacheImpl {
	c := cache.New(defaultExpiration, cleanupInterval)
	c.OnEvicted(func(key string, value interface{}) {
		withdrawal, ok := value.(models.Withdrawal)
		if !ok {
			return
		}
		withdrawalChan <- withdrawal
	})
	return &WithdrawalCacheImpl{
		Cache:          c,
		withdrawalChan: withdrawalChan,
	}
}

func (c *WithdrawalCacheImpl) AddWithdrawal(withdrawal *models.Withdrawal) {
	err := c.Add(strconv.FormatInt(withdrawal.ID, 10), *withdrawal, cache.DefaultExpiration)
	if err != nil {
		logger.Log.Debug("withdrawal already parked", zap.Int64("withdrawal_id", withdrawal.ID))
	}
}
