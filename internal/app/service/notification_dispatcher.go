package service

import (
	"context"
	"sync"
	"time"

	"github.com/ujwegh/gamemart/internal/app/logger"
	"go.uber.org/zap"
)

const alertDedupTTL = 24 * time.Hour

type (
	// Notification is a single admin-facing message. Notifications sharing a
	// non-empty Key are delivered once.
	Notification struct {
		Key  string
		Text string
	}
	NotificationDispatcher interface {
		Dispatch(n Notification)
		Wait()
	}
	NotificationDispatcherImpl struct {
		notifier Notifier
		dedup    Deduplicator
		timeout  time.Duration
		wg       sync.WaitGroup
	}
)

func NewNotificationDispatcher(notifier Notifier, dedup Deduplicator, timeout time.Duration) *NotificationDispatcherImpl {
	return &NotificationDispatcherImpl{
		notifier: notifier,
		dedup:    dedup,
		timeout:  timeout,
	}
}

// Dispatch returns immediately. Delivery runs in its own goroutine bounded by
// the dispatcher timeout and never reports back to the caller.
func (nd *NotificationDispatcherImpl) Dispatch(n Notification) {
	nd.wg.Add(1)
	go func() {
		defer nd.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), nd.timeout)
		defer cancel()

		claimed := false
		if n.Key != "" && nd.dedup != nil {
			first, err := nd.dedup.FirstSeen(ctx, n.Key, alertDedupTTL)
			if err != nil {
				logger.Log.Warn("alert de-dup unavailable", zap.String("key", n.Key), zap.Error(err))
			} else if !first {
				logger.Log.Debug("duplicate alert suppressed", zap.String("key", n.Key))
				return
			}
			claimed = err == nil
		}
		if err := nd.notifier.Notify(ctx, n.Text); err != nil {
			logger.Log.Warn("failed to deliver notification", zap.String("key", n.Key), zap.Error(err))
			// An undelivered alert must not suppress the next attempt.
			if claimed {
				if err := nd.dedup.Forget(context.WithoutCancel(ctx), n.Key); err != nil {
					logger.Log.Warn("failed to release alert key", zap.String("key", n.Key), zap.Error(err))
				}
			}
		}
	}()
}

// Wait blocks until every dispatched notification has finished.
func (nd *NotificationDispatcherImpl) Wait() {
	nd.wg.Wait()
}
