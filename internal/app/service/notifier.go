package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/ujwegh/gamemart/internal/app/logger"
	"go.uber.org/zap"
)

type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// TelegramNotifier sends alerts to the admin chats through the store bot.
type TelegramNotifier struct {
	bot     *telego.Bot
	chatIDs []int64
}

func NewTelegramNotifier(token string, chatIDs []int64) (*TelegramNotifier, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatIDs: chatIDs}, nil
}

func (tn *TelegramNotifier) Notify(ctx context.Context, text string) error {
	var errs []error
	for _, chatID := range tn.chatIDs {
		if _, err := tn.bot.SendMessage(ctx, tu.Message(tu.ID(chatID), text)); err != nil {
			errs = append(errs, fmt.Errorf("chat %d: %w", chatID, err))
		}
	}
	return errors.Join(errs...)
}

// LogNotifier is used when no bot token is configured.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, text string) error {
	logger.Log.Info("admin alert", zap.String("text", text))
	return nil
}
