package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	appErrors "github.com/ujwegh/gamemart/internal/app/errors"
	"github.com/ujwegh/gamemart/internal/app/models"
	"github.com/ujwegh/gamemart/internal/app/repository"
)

type UserService interface {
	EnsureUser(ctx context.Context, telegramID int64, username string) (*models.User, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserServiceImpl {
	return &UserServiceImpl{userRepo: userRepo}
}

func (us *UserServiceImpl) GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	user, err := us.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// EnsureUser returns the user with the given Telegram id, creating it with
// zero balances on first sight.
func (us *UserServiceImpl) EnsureUser(ctx context.Context, telegramID int64, username string) (*models.User, error) {
	user := &models.User{
		TelegramID: telegramID,
		Username:   username,
		CreatedAt:  time.Now().UTC(),
	}
	tx, err := us.userRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := us.userRepo.Create(ctx, tx, user); err != nil {
		if errors.Is(err, appErrors.ErrDuplicate) {
			tx.Rollback()
			return us.GetByTelegramID(ctx, telegramID)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, tx.Commit()
}
