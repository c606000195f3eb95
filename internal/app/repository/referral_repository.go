package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	appErrors "github.com/ujwegh/gamemart/internal/app/errors"
	"github.com/ujwegh/gamemart/internal/app/models"
)

type ReferralRepository interface {
	CreateReferral(ctx context.Context, referral *models.Referral) error
	GetReferrer(ctx context.Context, userID int64) (*models.Referral, error)
	GetReferred(ctx context.Context, referID int64) ([]models.Referral, error)
}

type ReferralRepositoryImpl struct {
	db *sqlx.DB
}

func NewReferralRepository(db *sqlx.DB) *ReferralRepositoryImpl {
	return &ReferralRepositoryImpl{db: db}
}

// CreateReferral stores the edge user -> referrer. A user has at most one
// outbound edge; the unique index on user_id enforces it.
func (rr *ReferralRepositoryImpl) CreateReferral(ctx context.Context, referral *models.Referral) error {
	if referral.UserID == referral.ReferID {
		return appErrors.ErrSelfReferral
	}
	query := `INSERT INTO referrals (user_id, refer_id, created_at) VALUES ($1, $2, $3)
			  ON CONFLICT (user_id) DO NOTHING RETURNING id;`
	err := rr.db.GetContext(ctx, &referral.ID, query, referral.UserID, referral.ReferID, referral.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("referral for user %d: %w", referral.UserID, appErrors.ErrDuplicate)
		}
		return fmt.Errorf("insert referral: %w", err)
	}
	return nil
}

func (rr *ReferralRepositoryImpl) GetReferrer(ctx context.Context, userID int64) (*models.Referral, error) {
	referral := &models.Referral{}
	err := rr.db.GetContext(ctx, referral, `SELECT * FROM referrals WHERE user_id = $1;`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("referrer of user %d: %w", userID, appErrors.ErrNotFound)
		}
		return nil, fmt.Errorf("get referrer: %w", err)
	}
	return referral, nil
}

func (rr *ReferralRepositoryImpl) GetReferred(ctx context.Context, referID int64) ([]models.Referral, error) {
	referrals := make([]models.Referral, 0)
	err := rr.db.SelectContext(ctx, &referrals, `SELECT * FROM referrals WHERE refer_id = $1 ORDER BY id;`, referID)
	if err != nil {
		return nil, fmt.Errorf("read referrals: %w", err)
	}
	return referrals, nil
}
