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

type OfferRepository interface {
	GetOfferByID(ctx context.Context, id int64) (*models.Offer, error)
}

type OfferRepositoryImpl struct {
	db *sqlx.DB
}

func NewOfferRepository(db *sqlx.DB) *OfferRepositoryImpl {
	return &OfferRepositoryImpl{db: db}
}

func (or *OfferRepositoryImpl) GetOfferByID(ctx context.Context, id int64) (*models.Offer, error) {
	query := `SELECT id, game_id, title, price_rub, price_usdt, is_enabled FROM offers WHERE id = $1;`
	offer := &models.Offer{}
	if err := or.db.GetContext(ctx, offer, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("offer %d: %w", id, appErrors.ErrNotFound)
		}
		return nil, fmt.Errorf("get offer: %w", err)
	}
	return offer, nil
}
