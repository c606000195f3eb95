package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appErrors "github.com/ujwegh/gamemart/internal/app/errors"
	"github.com/ujwegh/gamemart/internal/app/models"
	"github.com/ujwegh/gamemart/internal/app/repository"
	"github.com/ujwegh/gamemart/internal/app/repository/sqlitetest"
)

func createWithdrawal(t *testing.T, repo *repository.WithdrawalsRepositoryImpl, userID int64, amount models.Amount) *models.Withdrawal {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()
	withdrawal := &models.Withdrawal{
		UserID: userID, Currency: models.USDT, Amount: amount, Status: models.WithdrawalPending,
		CreatedAt: now, UpdatedAt: now,
	}
	tx, err := repo.GetDB().BeginTxx(ctx, nil)
	require.NoError(t, err)
	defer tx.Rollback()
	require.NoError(t, repo.CreateWithdrawal(ctx, tx, withdrawal))
	require.NoError(t, tx.Commit())
	return withdrawal
}

func TestWithdrawalsRepositoryImpl_CreateAndTransition(t *testing.T) {
	db := sqlitetest.Open(t)
	user := sqlitetest.SeedUser(t, db, 100, 0, 5_000_000)
	repo := repository.NewWithdrawalsRepository(db)
	ctx := context.Background()
	withdrawal := createWithdrawal(t, repo, user.ID, 1_000_000)

	transferID := "77"
	tests := []struct {
		name       string
		from       models.WithdrawalStatus
		to         models.WithdrawalStatus
		wantErr    error
		wantStatus models.WithdrawalStatus
	}{
		{name: "Pending to completed", from: models.WithdrawalPending, to: models.WithdrawalCompleted, wantStatus: models.WithdrawalCompleted},
		{name: "Completed cannot fail", from: models.WithdrawalPending, to: models.WithdrawalFailed, wantErr: appErrors.ErrStaleState, wantStatus: models.WithdrawalCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := db.BeginTxx(ctx, nil)
			require.NoError(t, err)
			err = repo.Transition(ctx, tx, withdrawal.ID, tt.from, tt.to, &transferID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				require.NoError(t, tx.Rollback())
			} else {
				require.NoError(t, err)
				require.NoError(t, tx.Commit())
			}
			got, err := repo.GetWithdrawal(ctx, withdrawal.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
			require.NotNil(t, got.TransferID)
			assert.Equal(t, transferID, *got.TransferID)
		})
	}

	_, err := repo.GetWithdrawal(ctx, 999)
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestWithdrawalsRepositoryImpl_Pending(t *testing.T) {
	db := sqlitetest.Open(t)
	user := sqlitetest.SeedUser(t, db, 100, 0, 5_000_000)
	other := sqlitetest.SeedUser(t, db, 200, 0, 5_000_000)
	repo := repository.NewWithdrawalsRepository(db)
	ctx := context.Background()

	first := createWithdrawal(t, repo, user.ID, 1_000_000)
	second := createWithdrawal(t, repo, user.ID, 2_000_000)
	third := createWithdrawal(t, repo, other.ID, 500_000)
	_, err := db.Exec(`UPDATE withdrawals SET status = $1 WHERE id = $2;`, models.WithdrawalCompleted, second.ID)
	require.NoError(t, err)

	count, err := repo.CountPendingWithdrawals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	page, err := repo.GetPendingWithdrawals(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, first.ID, page[0].ID)

	page, err = repo.GetPendingWithdrawals(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, third.ID, page[0].ID)

	mine, err := repo.GetWithdrawals(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
