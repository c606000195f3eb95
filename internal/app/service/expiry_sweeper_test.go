package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/ujwegh/gamemart/internal/app/models"
)

type MockSettlementService struct {
	mock.Mock
}

func (m *MockSettlementService) Settle(ctx context.Context, event PaymentEvent) (*Outcome, error) {
	args := m.Called(ctx, event)
	outcome, _ := args.Get(0).(*Outcome)
	return outcome, args.Error(1)
}

func (m *MockSettlementService) Refund(ctx context.Context, orderNumber string) (*models.Order, error) {
	args := m.Called(ctx, orderNumber)
	order, _ := args.Get(0).(*models.Order)
	return order, args.Error(1)
}

func (m *MockSettlementService) ExpireDue(ctx context.Context, now time.Time, limit int) (int, error) {
	args := m.Called(ctx, now, limit)
	return args.Int(0), args.Error(1)
}

func TestExpirySweeper_Sweep(t *testing.T) {
	tests := []struct {
		name      string
		expired   int
		expireErr error
		wantErr   bool
	}{
		{name: "Nothing due", expired: 0},
		{name: "Expires a batch", expired: 7},
		{name: "Store failure", expireErr: errors.New("db is gone"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settlement := new(MockSettlementService)
			settlement.On("ExpireDue", mock.Anything, mock.AnythingOfType("time.Time"), 50).Return(tt.expired, tt.expireErr).Once()
			sweeper := NewExpirySweeper(settlement, "@every 1m", 50)

			got, err := sweeper.Sweep(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expired, got)
			}
			settlement.AssertExpectations(t)
		})
	}
}

func TestExpirySweeper_Start(t *testing.T) {
	sweeper := NewExpirySweeper(new(MockSettlementService), "not a schedule", 50)
	assert.Error(t, sweeper.Start(context.Background()))

	sweeper = NewExpirySweeper(new(MockSettlementService), "@every 1h", 50)
	assert.NoError(t, sweeper.Start(context.Background()))
	sweeper.Stop()
}
