package mocks

import (
	"context"

	"github.com/loyalbox/loyalbox/internal/model"
	"github.com/loyalbox/loyalbox/internal/service"
	"github.com/stretchr/testify/mock"
)

type LedgerService struct {
	mock.Mock
}

func (m *LedgerService) Earn(ctx context.Context, cmd service.EarnCommand) (service.LedgerResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.LedgerResult), args.Error(1)
}

func (m *LedgerService) Redeem(ctx context.Context, cmd service.RedeemCommand) (service.LedgerResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.LedgerResult), args.Error(1)
}

func (m *LedgerService) Balance(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *LedgerService) History(ctx context.Context, userID string) ([]model.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *LedgerService) AllTransactions(ctx context.Context) ([]model.LedgerEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LedgerEntry), args.Error(1)
}

func (m *LedgerService) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}
