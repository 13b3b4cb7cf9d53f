package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type BalanceCache struct {
	mock.Mock
}

func (m *BalanceCache) GetPoints(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *BalanceCache) SetPoints(ctx context.Context, userID string, points int64) error {
	args := m.Called(ctx, userID, points)
	return args.Error(0)
}

func (m *BalanceCache) Invalidate(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
