package mocks

import (
	"context"

	"github.com/loyalbox/loyalbox/internal/model"
	"github.com/stretchr/testify/mock"
)

type RewardRepository struct {
	mock.Mock
}

func (m *RewardRepository) Create(ctx context.Context, reward *model.Reward) error {
	args := m.Called(ctx, reward)
	return args.Error(0)
}

func (m *RewardRepository) FindByID(ctx context.Context, id string) (model.Reward, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Reward), args.Error(1)
}

func (m *RewardRepository) List(ctx context.Context) ([]model.Reward, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Reward), args.Error(1)
}

func (m *RewardRepository) Update(ctx context.Context, reward *model.Reward) error {
	args := m.Called(ctx, reward)
	return args.Error(0)
}

func (m *RewardRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
