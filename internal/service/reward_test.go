package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/loyalbox/loyalbox/internal/constants"
	"github.com/loyalbox/loyalbox/internal/mocks"
	"github.com/loyalbox/loyalbox/internal/model"
	"github.com/loyalbox/loyalbox/internal/repository"
	"github.com/loyalbox/loyalbox/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestReward_Create(t *testing.T) {
	t.Run("Creates a reward with a generated id", func(t *testing.T) {
		rewards := &mocks.RewardRepository{}
		svc := service.NewRewardService(rewards, zap.NewNop())

		rewards.On("Create", mock.Anything, mock.MatchedBy(func(r *model.Reward) bool {
			return r.ID != "" && r.Name == "Free Coffee" && r.PointsRequired == 15
		})).Return(nil)

		reward, err := svc.Create(context.Background(), service.RewardCommand{
			Name:           "Free Coffee",
			PointsRequired: 15,
			Description:    "One free coffee",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, reward.ID)
		rewards.AssertExpectations(t)
	})

	t.Run("Rejects missing name or non-positive points", func(t *testing.T) {
		rewards := &mocks.RewardRepository{}
		svc := service.NewRewardService(rewards, zap.NewNop())

		for _, cmd := range []service.RewardCommand{
			{PointsRequired: 15},
			{Name: "Free Coffee"},
			{Name: "Free Coffee", PointsRequired: -1},
		} {
			_, err := svc.Create(context.Background(), cmd)

			var serviceErr service.Error
			assert.True(t, errors.As(err, &serviceErr))
			assert.Equal(t, constants.ErrCodeValidation, serviceErr.Code)
		}

		rewards.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestReward_Update(t *testing.T) {
	t.Run("Applies only the provided fields", func(t *testing.T) {
		rewards := &mocks.RewardRepository{}
		svc := service.NewRewardService(rewards, zap.NewNop())

		existing := model.Reward{ID: "r1", Name: "Free Coffee", PointsRequired: 15, Description: "One free coffee"}
		rewards.On("FindByID", mock.Anything, "r1").Return(existing, nil)
		rewards.On("Update", mock.Anything, mock.MatchedBy(func(r *model.Reward) bool {
			return r.Name == "Free Coffee" && r.PointsRequired == 20 && r.Description == "One free coffee"
		})).Return(nil)

		updated, err := svc.Update(context.Background(), "r1", service.RewardCommand{PointsRequired: 20})

		assert.NoError(t, err)
		assert.Equal(t, int64(20), updated.PointsRequired)
		rewards.AssertExpectations(t)
	})

	t.Run("Missing reward resolves to not found", func(t *testing.T) {
		rewards := &mocks.RewardRepository{}
		svc := service.NewRewardService(rewards, zap.NewNop())

		rewards.On("FindByID", mock.Anything, "ghost").Return(model.Reward{}, repository.ErrRewardNotFound)

		_, err := svc.Update(context.Background(), "ghost", service.RewardCommand{Name: "New"})

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeRewardNotFound, serviceErr.Code)
	})
}

func TestReward_Delete(t *testing.T) {
	t.Run("Deletes an existing reward", func(t *testing.T) {
		rewards := &mocks.RewardRepository{}
		svc := service.NewRewardService(rewards, zap.NewNop())

		rewards.On("Delete", mock.Anything, "r1").Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), "r1"))
	})

	t.Run("Missing reward resolves to not found", func(t *testing.T) {
		rewards := &mocks.RewardRepository{}
		svc := service.NewRewardService(rewards, zap.NewNop())

		rewards.On("Delete", mock.Anything, "ghost").Return(repository.ErrRewardNotFound)

		err := svc.Delete(context.Background(), "ghost")

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeRewardNotFound, serviceErr.Code)
	})
}
