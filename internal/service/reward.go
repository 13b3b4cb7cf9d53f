package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/loyalbox/loyalbox/internal/constants"
	"github.com/loyalbox/loyalbox/internal/model"
	"github.com/loyalbox/loyalbox/internal/repository"
	"go.uber.org/zap"
)

var ErrInvalidReward = errors.New("name and positive points required")

type RewardService interface {
	List(ctx context.Context) ([]model.Reward, error)
	Create(ctx context.Context, cmd RewardCommand) (model.Reward, error)
	Update(ctx context.Context, id string, cmd RewardCommand) (model.Reward, error)
	Delete(ctx context.Context, id string) error
}

type rewardService struct {
	rewards repository.RewardRepository
	log     *zap.Logger
}

func NewRewardService(rewards repository.RewardRepository, log *zap.Logger) RewardService {
	return &rewardService{rewards: rewards, log: log}
}

func (s *rewardService) List(ctx context.Context) ([]model.Reward, error) {
	rewards, err := s.rewards.List(ctx)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return rewards, nil
}

func (s *rewardService) Create(ctx context.Context, cmd RewardCommand) (model.Reward, error) {
	if cmd.Name == "" || cmd.PointsRequired <= 0 {
		return model.Reward{}, NewServiceError(constants.ErrCodeValidation, ErrInvalidReward)
	}

	reward := model.Reward{
		ID:             uuid.NewString(),
		Name:           cmd.Name,
		PointsRequired: cmd.PointsRequired,
		Description:    cmd.Description,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := s.rewards.Create(ctx, &reward); err != nil {
		return model.Reward{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.log.Info("Reward created",
		zap.String("reward_id", reward.ID),
		zap.String("name", reward.Name),
		zap.Int64("points_required", reward.PointsRequired),
	)

	return reward, nil
}

func (s *rewardService) Update(ctx context.Context, id string, cmd RewardCommand) (model.Reward, error) {
	reward, err := s.rewards.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRewardNotFound) {
			return model.Reward{}, NewServiceError(constants.ErrCodeRewardNotFound, err)
		}
		return model.Reward{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if cmd.Name != "" {
		reward.Name = cmd.Name
	}
	if cmd.PointsRequired > 0 {
		reward.PointsRequired = cmd.PointsRequired
	}
	if cmd.Description != "" {
		reward.Description = cmd.Description
	}
	reward.UpdatedAt = time.Now()

	if err := s.rewards.Update(ctx, &reward); err != nil {
		return model.Reward{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return reward, nil
}

func (s *rewardService) Delete(ctx context.Context, id string) error {
	err := s.rewards.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRewardNotFound) {
			return NewServiceError(constants.ErrCodeRewardNotFound, err)
		}
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.log.Info("Reward deleted", zap.String("reward_id", id))
	return nil
}
