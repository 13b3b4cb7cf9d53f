package repository

import (
	"context"
	"errors"

	"github.com/loyalbox/loyalbox/internal/model"
	"gorm.io/gorm"
)

var ErrRewardNotFound = errors.New("REWARD_NOT_FOUND")

type RewardRepository interface {
	Create(ctx context.Context, reward *model.Reward) error
	FindByID(ctx context.Context, id string) (model.Reward, error)
	List(ctx context.Context) ([]model.Reward, error)
	Update(ctx context.Context, reward *model.Reward) error
	Delete(ctx context.Context, id string) error
}

type reward struct {
	db *gorm.DB
}

func NewRewardRepository(db *gorm.DB) RewardRepository {
	return &reward{db: db}
}

func (r *reward) Create(ctx context.Context, rw *model.Reward) error {
	db := GetTx(ctx, r.db)
	return db.Create(rw).Error
}

func (r *reward) FindByID(ctx context.Context, id string) (model.Reward, error) {
	db := GetTx(ctx, r.db)

	var rw model.Reward
	if err := db.Where("id = ?", id).First(&rw).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Reward{}, ErrRewardNotFound
		}
		return model.Reward{}, err
	}
	return rw, nil
}

func (r *reward) List(ctx context.Context) ([]model.Reward, error) {
	db := GetTx(ctx, r.db)

	var rewards []model.Reward
	if err := db.Order("created_at ASC").Find(&rewards).Error; err != nil {
		return nil, err
	}
	return rewards, nil
}

func (r *reward) Update(ctx context.Context, rw *model.Reward) error {
	db := GetTx(ctx, r.db)
	return db.Save(rw).Error
}

func (r *reward) Delete(ctx context.Context, id string) error {
	db := GetTx(ctx, r.db)

	res := db.Delete(&model.Reward{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRewardNotFound
	}
	return nil
}
