package model

import "time"

type Reward struct {
	ID             string    `gorm:"column:id;primaryKey;type:char(36)"`
	Name           string    `gorm:"column:name;type:varchar(128);not null"`
	PointsRequired int64     `gorm:"column:points_required;not null"`
	Description    string    `gorm:"column:description;type:varchar(255)"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (Reward) TableName() string {
	return "rewards"
}
