package database

import (
	"github.com/loyalbox/loyalbox/internal/config"
	"github.com/loyalbox/loyalbox/pkg/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewConnection(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	return mysql.NewConnection(cfg.Database, logger)
}
