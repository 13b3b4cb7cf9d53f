package repository

import (
	"context"

	"github.com/loyalbox/loyalbox/internal/model"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(ctx context.Context, tx *model.Transaction) error
	ListByUser(ctx context.Context, userID string) ([]model.Transaction, error)
	ListAll(ctx context.Context) ([]model.LedgerEntry, error)
}

type transaction struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transaction{db: db}
}

func (t *transaction) Create(ctx context.Context, tx *model.Transaction) error {
	db := GetTx(ctx, t.db)
	return db.Create(tx).Error
}

func (t *transaction) ListByUser(ctx context.Context, userID string) ([]model.Transaction, error) {
	db := GetTx(ctx, t.db)

	var txs []model.Transaction
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC, transaction_id DESC").
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}

func (t *transaction) ListAll(ctx context.Context) ([]model.LedgerEntry, error) {
	db := GetTx(ctx, t.db)

	var entries []model.LedgerEntry
	err := db.Table("transactions").
		Select("transactions.transaction_id, transactions.user_id, users.username, transactions.type, transactions.points, transactions.description, transactions.created_at").
		Joins("LEFT JOIN users ON users.id = transactions.user_id").
		Order("transactions.created_at DESC, transactions.transaction_id DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
