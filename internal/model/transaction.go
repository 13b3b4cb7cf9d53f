package model

import "time"

type TxType string

const (
	TxTypeEarn   TxType = "earn"
	TxTypeRedeem TxType = "redeem"
)

// Transaction is an immutable ledger record. Rows are only ever inserted;
// TransactionID doubles as the insertion-order tie-breaker when two records
// share a created_at timestamp.
type Transaction struct {
	TransactionID int64     `gorm:"column:transaction_id;primaryKey;autoIncrement"`
	UserID        string    `gorm:"column:user_id;type:char(36);not null;index"`
	Type          TxType    `gorm:"column:type;type:varchar(10);not null"`
	Points        int64     `gorm:"column:points;not null"`
	Description   string    `gorm:"column:description;type:varchar(255);not null"`
	CreatedAt     time.Time `gorm:"column:created_at;index"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// LedgerEntry is a Transaction annotated with the owning user's username,
// as served to administrators.
type LedgerEntry struct {
	TransactionID int64
	UserID        string
	Username      string
	Type          TxType
	Points        int64
	Description   string
	CreatedAt     time.Time
}
