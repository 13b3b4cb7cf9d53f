package service

import (
	"time"
)

type EarnCommand struct {
	UserID   string
	ItemName string
	Price    float64
}

type RedeemCommand struct {
	UserID   string
	RewardID string
}

// LedgerResult reports the balance after the mutation committed, together
// with the ledger record it produced.
type LedgerResult struct {
	Points          int64
	TransactionID   int64
	TransactionTime time.Time
}
