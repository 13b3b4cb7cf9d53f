package v1

import (
	"time"

	"github.com/loyalbox/loyalbox/internal/model"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type PointsResponse struct {
	Message string `json:"message"`
	Points  int64  `json:"points"`
}

type BalanceResponse struct {
	Points int64 `json:"points"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Points   int64  `json:"points"`
	IsAdmin  bool   `json:"isAdmin"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type RewardResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	PointsRequired int64  `json:"pointsRequired"`
	Description    string `json:"description"`
}

type TransactionResponse struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"userId"`
	Type        string    `json:"type"`
	Points      int64     `json:"points"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type LedgerEntryResponse struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"userId"`
	Username    string    `json:"username"`
	Type        string    `json:"type"`
	Points      int64     `json:"points"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Points:   u.Points,
		IsAdmin:  u.IsAdmin,
	}
}

func toRewardResponse(r model.Reward) RewardResponse {
	return RewardResponse{
		ID:             r.ID,
		Name:           r.Name,
		PointsRequired: r.PointsRequired,
		Description:    r.Description,
	}
}

func toTransactionResponse(t model.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.TransactionID,
		UserID:      t.UserID,
		Type:        string(t.Type),
		Points:      t.Points,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

func toLedgerEntryResponse(e model.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:          e.TransactionID,
		UserID:      e.UserID,
		Username:    e.Username,
		Type:        string(e.Type),
		Points:      e.Points,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}
