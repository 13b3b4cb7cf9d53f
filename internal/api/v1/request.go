package v1

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type BuyRequest struct {
	ItemName string  `json:"itemName" validate:"required"`
	Price    float64 `json:"price" validate:"required,gt=0"`
}

type RewardRequest struct {
	Name           string `json:"name" validate:"required"`
	PointsRequired int64  `json:"pointsRequired" validate:"required,gt=0"`
	Description    string `json:"description"`
}

// UpdateRewardRequest carries partial updates; empty fields keep their
// current value.
type UpdateRewardRequest struct {
	Name           string `json:"name"`
	PointsRequired int64  `json:"pointsRequired"`
	Description    string `json:"description"`
}
