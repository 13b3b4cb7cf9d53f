package service

type RewardCommand struct {
	Name           string
	PointsRequired int64
	Description    string
}
