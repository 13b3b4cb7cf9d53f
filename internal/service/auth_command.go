package service

import (
	"github.com/loyalbox/loyalbox/internal/model"
)

type RegisterCommand struct {
	Username string
	Password string
}

type LoginCommand struct {
	Username string
	Password string
}

type AuthResult struct {
	Token string
	User  model.User
}
