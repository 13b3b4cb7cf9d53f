package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/loyalbox/loyalbox/internal/config"
	"github.com/loyalbox/loyalbox/internal/constants"
	"github.com/loyalbox/loyalbox/internal/model"
	"github.com/loyalbox/loyalbox/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService interface {
	Register(ctx context.Context, cmd RegisterCommand) (AuthResult, error)
	Login(ctx context.Context, cmd LoginCommand) (AuthResult, error)
	Promote(ctx context.Context, targetID string) error
	Profile(ctx context.Context, userID string) (model.User, error)
}

type authService struct {
	txManager repository.TxManager
	users     repository.UserRepository
	cfg       *config.Config
	log       *zap.Logger
}

func NewAuthService(txManager repository.TxManager, users repository.UserRepository,
	cfg *config.Config, log *zap.Logger) AuthService {
	return &authService{txManager: txManager, users: users, cfg: cfg, log: log}
}

// Register creates the account and issues a token. The very first account
// becomes the bootstrap administrator; the existence check and the insert run
// under one transaction with the check's read locked, so two concurrent first
// registrations cannot both claim the flag.
func (s *authService) Register(ctx context.Context, cmd RegisterCommand) (AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	user := model.User{
		ID:           uuid.NewString(),
		Username:     cmd.Username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		exists, err := s.users.AnyExists(ctx)
		if err != nil {
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}
		user.IsAdmin = !exists

		if err := s.users.Create(ctx, &user); err != nil {
			if errors.Is(err, repository.ErrUsernameTaken) {
				return NewServiceError(constants.ErrCodeUsernameTaken, err)
			}
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}
		return nil
	})
	if err != nil {
		return AuthResult{}, err
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return AuthResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username),
		zap.Bool("is_admin", user.IsAdmin),
	)

	return AuthResult{Token: token, User: user}, nil
}

// Login verifies the password. Unknown usernames and wrong passwords are
// indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, cmd LoginCommand) (AuthResult, error) {
	user, err := s.users.FindByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return AuthResult{}, NewServiceError(constants.ErrCodeInvalidCredentials, ErrInvalidCredentials)
		}
		return AuthResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(cmd.Password)); err != nil {
		return AuthResult{}, NewServiceError(constants.ErrCodeInvalidCredentials, ErrInvalidCredentials)
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return AuthResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID))

	return AuthResult{Token: token, User: user}, nil
}

func (s *authService) Promote(ctx context.Context, targetID string) error {
	user, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if err := s.users.SetAdmin(ctx, user.ID); err != nil {
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.log.Info("User promoted to admin", zap.String("user_id", user.ID))
	return nil
}

func (s *authService) Profile(ctx context.Context, userID string) (model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.User{}, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return model.User{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return user, nil
}

func (s *authService) issueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWT.TTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.Secret))
}
