package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/loyalbox/loyalbox/internal/config"
	"github.com/loyalbox/loyalbox/internal/constants"
	"github.com/loyalbox/loyalbox/internal/mocks"
	"github.com/loyalbox/loyalbox/internal/model"
	"github.com/loyalbox/loyalbox/internal/repository"
	"github.com/loyalbox/loyalbox/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWT{Secret: "test-secret", TTL: time.Hour},
	}
}

func parseSubject(t *testing.T, token string) string {
	t.Helper()

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	assert.True(t, parsed.Valid)
	return claims.Subject
}

func TestAuth_Register(t *testing.T) {
	t.Run("First registration claims the admin flag", func(t *testing.T) {
		txm := &mocks.TxManager{}
		users := &mocks.UserRepository{}
		svc := service.NewAuthService(txm, users, testConfig(), zap.NewNop())

		txm.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		users.On("AnyExists", mock.Anything).Return(false, nil)
		users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Username == "alice" && u.IsAdmin && u.ID != "" && u.PasswordHash != "s3cret"
		})).Return(nil)

		result, err := svc.Register(context.Background(), service.RegisterCommand{
			Username: "alice",
			Password: "s3cret",
		})

		assert.NoError(t, err)
		assert.True(t, result.User.IsAdmin)
		assert.Equal(t, result.User.ID, parseSubject(t, result.Token))
		users.AssertExpectations(t)
	})

	t.Run("Later registrations are plain users", func(t *testing.T) {
		txm := &mocks.TxManager{}
		users := &mocks.UserRepository{}
		svc := service.NewAuthService(txm, users, testConfig(), zap.NewNop())

		txm.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		users.On("AnyExists", mock.Anything).Return(true, nil)
		users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Username == "bob" && !u.IsAdmin
		})).Return(nil)

		result, err := svc.Register(context.Background(), service.RegisterCommand{
			Username: "bob",
			Password: "s3cret",
		})

		assert.NoError(t, err)
		assert.False(t, result.User.IsAdmin)
	})

	t.Run("Duplicate username is rejected", func(t *testing.T) {
		txm := &mocks.TxManager{}
		users := &mocks.UserRepository{}
		svc := service.NewAuthService(txm, users, testConfig(), zap.NewNop())

		txm.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		users.On("AnyExists", mock.Anything).Return(true, nil)
		users.On("Create", mock.Anything, mock.Anything).Return(repository.ErrUsernameTaken)

		_, err := svc.Register(context.Background(), service.RegisterCommand{
			Username: "alice",
			Password: "s3cret",
		})

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeUsernameTaken, serviceErr.Code)
	})
}

func TestAuth_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	alice := model.User{ID: "u1", Username: "alice", PasswordHash: string(hash), Points: 40}

	t.Run("Valid credentials issue a token", func(t *testing.T) {
		users := &mocks.UserRepository{}
		svc := service.NewAuthService(&mocks.TxManager{}, users, testConfig(), zap.NewNop())

		users.On("FindByUsername", mock.Anything, "alice").Return(alice, nil)

		result, err := svc.Login(context.Background(), service.LoginCommand{
			Username: "alice",
			Password: "password123",
		})

		assert.NoError(t, err)
		assert.Equal(t, "u1", parseSubject(t, result.Token))
		assert.Equal(t, int64(40), result.User.Points)
	})

	t.Run("Unknown user and wrong password are indistinguishable", func(t *testing.T) {
		users := &mocks.UserRepository{}
		svc := service.NewAuthService(&mocks.TxManager{}, users, testConfig(), zap.NewNop())

		users.On("FindByUsername", mock.Anything, "ghost").Return(model.User{}, repository.ErrUserNotFound)
		users.On("FindByUsername", mock.Anything, "alice").Return(alice, nil)

		_, err1 := svc.Login(context.Background(), service.LoginCommand{Username: "ghost", Password: "whatever"})
		_, err2 := svc.Login(context.Background(), service.LoginCommand{Username: "alice", Password: "wrong"})

		for _, err := range []error{err1, err2} {
			var serviceErr service.Error
			assert.True(t, errors.As(err, &serviceErr))
			assert.Equal(t, constants.ErrCodeInvalidCredentials, serviceErr.Code)
		}
	})
}

func TestAuth_Promote(t *testing.T) {
	t.Run("Promotes an existing user", func(t *testing.T) {
		users := &mocks.UserRepository{}
		svc := service.NewAuthService(&mocks.TxManager{}, users, testConfig(), zap.NewNop())

		users.On("FindByID", mock.Anything, "u2").Return(model.User{ID: "u2"}, nil)
		users.On("SetAdmin", mock.Anything, "u2").Return(nil)

		err := svc.Promote(context.Background(), "u2")

		assert.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("Missing user resolves to not found", func(t *testing.T) {
		users := &mocks.UserRepository{}
		svc := service.NewAuthService(&mocks.TxManager{}, users, testConfig(), zap.NewNop())

		users.On("FindByID", mock.Anything, "ghost").Return(model.User{}, repository.ErrUserNotFound)

		err := svc.Promote(context.Background(), "ghost")

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeUserNotFound, serviceErr.Code)
		users.AssertNotCalled(t, "SetAdmin", mock.Anything, mock.Anything)
	})
}
