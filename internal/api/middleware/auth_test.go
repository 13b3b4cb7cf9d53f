package middleware_test

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/loyalbox/loyalbox/internal/api/middleware"
	"github.com/loyalbox/loyalbox/internal/config"
	"github.com/loyalbox/loyalbox/internal/mocks"
	"github.com/loyalbox/loyalbox/internal/model"
	"github.com/loyalbox/loyalbox/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func signToken(t *testing.T, subject string, ttl time.Duration) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return token
}

func newAuthApp() *fiber.App {
	cfg := &config.Config{JWT: config.JWT{Secret: testSecret, TTL: time.Hour}}

	app := fiber.New()
	app.Get("/protected", middleware.RequireAuth(cfg, zap.NewNop()), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(middleware.UserIDKey).(string))
	})
	return app
}

func TestRequireAuth(t *testing.T) {
	t.Run("Missing token is unauthorized", func(t *testing.T) {
		app := newAuthApp()

		resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Malformed header is unauthorized", func(t *testing.T) {
		app := newAuthApp()

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Token abc")

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Garbage token is unauthorized", func(t *testing.T) {
		app := newAuthApp()

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Expired token is unauthorized", func(t *testing.T) {
		app := newAuthApp()

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "u1", -time.Minute))

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Valid token exposes the subject", func(t *testing.T) {
		app := newAuthApp()

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "u1", time.Hour))

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestRequireAdmin(t *testing.T) {
	newAdminApp := func(users *mocks.UserRepository) *fiber.App {
		app := fiber.New()
		app.Get("/admin",
			func(c *fiber.Ctx) error {
				c.Locals(middleware.UserIDKey, "u1")
				return c.Next()
			},
			middleware.RequireAdmin(users, zap.NewNop()),
			func(c *fiber.Ctx) error { return c.SendString("ok") },
		)
		return app
	}

	t.Run("Admin passes", func(t *testing.T) {
		users := &mocks.UserRepository{}
		users.On("FindByID", mock.Anything, "u1").Return(model.User{ID: "u1", IsAdmin: true}, nil)

		resp, err := newAdminApp(users).Test(httptest.NewRequest("GET", "/admin", nil))

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Non-admin is forbidden", func(t *testing.T) {
		users := &mocks.UserRepository{}
		users.On("FindByID", mock.Anything, "u1").Return(model.User{ID: "u1"}, nil)

		resp, err := newAdminApp(users).Test(httptest.NewRequest("GET", "/admin", nil))

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("Deleted user is unauthorized", func(t *testing.T) {
		users := &mocks.UserRepository{}
		users.On("FindByID", mock.Anything, "u1").Return(model.User{}, repository.ErrUserNotFound)

		resp, err := newAdminApp(users).Test(httptest.NewRequest("GET", "/admin", nil))

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Store failure is a server fault, not an auth failure", func(t *testing.T) {
		users := &mocks.UserRepository{}
		users.On("FindByID", mock.Anything, "u1").Return(model.User{}, errors.New("db down"))

		resp, err := newAdminApp(users).Test(httptest.NewRequest("GET", "/admin", nil))

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		users.AssertNumberOfCalls(t, "FindByID", 1)
	})
}
