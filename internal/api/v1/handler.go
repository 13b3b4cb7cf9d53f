package v1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/loyalbox/loyalbox/internal/api/middleware"
	"github.com/loyalbox/loyalbox/internal/api/validator"
	"github.com/loyalbox/loyalbox/internal/constants"
	"github.com/loyalbox/loyalbox/internal/service"
	"go.uber.org/zap"
)

type Handler struct {
	logger    *zap.Logger
	auth      service.AuthService
	rewards   service.RewardService
	ledger    service.LedgerService
	validator *validator.XValidator
}

func NewHandler(logger *zap.Logger, auth service.AuthService, rewards service.RewardService,
	ledger service.LedgerService, validator *validator.XValidator) *Handler {
	return &Handler{
		logger:    logger,
		auth:      auth,
		rewards:   rewards,
		ledger:    ledger,
		validator: validator,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) callerID(c *fiber.Ctx) string {
	id, _ := c.Locals(middleware.UserIDKey).(string)
	return id
}

// parseAndValidate decodes the body and runs struct validation; on failure it
// writes the endpoint's 400 response and reports false.
func (h *Handler) parseAndValidate(c *fiber.Ctx, request interface{}, message string) bool {
	if err := c.BodyParser(request); err != nil {
		h.logger.Warn("Failed to parse body",
			zap.Error(err),
			zap.String("path", c.Path()),
		)
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeValidation,
			"message": message,
		})
		return false
	}

	if errs := h.validator.Validate(request); len(errs) > 0 {
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeValidation,
			"message": message,
		})
		return false
	}

	return true
}
