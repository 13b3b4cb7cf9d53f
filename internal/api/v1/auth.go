package v1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/loyalbox/loyalbox/internal/service"
	"go.uber.org/zap"
)

func (h *Handler) Register(c *fiber.Ctx) error {
	var request RegisterRequest
	if !h.parseAndValidate(c, &request, "Username and password required") {
		return nil
	}

	result, err := h.auth.Register(c.UserContext(), service.RegisterCommand{
		Username: request.Username,
		Password: request.Password,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(AuthResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
	})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var request LoginRequest
	if !h.parseAndValidate(c, &request, "Username and password required") {
		return nil
	}

	result, err := h.auth.Login(c.UserContext(), service.LoginCommand{
		Username: request.Username,
		Password: request.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(AuthResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
	})
}

func (h *Handler) Promote(c *fiber.Ctx) error {
	targetID := c.Params("id")

	if err := h.auth.Promote(c.UserContext(), targetID); err != nil {
		return err
	}

	h.logger.Info("Promotion granted",
		zap.String("admin_id", h.callerID(c)),
		zap.String("target_id", targetID),
	)

	return c.JSON(MessageResponse{Message: "User promoted to admin"})
}

func (h *Handler) Me(c *fiber.Ctx) error {
	user, err := h.auth.Profile(c.UserContext(), h.callerID(c))
	if err != nil {
		return err
	}

	return c.JSON(toUserResponse(user))
}
