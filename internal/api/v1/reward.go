package v1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/loyalbox/loyalbox/internal/service"
)

func (h *Handler) ListRewards(c *fiber.Ctx) error {
	rewards, err := h.rewards.List(c.UserContext())
	if err != nil {
		return err
	}

	response := make([]RewardResponse, 0, len(rewards))
	for _, reward := range rewards {
		response = append(response, toRewardResponse(reward))
	}
	return c.JSON(response)
}

func (h *Handler) CreateReward(c *fiber.Ctx) error {
	var request RewardRequest
	if !h.parseAndValidate(c, &request, "Name and points required") {
		return nil
	}

	reward, err := h.rewards.Create(c.UserContext(), service.RewardCommand{
		Name:           request.Name,
		PointsRequired: request.PointsRequired,
		Description:    request.Description,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(toRewardResponse(reward))
}

func (h *Handler) UpdateReward(c *fiber.Ctx) error {
	var request UpdateRewardRequest
	if !h.parseAndValidate(c, &request, "Invalid request body") {
		return nil
	}

	reward, err := h.rewards.Update(c.UserContext(), c.Params("id"), service.RewardCommand{
		Name:           request.Name,
		PointsRequired: request.PointsRequired,
		Description:    request.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(toRewardResponse(reward))
}

func (h *Handler) DeleteReward(c *fiber.Ctx) error {
	if err := h.rewards.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}

	return c.JSON(MessageResponse{Message: "Reward deleted"})
}
