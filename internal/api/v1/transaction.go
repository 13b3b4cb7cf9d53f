package v1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/loyalbox/loyalbox/internal/service"
)

func (h *Handler) Buy(c *fiber.Ctx) error {
	var request BuyRequest
	if !h.parseAndValidate(c, &request, "Item name and price required") {
		return nil
	}

	result, err := h.ledger.Earn(c.UserContext(), service.EarnCommand{
		UserID:   h.callerID(c),
		ItemName: request.ItemName,
		Price:    request.Price,
	})
	if err != nil {
		return err
	}

	return c.JSON(PointsResponse{Message: "Points earned", Points: result.Points})
}

func (h *Handler) Redeem(c *fiber.Ctx) error {
	result, err := h.ledger.Redeem(c.UserContext(), service.RedeemCommand{
		UserID:   h.callerID(c),
		RewardID: c.Params("rewardId"),
	})
	if err != nil {
		return err
	}

	return c.JSON(PointsResponse{Message: "Reward redeemed", Points: result.Points})
}

func (h *Handler) Balance(c *fiber.Ctx) error {
	points, err := h.ledger.Balance(c.UserContext(), h.callerID(c))
	if err != nil {
		return err
	}

	return c.JSON(BalanceResponse{Points: points})
}

func (h *Handler) History(c *fiber.Ctx) error {
	transactions, err := h.ledger.History(c.UserContext(), h.callerID(c))
	if err != nil {
		return err
	}

	response := make([]TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		response = append(response, toTransactionResponse(tx))
	}
	return c.JSON(response)
}

func (h *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := h.ledger.ListUsers(c.UserContext())
	if err != nil {
		return err
	}

	response := make([]UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, toUserResponse(user))
	}
	return c.JSON(response)
}

func (h *Handler) AllTransactions(c *fiber.Ctx) error {
	entries, err := h.ledger.AllTransactions(c.UserContext())
	if err != nil {
		return err
	}

	response := make([]LedgerEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, toLedgerEntryResponse(entry))
	}
	return c.JSON(response)
}
