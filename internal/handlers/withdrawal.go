package handlers

import (
	"errors"
	"log"
	"strconv"

	"nisapoti-admin/internal/models"
	"nisapoti-admin/internal/services/withdrawal"
	"nisapoti-admin/internal/utils"
	"nisapoti-admin/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type WithdrawalHandler struct {
	withdrawalService withdrawal.Service
}

func NewWithdrawalHandler(withdrawalService withdrawal.Service) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawalService: withdrawalService}
}

// List returns every withdrawal plus the table-wide summary.
func (h *WithdrawalHandler) List(c *fiber.Ctx) error {
	withdrawals, summary, err := h.withdrawalService.List()
	if err != nil {
		log.Printf("Error fetching withdrawals: %v", err)
		return utils.QueryFailed(c, "Database query failed", err)
	}

	return utils.Success(c, fiber.Map{
		"withdrawals": withdrawals,
		"summary":     summary,
	})
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus validates and persists a withdrawal status change. Invalid
// statuses are rejected with 400 before any write; unknown ids return 404.
func (h *WithdrawalHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid withdrawal ID")
	}

	var input statusRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return utils.BadRequest(c, "Status is required")
	}

	if _, err := h.withdrawalService.UpdateStatus(uint(id), input.Status); err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidStatus):
			return utils.BadRequest(c, "Invalid status")
		case errors.Is(err, withdrawal.ErrNotFound):
			return utils.NotFound(c, "Withdrawal not found")
		case errors.Is(err, withdrawal.ErrTransitionNotAllowed):
			return utils.BadRequest(c, "Status transition not allowed")
		default:
			log.Printf("Error updating withdrawal %d status: %v", id, err)
			return utils.QueryFailed(c, "Failed to update status", err)
		}
	}

	return utils.Success(c, fiber.Map{"message": "Status updated successfully"})
}
