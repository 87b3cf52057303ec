package handlers

import (
	"log"

	"nisapoti-admin/internal/services/supporter"
	"nisapoti-admin/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type SupporterHandler struct {
	supporterService supporter.Service
}

func NewSupporterHandler(supporterService supporter.Service) *SupporterHandler {
	return &SupporterHandler{supporterService: supporterService}
}

// List returns every pledge, most recent first.
func (h *SupporterHandler) List(c *fiber.Ctx) error {
	supporters, err := h.supporterService.List()
	if err != nil {
		log.Printf("Error fetching supporters: %v", err)
		return utils.QueryFailed(c, "Database query failed", err)
	}
	return utils.Success(c, supporters)
}
