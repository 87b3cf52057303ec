package handlers

import (
	"log"

	"nisapoti-admin/internal/services/creator"
	"nisapoti-admin/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type CreatorHandler struct {
	creatorService creator.Service
}

func NewCreatorHandler(creatorService creator.Service) *CreatorHandler {
	return &CreatorHandler{creatorService: creatorService}
}

// List returns all creators with their derived earnings figures.
func (h *CreatorHandler) List(c *fiber.Ctx) error {
	creators, err := h.creatorService.List()
	if err != nil {
		log.Printf("Error fetching creators: %v", err)
		return utils.QueryFailed(c, "Database query failed", err)
	}
	return utils.Success(c, creators)
}
