package handlers

import (
	"log"

	"nisapoti-admin/internal/services/wishlist"
	"nisapoti-admin/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type WishlistHandler struct {
	wishlistService wishlist.Service
}

func NewWishlistHandler(wishlistService wishlist.Service) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// List returns every wishlist item with its image URLs.
func (h *WishlistHandler) List(c *fiber.Ctx) error {
	items, err := h.wishlistService.List()
	if err != nil {
		log.Printf("Error fetching wishlist: %v", err)
		return utils.QueryFailed(c, "Failed to fetch wishlist data", err)
	}
	return utils.Success(c, items)
}
