// Package wishlist serves the wishlist listing with folded image URLs.
package wishlist

import (
	"nisapoti-admin/internal/models"
	"nisapoti-admin/internal/repositories"
	"nisapoti-admin/internal/shape"
)

type Service interface {
	List() ([]models.WishlistItem, error)
}

type service struct {
	wishlistRepo repositories.WishlistRepository
}

func NewService(wishlistRepo repositories.WishlistRepository) Service {
	return &service{wishlistRepo: wishlistRepo}
}

func (s *service) List() ([]models.WishlistItem, error) {
	rows, err := s.wishlistRepo.ListWithImages()
	if err != nil {
		return nil, err
	}

	items := make([]models.WishlistItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, models.WishlistItem{
			ID:           row.ID,
			UserID:       row.UserID,
			Name:         row.Name.String,
			Price:        shape.Decimal(row.Price),
			AmountFunded: shape.Decimal(row.AmountFunded),
			IsPriority:   shape.Flag(row.IsPriority),
			CreatedAt:    row.CreatedAt,
			Images:       shape.URLList(row.Images),
		})
	}
	return items, nil
}
