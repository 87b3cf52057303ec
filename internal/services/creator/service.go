// Package creator serves the creators-with-earnings listing.
package creator

import (
	"nisapoti-admin/internal/models"
	"nisapoti-admin/internal/repositories"
	"nisapoti-admin/internal/shape"
)

type Service interface {
	List() ([]models.Creator, error)
}

type service struct {
	creatorRepo repositories.CreatorRepository
}

func NewService(creatorRepo repositories.CreatorRepository) Service {
	return &service{creatorRepo: creatorRepo}
}

// List returns every creator with earnings derived from completed pledges
// only. The result is never nil.
func (s *service) List() ([]models.Creator, error) {
	rows, err := s.creatorRepo.ListWithEarnings()
	if err != nil {
		return nil, err
	}

	creators := make([]models.Creator, 0, len(rows))
	for _, row := range rows {
		creators = append(creators, models.Creator{
			ID:              row.ID,
			UserID:          row.UserID,
			Username:        row.Username.String,
			DisplayName:     row.DisplayName.String,
			CreatorURL:      row.CreatorURL.String,
			AvatarURL:       row.AvatarURL.String,
			Bio:             row.Bio.String,
			Category:        row.Category.String,
			Website:         row.Website.String,
			CreatedAt:       row.CreatedAt,
			Email:           row.Email.String,
			EmailVerified:   shape.Flag(row.EmailVerified),
			TotalEarnings:   shape.Decimal(row.TotalEarnings),
			TotalSupporters: row.TotalSupporters,
		})
	}
	return creators, nil
}
