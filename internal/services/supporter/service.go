// Package supporter serves the pledge listing.
package supporter

import (
	"nisapoti-admin/internal/models"
	"nisapoti-admin/internal/repositories"
	"nisapoti-admin/internal/shape"
)

type Service interface {
	List() ([]models.Supporter, error)
}

type service struct {
	supporterRepo repositories.SupporterRepository
}

func NewService(supporterRepo repositories.SupporterRepository) Service {
	return &service{supporterRepo: supporterRepo}
}

func (s *service) List() ([]models.Supporter, error) {
	rows, err := s.supporterRepo.List()
	if err != nil {
		return nil, err
	}

	supporters := make([]models.Supporter, 0, len(rows))
	for _, row := range rows {
		supporters = append(supporters, models.Supporter{
			ID:          row.ID,
			Name:        row.Name.String,
			Phone:       row.Phone.String,
			Amount:      shape.Decimal(row.Amount),
			Status:      row.Status.String,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
			CreatorName: row.CreatorName.String,
		})
	}
	return supporters, nil
}
