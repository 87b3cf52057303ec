package repositories

import (
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// SupporterRow mirrors the supporters listing join before shaping.
type SupporterRow struct {
	ID          uint
	Name        sql.NullString
	Phone       sql.NullString
	Amount      sql.NullString
	Status      sql.NullString
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatorName sql.NullString
}

type SupporterRepository interface {
	List() ([]SupporterRow, error)
}

type supporterRepository struct {
	db *gorm.DB
}

func NewSupporterRepository(db *gorm.DB) SupporterRepository {
	return &supporterRepository{db: db}
}

// List returns every pledge, most recent first, with the creator's display
// name resolved through a left join.
func (r *supporterRepository) List() ([]SupporterRow, error) {
	var rows []SupporterRow
	err := r.db.Raw(`
		SELECT
			s.id,
			s.name,
			s.phone,
			s.amount,
			s.status,
			s.created_at,
			s.updated_at,
			p.display_name AS creator_name
		FROM supporters s
		LEFT JOIN profiles p ON s.creator_id = p.user_id
		ORDER BY s.created_at DESC
	`).Scan(&rows).Error
	if err != nil {
		return nil, queryErr("list supporters", err)
	}
	return rows, nil
}
