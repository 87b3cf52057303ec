package repositories

import (
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// CreatorRow is the driver-shaped result of the creators aggregation.
// Decimal sums arrive as strings over the MySQL text protocol; the shaping
// layer converts them exactly once.
type CreatorRow struct {
	ID              uint
	UserID          uint
	Username        sql.NullString
	DisplayName     sql.NullString
	CreatorURL      sql.NullString
	AvatarURL       sql.NullString
	Bio             sql.NullString
	Category        sql.NullString
	Website         sql.NullString
	CreatedAt       time.Time
	Email           sql.NullString
	EmailVerified   sql.NullInt64
	TotalEarnings   sql.NullString
	TotalSupporters int64
}

type CreatorRepository interface {
	ListWithEarnings() ([]CreatorRow, error)
}

type creatorRepository struct {
	db *gorm.DB
}

func NewCreatorRepository(db *gorm.DB) CreatorRepository {
	return &creatorRepository{db: db}
}

// ListWithEarnings left-joins profiles to users and completed supporters.
// The join keeps creators with no supporter rows; their earnings sum
// defaults to 0 in SQL.
func (r *creatorRepository) ListWithEarnings() ([]CreatorRow, error) {
	var rows []CreatorRow
	err := r.db.Raw(`
		SELECT
			p.id,
			p.user_id,
			p.username,
			p.display_name,
			p.creator_url,
			p.avatar_url,
			p.bio,
			p.category,
			p.website,
			p.created_at,
			u.email,
			u.email_verified,
			CAST(COALESCE(SUM(s.amount), 0) AS DECIMAL(10,2)) AS total_earnings,
			COUNT(DISTINCT s.id) AS total_supporters
		FROM profiles p
		LEFT JOIN users u ON p.user_id = u.id
		LEFT JOIN supporters s ON p.user_id = s.creator_id AND s.status = 'COMPLETED'
		GROUP BY p.id, p.user_id, p.username, p.display_name, p.creator_url,
		         p.avatar_url, p.bio, p.category, p.website, p.created_at,
		         u.email, u.email_verified
	`).Scan(&rows).Error
	if err != nil {
		return nil, queryErr("list creators", err)
	}
	return rows, nil
}
