package repositories

import (
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// WishlistRow carries one item with its images folded into a single
// GROUP_CONCAT column; the shaping layer splits them back out.
type WishlistRow struct {
	ID           uint
	UserID       uint
	Name         sql.NullString
	Price        sql.NullString
	AmountFunded sql.NullString
	IsPriority   sql.NullInt64
	CreatedAt    time.Time
	Images       sql.NullString
}

type WishlistRepository interface {
	ListWithImages() ([]WishlistRow, error)
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) ListWithImages() ([]WishlistRow, error) {
	var rows []WishlistRow
	err := r.db.Raw(`
		SELECT
			w.id,
			w.user_id,
			w.name,
			w.price,
			w.amount_funded,
			w.is_priority,
			w.created_at,
			GROUP_CONCAT(wi.image_url) AS images
		FROM wishlist w
		LEFT JOIN wishlist_images wi ON w.id = wi.wishlist_id
		GROUP BY w.id, w.user_id, w.name, w.price, w.amount_funded,
		         w.is_priority, w.created_at
		ORDER BY w.created_at DESC
	`).Scan(&rows).Error
	if err != nil {
		return nil, queryErr("list wishlist", err)
	}
	return rows, nil
}
