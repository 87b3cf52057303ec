package repositories

import (
	"database/sql"

	"gorm.io/gorm"
)

// MonthlyAmountRow is one bucket of the 6-month revenue series.
type MonthlyAmountRow struct {
	Month   string
	Revenue sql.NullString
}

// MonthlyCountRow is one bucket of the 6-month new-creators series.
type MonthlyCountRow struct {
	Month       string
	NewCreators int64
}

// WishlistStatsRow is the single-row wishlist aggregate for the dashboard.
type WishlistStatsRow struct {
	TotalItems    int64
	TotalValue    sql.NullString
	TotalFunded   sql.NullString
	PriorityItems int64
	FundedItems   int64
}

// StatsRepository is the dashboard's query catalog: independent scalar and
// group-by queries with no cross-query atomicity.
type StatsRepository interface {
	CountCreators() (int64, error)
	CountActiveCreators() (int64, error)
	TotalRevenue() (float64, error)
	TotalPaidOut() (float64, error)
	PendingPayouts() (float64, error)
	CountSupporters() (int64, error)
	WishlistStats() (WishlistStatsRow, error)
	MonthlyRevenue() ([]MonthlyAmountRow, error)
	MonthlyNewCreators() ([]MonthlyCountRow, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountCreators() (int64, error) {
	var n int64
	err := r.db.Raw(`
		SELECT COUNT(DISTINCT id)
		FROM profiles
		WHERE user_type = 'creator'
	`).Scan(&n).Error
	if err != nil {
		return 0, queryErr("count creators", err)
	}
	return n, nil
}

// CountActiveCreators counts creators with at least one completed pledge.
func (r *statsRepository) CountActiveCreators() (int64, error) {
	var n int64
	err := r.db.Raw(`
		SELECT COUNT(DISTINCT p.id)
		FROM profiles p
		INNER JOIN supporters s ON p.id = s.creator_id
		WHERE p.user_type = 'creator' AND s.status = 'COMPLETED'
	`).Scan(&n).Error
	if err != nil {
		return 0, queryErr("count active creators", err)
	}
	return n, nil
}

func (r *statsRepository) TotalRevenue() (float64, error) {
	var total float64
	err := r.db.Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM supporters
		WHERE status = 'COMPLETED'
	`).Scan(&total).Error
	if err != nil {
		return 0, queryErr("total revenue", err)
	}
	return total, nil
}

func (r *statsRepository) TotalPaidOut() (float64, error) {
	var total float64
	err := r.db.Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM withdrawals
		WHERE status = 'COMPLETED'
	`).Scan(&total).Error
	if err != nil {
		return 0, queryErr("total paid out", err)
	}
	return total, nil
}

func (r *statsRepository) PendingPayouts() (float64, error) {
	var total float64
	err := r.db.Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM withdrawals
		WHERE status = 'PENDING'
	`).Scan(&total).Error
	if err != nil {
		return 0, queryErr("pending payouts", err)
	}
	return total, nil
}

func (r *statsRepository) CountSupporters() (int64, error) {
	var n int64
	err := r.db.Raw(`
		SELECT COUNT(DISTINCT id)
		FROM supporters
		WHERE status = 'COMPLETED'
	`).Scan(&n).Error
	if err != nil {
		return 0, queryErr("count supporters", err)
	}
	return n, nil
}

func (r *statsRepository) WishlistStats() (WishlistStatsRow, error) {
	var row WishlistStatsRow
	err := r.db.Raw(`
		SELECT
			COUNT(*) AS total_items,
			COALESCE(SUM(price), 0) AS total_value,
			COALESCE(SUM(amount_funded), 0) AS total_funded,
			COUNT(CASE WHEN is_priority = 1 THEN 1 END) AS priority_items,
			COUNT(CASE WHEN amount_funded >= price THEN 1 END) AS funded_items
		FROM wishlist
	`).Scan(&row).Error
	if err != nil {
		return WishlistStatsRow{}, queryErr("wishlist stats", err)
	}
	return row, nil
}

func (r *statsRepository) MonthlyRevenue() ([]MonthlyAmountRow, error) {
	var rows []MonthlyAmountRow
	err := r.db.Raw(`
		SELECT
			DATE_FORMAT(created_at, '%Y-%m') AS month,
			COALESCE(SUM(amount), 0) AS revenue
		FROM supporters
		WHERE status = 'COMPLETED'
		AND created_at >= DATE_SUB(NOW(), INTERVAL 6 MONTH)
		GROUP BY month
		ORDER BY month ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, queryErr("monthly revenue", err)
	}
	return rows, nil
}

func (r *statsRepository) MonthlyNewCreators() ([]MonthlyCountRow, error) {
	var rows []MonthlyCountRow
	err := r.db.Raw(`
		SELECT
			DATE_FORMAT(created_at, '%Y-%m') AS month,
			COUNT(*) AS new_creators
		FROM profiles
		WHERE user_type = 'creator'
		AND created_at >= DATE_SUB(NOW(), INTERVAL 6 MONTH)
		GROUP BY month
		ORDER BY month ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, queryErr("monthly new creators", err)
	}
	return rows, nil
}
