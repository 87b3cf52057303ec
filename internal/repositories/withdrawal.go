package repositories

import (
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
)

// WithdrawalRow mirrors the withdrawals listing join before shaping.
type WithdrawalRow struct {
	ID          uint
	CreatorID   uint
	Amount      sql.NullString
	Status      sql.NullString
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatorName sql.NullString
}

type WithdrawalRepository interface {
	List() ([]WithdrawalRow, error)
	SumAmountByStatus(status string) (float64, error)
	GetByID(id uint) (*WithdrawalRow, error)
	UpdateStatus(id uint, status string) error
}

type withdrawalRepository struct {
	db *gorm.DB
}

func NewWithdrawalRepository(db *gorm.DB) WithdrawalRepository {
	return &withdrawalRepository{db: db}
}

func (r *withdrawalRepository) List() ([]WithdrawalRow, error) {
	var rows []WithdrawalRow
	err := r.db.Raw(`
		SELECT
			w.id,
			w.creator_id,
			w.amount,
			w.status,
			w.created_at,
			w.updated_at,
			p.display_name AS creator_name
		FROM withdrawals w
		LEFT JOIN profiles p ON w.creator_id = p.user_id
		ORDER BY w.created_at DESC
	`).Scan(&rows).Error
	if err != nil {
		return nil, queryErr("list withdrawals", err)
	}
	return rows, nil
}

// SumAmountByStatus totals withdrawal amounts for one status across the
// entire table. NULL (no matching rows) collapses to 0 in SQL.
func (r *withdrawalRepository) SumAmountByStatus(status string) (float64, error) {
	var total float64
	err := r.db.Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM withdrawals
		WHERE status = ?
	`, status).Scan(&total).Error
	if err != nil {
		return 0, queryErr("sum withdrawals by status", err)
	}
	return total, nil
}

// GetByID fetches one withdrawal. The affected-rows count of an UPDATE
// cannot distinguish a missing row from an idempotent same-status write, so
// callers read first. Returns gorm.ErrRecordNotFound for unknown ids.
func (r *withdrawalRepository) GetByID(id uint) (*WithdrawalRow, error) {
	var row WithdrawalRow
	err := r.db.Raw(`
		SELECT id, creator_id, amount, status, created_at, updated_at
		FROM withdrawals
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&row).Error
	if err != nil {
		return nil, queryErr("get withdrawal", err)
	}
	if row.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

// UpdateStatus persists the status and bumps updated_at in one statement.
func (r *withdrawalRepository) UpdateStatus(id uint, status string) error {
	err := r.db.Exec(`
		UPDATE withdrawals SET status = ?, updated_at = NOW() WHERE id = ?
	`, status, id).Error
	if err != nil {
		return queryErr("update withdrawal status", err)
	}
	return nil
}

// IsNotFound reports whether an error is the driver's missing-row sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
