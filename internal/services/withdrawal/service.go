// Package withdrawal serves the withdrawals listing with its table-wide
// summary and performs the single mutation this dashboard owns: the status
// transition.
package withdrawal

import (
	"errors"

	"nisapoti-admin/internal/models"
	"nisapoti-admin/internal/repositories"
	"nisapoti-admin/internal/shape"
)

var (
	ErrNotFound             = errors.New("withdrawal not found")
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
)

type Service interface {
	List() ([]models.Withdrawal, models.WithdrawalSummary, error)
	UpdateStatus(id uint, status string) (models.WithdrawalStatus, error)
}

type service struct {
	withdrawalRepo repositories.WithdrawalRepository
}

func NewService(withdrawalRepo repositories.WithdrawalRepository) Service {
	return &service{withdrawalRepo: withdrawalRepo}
}

// List returns every withdrawal, most recent first, plus the summary. The
// summary's two sums are independent whole-table aggregates, not derived
// from the listing.
func (s *service) List() ([]models.Withdrawal, models.WithdrawalSummary, error) {
	rows, err := s.withdrawalRepo.List()
	if err != nil {
		return nil, models.WithdrawalSummary{}, err
	}

	totalPaidOut, err := s.withdrawalRepo.SumAmountByStatus(string(models.WithdrawalCompleted))
	if err != nil {
		return nil, models.WithdrawalSummary{}, err
	}

	pending, err := s.withdrawalRepo.SumAmountByStatus(string(models.WithdrawalPending))
	if err != nil {
		return nil, models.WithdrawalSummary{}, err
	}

	withdrawals := make([]models.Withdrawal, 0, len(rows))
	for _, row := range rows {
		withdrawals = append(withdrawals, models.Withdrawal{
			ID:          row.ID,
			CreatorID:   row.CreatorID,
			Amount:      shape.Decimal(row.Amount),
			Status:      models.WithdrawalStatus(row.Status.String),
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
			CreatorName: row.CreatorName.String,
		})
	}

	summary := models.WithdrawalSummary{
		TotalWithdrawn:     shape.Decimal(totalPaidOut),
		PendingWithdrawals: shape.Decimal(pending),
	}
	return withdrawals, summary, nil
}

// UpdateStatus validates the requested status before touching the database,
// then persists it. Re-applying the current status succeeds; an unknown id
// is a not-found error, never a silent no-op.
func (s *service) UpdateStatus(id uint, status string) (models.WithdrawalStatus, error) {
	next, err := models.ParseWithdrawalStatus(status)
	if err != nil {
		return "", err
	}

	row, err := s.withdrawalRepo.GetByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", err
	}

	// Every jump is admitted today, but it goes through the transition
	// table rather than happening silently.
	if current, err := models.ParseWithdrawalStatus(row.Status.String); err == nil {
		if !current.CanTransitionTo(next) {
			return "", ErrTransitionNotAllowed
		}
	}

	if err := s.withdrawalRepo.UpdateStatus(id, string(next)); err != nil {
		return "", err
	}
	return next, nil
}
