package models

import (
	"errors"
	"strings"
	"time"
)

// WithdrawalStatus is the four-valued status vocabulary. Input is accepted
// case-insensitively and persisted uppercase.
type WithdrawalStatus string

const (
	WithdrawalPending    WithdrawalStatus = "PENDING"
	WithdrawalProcessing WithdrawalStatus = "PROCESSING"
	WithdrawalCompleted  WithdrawalStatus = "COMPLETED"
	WithdrawalFailed     WithdrawalStatus = "FAILED"
)

var ErrInvalidStatus = errors.New("invalid withdrawal status")

// ParseWithdrawalStatus normalizes and validates a status string. Anything
// outside the vocabulary is rejected before a write is attempted.
func ParseWithdrawalStatus(s string) (WithdrawalStatus, error) {
	switch WithdrawalStatus(strings.ToUpper(s)) {
	case WithdrawalPending:
		return WithdrawalPending, nil
	case WithdrawalProcessing:
		return WithdrawalProcessing, nil
	case WithdrawalCompleted:
		return WithdrawalCompleted, nil
	case WithdrawalFailed:
		return WithdrawalFailed, nil
	default:
		return "", ErrInvalidStatus
	}
}

// statusTransitions is the admitted transition table. Every pair is
// currently permitted, including re-applying the current status and moving
// COMPLETED back to PENDING; tightening this is a product decision, but the
// table keeps the jump explicit instead of silent.
var statusTransitions = map[WithdrawalStatus][]WithdrawalStatus{
	WithdrawalPending:    {WithdrawalPending, WithdrawalProcessing, WithdrawalCompleted, WithdrawalFailed},
	WithdrawalProcessing: {WithdrawalPending, WithdrawalProcessing, WithdrawalCompleted, WithdrawalFailed},
	WithdrawalCompleted:  {WithdrawalPending, WithdrawalProcessing, WithdrawalCompleted, WithdrawalFailed},
	WithdrawalFailed:     {WithdrawalPending, WithdrawalProcessing, WithdrawalCompleted, WithdrawalFailed},
}

// CanTransitionTo reports whether the transition table admits from -> to.
func (s WithdrawalStatus) CanTransitionTo(next WithdrawalStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Withdrawal is a creator cash-out request. Status is the only field this
// service ever mutates.
type Withdrawal struct {
	ID          uint             `json:"id"`
	CreatorID   uint             `json:"creator_id"`
	Amount      float64          `json:"amount"`
	Status      WithdrawalStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	CreatorName string           `json:"creator_name"`
}

// WithdrawalSummary aggregates over the entire table, independently of any
// listing page.
type WithdrawalSummary struct {
	TotalWithdrawn     float64 `json:"total_withdrawn"`
	PendingWithdrawals float64 `json:"pending_withdrawals"`
}
