package withdrawal

import (
	"database/sql"
	"testing"

	"nisapoti-admin/internal/models"
	"nisapoti-admin/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockWithdrawalRepo struct {
	mock.Mock
}

func (m *MockWithdrawalRepo) List() ([]repositories.WithdrawalRow, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.WithdrawalRow), args.Error(1)
}

func (m *MockWithdrawalRepo) SumAmountByStatus(status string) (float64, error) {
	args := m.Called(status)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockWithdrawalRepo) GetByID(id uint) (*repositories.WithdrawalRow, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.WithdrawalRow), args.Error(1)
}

func (m *MockWithdrawalRepo) UpdateStatus(id uint, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func pendingRow(id uint) *repositories.WithdrawalRow {
	return &repositories.WithdrawalRow{
		ID:     id,
		Status: sql.NullString{String: "PENDING", Valid: true},
	}
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		id        uint
		status    string
		setupMock func(*MockWithdrawalRepo)
		want      models.WithdrawalStatus
		wantErr   error
	}{
		{
			name:   "lowercase input persisted uppercase",
			id:     1,
			status: "completed",
			setupMock: func(repo *MockWithdrawalRepo) {
				repo.On("GetByID", uint(1)).Return(pendingRow(1), nil)
				repo.On("UpdateStatus", uint(1), "COMPLETED").Return(nil)
			},
			want: models.WithdrawalCompleted,
		},
		{
			name:   "completed back to pending is permitted",
			id:     2,
			status: "PENDING",
			setupMock: func(repo *MockWithdrawalRepo) {
				row := &repositories.WithdrawalRow{ID: 2, Status: sql.NullString{String: "COMPLETED", Valid: true}}
				repo.On("GetByID", uint(2)).Return(row, nil)
				repo.On("UpdateStatus", uint(2), "PENDING").Return(nil)
			},
			want: models.WithdrawalPending,
		},
		{
			name:      "invalid status rejected before any read or write",
			id:        3,
			status:    "DONE",
			setupMock: func(repo *MockWithdrawalRepo) {},
			wantErr:   models.ErrInvalidStatus,
		},
		{
			name:      "empty status rejected",
			id:        3,
			status:    "",
			setupMock: func(repo *MockWithdrawalRepo) {},
			wantErr:   models.ErrInvalidStatus,
		},
		{
			name:   "unknown id",
			id:     99,
			status: "COMPLETED",
			setupMock: func(repo *MockWithdrawalRepo) {
				repo.On("GetByID", uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockWithdrawalRepo)
			tt.setupMock(repo)

			s := NewService(repo)
			got, err := s.UpdateStatus(tt.id, tt.status)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestUpdateStatusIdempotent(t *testing.T) {
	repo := new(MockWithdrawalRepo)
	row := &repositories.WithdrawalRow{ID: 5, Status: sql.NullString{String: "COMPLETED", Valid: true}}
	repo.On("GetByID", uint(5)).Return(row, nil).Twice()
	repo.On("UpdateStatus", uint(5), "COMPLETED").Return(nil).Twice()

	s := NewService(repo)

	// Re-applying the same status succeeds both times.
	for i := 0; i < 2; i++ {
		got, err := s.UpdateStatus(5, "completed")
		assert.NoError(t, err)
		assert.Equal(t, models.WithdrawalCompleted, got)
	}

	repo.AssertExpectations(t)
}

func TestListShapesRowsAndSummary(t *testing.T) {
	repo := new(MockWithdrawalRepo)
	rows := []repositories.WithdrawalRow{
		{
			ID:          1,
			CreatorID:   10,
			Amount:      sql.NullString{String: "25000.00", Valid: true},
			Status:      sql.NullString{String: "COMPLETED", Valid: true},
			CreatorName: sql.NullString{String: "Asha", Valid: true},
		},
		{
			ID:     2,
			Amount: sql.NullString{},
			Status: sql.NullString{String: "PENDING", Valid: true},
		},
	}
	repo.On("List").Return(rows, nil)
	repo.On("SumAmountByStatus", "COMPLETED").Return(25000.0, nil)
	repo.On("SumAmountByStatus", "PENDING").Return(1200.5, nil)

	s := NewService(repo)
	withdrawals, summary, err := s.List()

	assert.NoError(t, err)
	assert.Len(t, withdrawals, 2)
	assert.Equal(t, 25000.0, withdrawals[0].Amount)
	assert.Equal(t, "Asha", withdrawals[0].CreatorName)
	assert.Equal(t, models.WithdrawalCompleted, withdrawals[0].Status)
	// NULL amount defaults to 0
	assert.Equal(t, 0.0, withdrawals[1].Amount)

	assert.Equal(t, 25000.0, summary.TotalWithdrawn)
	assert.Equal(t, 1200.5, summary.PendingWithdrawals)

	repo.AssertExpectations(t)
}
