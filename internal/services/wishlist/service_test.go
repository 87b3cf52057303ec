package wishlist

import (
	"database/sql"
	"testing"

	"nisapoti-admin/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockWishlistRepo struct {
	mock.Mock
}

func (m *MockWishlistRepo) ListWithImages() ([]repositories.WishlistRow, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.WishlistRow), args.Error(1)
}

func TestList(t *testing.T) {
	repo := new(MockWishlistRepo)
	rows := []repositories.WishlistRow{
		{
			ID:           1,
			UserID:       10,
			Name:         sql.NullString{String: "Camera", Valid: true},
			Price:        sql.NullString{String: "100000.00", Valid: true},
			AmountFunded: sql.NullString{String: "100000.00", Valid: true},
			IsPriority:   sql.NullInt64{Int64: 1, Valid: true},
			Images:       sql.NullString{String: "https://cdn.example/a.jpg,https://cdn.example/b.jpg", Valid: true},
		},
		{
			ID:           2,
			UserID:       10,
			Name:         sql.NullString{String: "Tripod", Valid: true},
			Price:        sql.NullString{String: "100000.00", Valid: true},
			AmountFunded: sql.NullString{String: "99999.00", Valid: true},
			IsPriority:   sql.NullInt64{Int64: 0, Valid: true},
			Images:       sql.NullString{},
		},
	}
	repo.On("ListWithImages").Return(rows, nil)

	s := NewService(repo)
	items, err := s.List()

	assert.NoError(t, err)
	assert.Len(t, items, 2)

	assert.Equal(t, []string{"https://cdn.example/a.jpg", "https://cdn.example/b.jpg"}, items[0].Images)
	assert.True(t, items[0].IsPriority)
	assert.True(t, items[0].Funded())

	// Items with no joined images still get an empty array, never nil.
	assert.NotNil(t, items[1].Images)
	assert.Empty(t, items[1].Images)
	assert.False(t, items[1].IsPriority)
	assert.False(t, items[1].Funded())

	repo.AssertExpectations(t)
}
