package dashboard

import (
	"database/sql"
	"testing"

	"nisapoti-admin/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) CountCreators() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepo) CountActiveCreators() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepo) TotalRevenue() (float64, error) {
	args := m.Called()
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockStatsRepo) TotalPaidOut() (float64, error) {
	args := m.Called()
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockStatsRepo) PendingPayouts() (float64, error) {
	args := m.Called()
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockStatsRepo) CountSupporters() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepo) WishlistStats() (repositories.WishlistStatsRow, error) {
	args := m.Called()
	return args.Get(0).(repositories.WishlistStatsRow), args.Error(1)
}

func (m *MockStatsRepo) MonthlyRevenue() ([]repositories.MonthlyAmountRow, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.MonthlyAmountRow), args.Error(1)
}

func (m *MockStatsRepo) MonthlyNewCreators() ([]repositories.MonthlyCountRow, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.MonthlyCountRow), args.Error(1)
}

func TestStats(t *testing.T) {
	repo := new(MockStatsRepo)
	repo.On("CountCreators").Return(int64(12), nil)
	repo.On("CountActiveCreators").Return(int64(7), nil)
	repo.On("TotalRevenue").Return(350000.0, nil)
	repo.On("TotalPaidOut").Return(120000.0, nil)
	repo.On("PendingPayouts").Return(45000.0, nil)
	repo.On("CountSupporters").Return(int64(25), nil)
	repo.On("WishlistStats").Return(repositories.WishlistStatsRow{
		TotalItems:    4,
		TotalValue:    sql.NullString{String: "800000.00", Valid: true},
		TotalFunded:   sql.NullString{String: "250000.00", Valid: true},
		PriorityItems: 1,
		FundedItems:   1,
	}, nil)
	repo.On("MonthlyRevenue").Return([]repositories.MonthlyAmountRow{
		{Month: "2026-03", Revenue: sql.NullString{String: "100000.00", Valid: true}},
		{Month: "2026-04", Revenue: sql.NullString{String: "150000.00", Valid: true}},
	}, nil)
	repo.On("MonthlyNewCreators").Return([]repositories.MonthlyCountRow{
		{Month: "2026-03", NewCreators: 3},
		{Month: "2026-04", NewCreators: 5},
	}, nil)

	s := NewService(repo)
	stats, err := s.Stats()

	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalCreators)
	assert.Equal(t, int64(7), stats.ActiveCreators)
	assert.Equal(t, 350000.0, stats.TotalRevenue)
	assert.Equal(t, 120000.0, stats.TotalPaidOut)
	assert.Equal(t, 45000.0, stats.PendingPayouts)
	assert.Equal(t, int64(25), stats.TotalSupporters)

	assert.Equal(t, int64(4), stats.Wishlist.TotalItems)
	assert.Equal(t, 800000.0, stats.Wishlist.TotalValue)
	assert.Equal(t, 250000.0, stats.Wishlist.TotalFunded)

	assert.Equal(t, []string{"Mar", "Apr"}, stats.Charts.Revenue.Labels)
	assert.Equal(t, []float64{100000, 150000}, stats.Charts.Revenue.Data)
	assert.Equal(t, []float64{3, 5}, stats.Charts.Creators.Data)

	// 100000 -> 150000 over the window is a 50% lift.
	assert.Equal(t, 50.0, stats.Growth.Revenue)

	repo.AssertExpectations(t)
}

func TestRevenueGrowth(t *testing.T) {
	tests := []struct {
		name   string
		points []float64
		want   float64
	}{
		{"no data", nil, 0},
		{"single month", []float64{5000}, 0},
		{"zero first month", []float64{0, 1000}, 0},
		{"fifty percent up", []float64{100000, 150000}, 50},
		{"decline", []float64{200, 150}, -25},
		{"rounded to one decimal", []float64{300, 400}, 33.3},
		{"middle months ignored", []float64{100, 9999, 120}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, revenueGrowth(tt.points))
		})
	}
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Jan", monthLabel("2026-01"))
	assert.Equal(t, "Dec", monthLabel("2025-12"))
	assert.Equal(t, "garbage", monthLabel("garbage"))
}
