// Package dashboard composes the stats response from independent queries.
// The seven queries share no transaction; a status transition committing
// mid-aggregation may be partially reflected, which is acceptable for a
// reporting dashboard.
package dashboard

import (
	"math"
	"time"

	"nisapoti-admin/internal/models"
	"nisapoti-admin/internal/repositories"
	"nisapoti-admin/internal/shape"
)

type Service interface {
	Stats() (*models.DashboardStats, error)
}

type service struct {
	statsRepo repositories.StatsRepository
}

func NewService(statsRepo repositories.StatsRepository) Service {
	return &service{statsRepo: statsRepo}
}

func (s *service) Stats() (*models.DashboardStats, error) {
	totalCreators, err := s.statsRepo.CountCreators()
	if err != nil {
		return nil, err
	}

	activeCreators, err := s.statsRepo.CountActiveCreators()
	if err != nil {
		return nil, err
	}

	totalRevenue, err := s.statsRepo.TotalRevenue()
	if err != nil {
		return nil, err
	}

	totalPaidOut, err := s.statsRepo.TotalPaidOut()
	if err != nil {
		return nil, err
	}

	pendingPayouts, err := s.statsRepo.PendingPayouts()
	if err != nil {
		return nil, err
	}

	totalSupporters, err := s.statsRepo.CountSupporters()
	if err != nil {
		return nil, err
	}

	wishlistRow, err := s.statsRepo.WishlistStats()
	if err != nil {
		return nil, err
	}

	monthlyRevenue, err := s.statsRepo.MonthlyRevenue()
	if err != nil {
		return nil, err
	}

	monthlyCreators, err := s.statsRepo.MonthlyNewCreators()
	if err != nil {
		return nil, err
	}

	revenueSeries := models.ChartSeries{
		Labels: make([]string, 0, len(monthlyRevenue)),
		Data:   make([]float64, 0, len(monthlyRevenue)),
	}
	for _, m := range monthlyRevenue {
		revenueSeries.Labels = append(revenueSeries.Labels, monthLabel(m.Month))
		revenueSeries.Data = append(revenueSeries.Data, shape.Decimal(m.Revenue))
	}

	creatorSeries := models.ChartSeries{
		Labels: make([]string, 0, len(monthlyCreators)),
		Data:   make([]float64, 0, len(monthlyCreators)),
	}
	for _, m := range monthlyCreators {
		creatorSeries.Labels = append(creatorSeries.Labels, monthLabel(m.Month))
		creatorSeries.Data = append(creatorSeries.Data, float64(m.NewCreators))
	}

	return &models.DashboardStats{
		TotalCreators:   totalCreators,
		ActiveCreators:  activeCreators,
		TotalRevenue:    shape.Decimal(totalRevenue),
		TotalPaidOut:    shape.Decimal(totalPaidOut),
		PendingPayouts:  shape.Decimal(pendingPayouts),
		TotalSupporters: totalSupporters,
		Wishlist: models.WishlistStats{
			TotalItems:    wishlistRow.TotalItems,
			TotalValue:    shape.Decimal(wishlistRow.TotalValue),
			TotalFunded:   shape.Decimal(wishlistRow.TotalFunded),
			PriorityItems: wishlistRow.PriorityItems,
			FundedItems:   wishlistRow.FundedItems,
		},
		Growth: models.GrowthStats{
			Revenue: revenueGrowth(revenueSeries.Data),
		},
		Charts: models.ChartData{
			Revenue:  revenueSeries,
			Creators: creatorSeries,
		},
	}, nil
}

// revenueGrowth compares the newest bucket against the oldest. A single
// data point or a zero first month reports 0 growth; the degenerate cases
// are a deliberate fallback, not an error.
func revenueGrowth(points []float64) float64 {
	if len(points) < 2 {
		return 0
	}
	first := points[0]
	last := points[len(points)-1]
	if first == 0 {
		return 0
	}
	return math.Round((last-first)/first*1000) / 10
}

// monthLabel renders a "2006-01" bucket key as its short month name. An
// unparsable key falls back to the raw value.
func monthLabel(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return t.Format("Jan")
}
