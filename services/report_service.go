package services

import (
	"github.com/shopspring/decimal"

	"tableside/repository"
)

type ReportService struct {
	Repo *repository.OrderRepository
}

func NewReportService(repo *repository.OrderRepository) *ReportService {
	return &ReportService{Repo: repo}
}

// TotalRevenue sums the cached totals of every paid order. No paid orders
// means zero, not an error. Recomputed on every call.
func (s *ReportService) TotalRevenue() (decimal.Decimal, error) {
	totals, err := s.Repo.PaidTotals()
	if err != nil {
		return decimal.Zero, err
	}
	revenue := decimal.Zero
	for _, t := range totals {
		revenue = revenue.Add(t)
	}
	return revenue, nil
}
