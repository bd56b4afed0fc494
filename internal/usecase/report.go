package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/factorytrack/internal/domain/errors"
	"github.com/polkiloo/factorytrack/internal/domain/model"
	"github.com/polkiloo/factorytrack/internal/domain/repository"
)

// DefaultValueThreshold is the customer lifetime value cutoff when the caller
// does not supply one.
const DefaultValueThreshold = 1000

const dateLayout = "2006-01-02"

// ReportUseCase computes grouped aggregates over the order ledger.
type ReportUseCase struct {
	orders repository.OrderRepository
}

// NewReportUseCase constructs ReportUseCase.
func NewReportUseCase(orders repository.OrderRepository) *ReportUseCase {
	return &ReportUseCase{orders: orders}
}

// EmployeePerformance sums order quantity per employee. Group order is
// unspecified.
func (u *ReportUseCase) EmployeePerformance(ctx context.Context) ([]model.EmployeePerformance, error) {
	return u.orders.EmployeePerformance(ctx)
}

// TopSellingProducts sums order quantity per product, highest totals first.
func (u *ReportUseCase) TopSellingProducts(ctx context.Context) ([]model.ProductSales, error) {
	return u.orders.TopSellingProducts(ctx)
}

// CustomerLifetimeValue sums order amounts per customer, keeping only
// customers whose total meets the threshold.
func (u *ReportUseCase) CustomerLifetimeValue(ctx context.Context, threshold float64) ([]model.CustomerValue, error) {
	return u.orders.CustomerLifetimeValue(ctx, threshold)
}

// ProductionEfficiency sums order quantity per product for a single calendar
// day. The date is required.
func (u *ReportUseCase) ProductionEfficiency(ctx context.Context, date string) ([]model.ProductSales, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return nil, domainErrors.ErrMissingDate
	}
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return u.orders.ProductionEfficiency(ctx, day)
}
