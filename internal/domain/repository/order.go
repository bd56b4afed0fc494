package repository

import (
	"context"
	"time"

	"github.com/polkiloo/factorytrack/internal/domain/model"
)

// OrderRepository exposes the read-only order ledger: a paginated listing plus
// the grouped aggregates behind the admin reports.
type OrderRepository interface {
	List(ctx context.Context, limit, offset int) ([]model.Order, error)
	Count(ctx context.Context) (int64, error)

	EmployeePerformance(ctx context.Context) ([]model.EmployeePerformance, error)
	TopSellingProducts(ctx context.Context) ([]model.ProductSales, error)
	CustomerLifetimeValue(ctx context.Context, threshold float64) ([]model.CustomerValue, error)
	ProductionEfficiency(ctx context.Context, date time.Time) ([]model.ProductSales, error)
}
