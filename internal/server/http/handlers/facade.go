package handlers

import (
	"context"

	"github.com/polkiloo/factorytrack/internal/domain/model"
	pkgAuth "github.com/polkiloo/factorytrack/internal/pkg/auth"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Login(ctx context.Context, username, password string) (string, error)
	ParseToken(token string) (*pkgAuth.Claims, error)
}

// ListingFacade provides paginated listings of orders and products.
type ListingFacade interface {
	Orders(ctx context.Context, page, perPage int) (*model.OrderPage, error)
	Products(ctx context.Context, page, perPage int) (*model.ProductPage, error)
}

// ReportFacade provides the admin-only aggregate reports.
type ReportFacade interface {
	EmployeePerformance(ctx context.Context) ([]model.EmployeePerformance, error)
	TopSellingProducts(ctx context.Context) ([]model.ProductSales, error)
	CustomerLifetimeValue(ctx context.Context, threshold float64) ([]model.CustomerValue, error)
	ProductionEfficiency(ctx context.Context, date string) ([]model.ProductSales, error)
}

// FactoryFacade aggregates the full set of operations used across handlers.
type FactoryFacade interface {
	AuthFacade
	ListingFacade
	ReportFacade
}
