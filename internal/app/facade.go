package app

import (
	"context"

	"github.com/polkiloo/factorytrack/internal/domain/model"
	pkgAuth "github.com/polkiloo/factorytrack/internal/pkg/auth"
	"github.com/polkiloo/factorytrack/internal/usecase"
)

// FactoryFacade aggregates the use cases behind a single surface consumed by
// the HTTP layer.
type FactoryFacade struct {
	auth    *usecase.AuthUseCase
	listing *usecase.ListingUseCase
	reports *usecase.ReportUseCase
}

func NewFactoryFacade(auth *usecase.AuthUseCase, listing *usecase.ListingUseCase, reports *usecase.ReportUseCase) *FactoryFacade {
	return &FactoryFacade{auth: auth, listing: listing, reports: reports}
}

func (f *FactoryFacade) Login(ctx context.Context, username, password string) (string, error) {
	return f.auth.Authenticate(ctx, username, password)
}

func (f *FactoryFacade) ParseToken(token string) (*pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

func (f *FactoryFacade) Orders(ctx context.Context, page, perPage int) (*model.OrderPage, error) {
	return f.listing.Orders(ctx, page, perPage)
}

func (f *FactoryFacade) Products(ctx context.Context, page, perPage int) (*model.ProductPage, error) {
	return f.listing.Products(ctx, page, perPage)
}

func (f *FactoryFacade) EmployeePerformance(ctx context.Context) ([]model.EmployeePerformance, error) {
	return f.reports.EmployeePerformance(ctx)
}

func (f *FactoryFacade) TopSellingProducts(ctx context.Context) ([]model.ProductSales, error) {
	return f.reports.TopSellingProducts(ctx)
}

func (f *FactoryFacade) CustomerLifetimeValue(ctx context.Context, threshold float64) ([]model.CustomerValue, error) {
	return f.reports.CustomerLifetimeValue(ctx, threshold)
}

func (f *FactoryFacade) ProductionEfficiency(ctx context.Context, date string) ([]model.ProductSales, error) {
	return f.reports.ProductionEfficiency(ctx, date)
}
