package test

import (
	"context"
	"time"

	"github.com/polkiloo/factorytrack/internal/domain/model"
)

// ListingFacadeStub provides controllable behaviour for listing endpoints.
type ListingFacadeStub struct {
	OrdersFn   func(context.Context, int, int) (*model.OrderPage, error)
	ProductsFn func(context.Context, int, int) (*model.ProductPage, error)
}

// Orders delegates to the provided function or returns a single-row page.
func (s ListingFacadeStub) Orders(ctx context.Context, page, perPage int) (*model.OrderPage, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, page, perPage)
	}
	return &model.OrderPage{
		Orders: []model.Order{{ID: 1, Quantity: 2, EmployeeID: 3, TotalAmount: 10, Date: time.Unix(0, 0).UTC(), ProductID: 4, CustomerID: 5}},
		Total:  1,
		Page:   page,
		Pages:  1,
	}, nil
}

// Products delegates to the provided function or returns a single-row page.
func (s ListingFacadeStub) Products(ctx context.Context, page, perPage int) (*model.ProductPage, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, page, perPage)
	}
	return &model.ProductPage{
		Products: []model.Product{{ID: 1, Name: "widget"}},
		Total:    1,
		Page:     page,
		Pages:    1,
	}, nil
}

// ReportFacadeStub simulates aggregate report queries.
type ReportFacadeStub struct {
	EmployeePerformanceFn   func(context.Context) ([]model.EmployeePerformance, error)
	TopSellingProductsFn    func(context.Context) ([]model.ProductSales, error)
	CustomerLifetimeValueFn func(context.Context, float64) ([]model.CustomerValue, error)
	ProductionEfficiencyFn  func(context.Context, string) ([]model.ProductSales, error)
}

// EmployeePerformance returns configured rows or a default group.
func (s ReportFacadeStub) EmployeePerformance(ctx context.Context) ([]model.EmployeePerformance, error) {
	if s.EmployeePerformanceFn != nil {
		return s.EmployeePerformanceFn(ctx)
	}
	return []model.EmployeePerformance{{EmployeeID: 1, TotalQuantity: 5}}, nil
}

// TopSellingProducts returns configured rows or a default group.
func (s ReportFacadeStub) TopSellingProducts(ctx context.Context) ([]model.ProductSales, error) {
	if s.TopSellingProductsFn != nil {
		return s.TopSellingProductsFn(ctx)
	}
	return []model.ProductSales{{ProductID: 1, TotalQuantity: 5}}, nil
}

// CustomerLifetimeValue returns configured rows or a default group.
func (s ReportFacadeStub) CustomerLifetimeValue(ctx context.Context, threshold float64) ([]model.CustomerValue, error) {
	if s.CustomerLifetimeValueFn != nil {
		return s.CustomerLifetimeValueFn(ctx, threshold)
	}
	return []model.CustomerValue{{CustomerID: 1, TotalValue: 1500}}, nil
}

// ProductionEfficiency returns configured rows or a default group.
func (s ReportFacadeStub) ProductionEfficiency(ctx context.Context, date string) ([]model.ProductSales, error) {
	if s.ProductionEfficiencyFn != nil {
		return s.ProductionEfficiencyFn(ctx, date)
	}
	return []model.ProductSales{{ProductID: 1, TotalQuantity: 5}}, nil
}

// FactoryFacadeStub aggregates facade dependencies for HTTP layer tests.
type FactoryFacadeStub struct {
	AuthFacadeStub
	ListingFacadeStub
	ReportFacadeStub
}
