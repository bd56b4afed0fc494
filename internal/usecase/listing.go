package usecase

import (
	"context"

	"github.com/polkiloo/factorytrack/internal/domain/model"
	"github.com/polkiloo/factorytrack/internal/domain/repository"
)

// Pagination defaults applied when parameters are absent or below 1.
const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

// ListingUseCase serves paginated read access to orders and products.
type ListingUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
}

// NewListingUseCase constructs ListingUseCase.
func NewListingUseCase(orders repository.OrderRepository, products repository.ProductRepository) *ListingUseCase {
	return &ListingUseCase{orders: orders, products: products}
}

// Orders returns the requested page of the ledger. Pages beyond the end come
// back empty rather than failing.
func (u *ListingUseCase) Orders(ctx context.Context, page, perPage int) (*model.OrderPage, error) {
	page, perPage = normalizePaging(page, perPage)

	total, err := u.orders.Count(ctx)
	if err != nil {
		return nil, err
	}

	items, err := u.orders.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Order{}
	}

	return &model.OrderPage{
		Orders: items,
		Total:  total,
		Page:   page,
		Pages:  pageCount(total, perPage),
	}, nil
}

// Products returns the requested page of the catalog.
func (u *ListingUseCase) Products(ctx context.Context, page, perPage int) (*model.ProductPage, error) {
	page, perPage = normalizePaging(page, perPage)

	total, err := u.products.Count(ctx)
	if err != nil {
		return nil, err
	}

	items, err := u.products.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Product{}
	}

	return &model.ProductPage{
		Products: items,
		Total:    total,
		Page:     page,
		Pages:    pageCount(total, perPage),
	}, nil
}

func normalizePaging(page, perPage int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return page, perPage
}

func pageCount(total int64, perPage int) int {
	return int((total + int64(perPage) - 1) / int64(perPage))
}
