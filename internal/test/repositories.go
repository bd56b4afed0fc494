package test

import (
	"context"
	"sort"
	"time"

	domainErrors "github.com/polkiloo/factorytrack/internal/domain/errors"
	"github.com/polkiloo/factorytrack/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Upsert creates or replaces the account row.
func (s *UserRepositoryStub) Upsert(ctx context.Context, username, passwordHash, role string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if existing, ok := s.Users[username]; ok {
		existing.PasswordHash = passwordHash
		existing.Role = role
		return existing, nil
	}
	user := &model.User{ID: s.Next, Username: username, PasswordHash: passwordHash, Role: role}
	s.Next++
	s.Users[username] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByUsername returns stored user or ErrNotFound.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[username]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID returns stored user or ErrNotFound.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// OrderRepositoryStub serves ledger queries from an in-memory slice, grouping
// and filtering the same way the SQL implementation does.
type OrderRepositoryStub struct {
	Items []model.Order
	Err   error

	ListFn func(context.Context, int, int) ([]model.Order, error)
}

// List returns the requested window of Items in slice order.
func (s *OrderRepositoryStub) List(ctx context.Context, limit, offset int) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, limit, offset)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if offset >= len(s.Items) {
		return nil, nil
	}
	end := offset + limit
	if end > len(s.Items) {
		end = len(s.Items)
	}
	return s.Items[offset:end], nil
}

// Count returns the number of stored orders.
func (s *OrderRepositoryStub) Count(ctx context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return int64(len(s.Items)), nil
}

// EmployeePerformance groups quantity by employee, ascending employee id.
func (s *OrderRepositoryStub) EmployeePerformance(ctx context.Context) ([]model.EmployeePerformance, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	totals := make(map[int64]int64)
	for _, o := range s.Items {
		totals[o.EmployeeID] += o.Quantity
	}
	result := make([]model.EmployeePerformance, 0, len(totals))
	for id, total := range totals {
		result = append(result, model.EmployeePerformance{EmployeeID: id, TotalQuantity: total})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].EmployeeID < result[j].EmployeeID })
	return result, nil
}

// TopSellingProducts groups quantity by product, highest totals first.
func (s *OrderRepositoryStub) TopSellingProducts(ctx context.Context) ([]model.ProductSales, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	totals := make(map[int64]int64)
	for _, o := range s.Items {
		totals[o.ProductID] += o.Quantity
	}
	result := make([]model.ProductSales, 0, len(totals))
	for id, total := range totals {
		result = append(result, model.ProductSales{ProductID: id, TotalQuantity: total})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].TotalQuantity > result[j].TotalQuantity })
	return result, nil
}

// CustomerLifetimeValue sums amounts per customer and applies the threshold.
func (s *OrderRepositoryStub) CustomerLifetimeValue(ctx context.Context, threshold float64) ([]model.CustomerValue, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	totals := make(map[int64]float64)
	for _, o := range s.Items {
		totals[o.CustomerID] += o.TotalAmount
	}
	result := make([]model.CustomerValue, 0, len(totals))
	for id, total := range totals {
		if total >= threshold {
			result = append(result, model.CustomerValue{CustomerID: id, TotalValue: total})
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CustomerID < result[j].CustomerID })
	return result, nil
}

// ProductionEfficiency groups quantity by product for the matching day.
func (s *OrderRepositoryStub) ProductionEfficiency(ctx context.Context, date time.Time) ([]model.ProductSales, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	totals := make(map[int64]int64)
	for _, o := range s.Items {
		if sameDay(o.Date, date) {
			totals[o.ProductID] += o.Quantity
		}
	}
	result := make([]model.ProductSales, 0, len(totals))
	for id, total := range totals {
		result = append(result, model.ProductSales{ProductID: id, TotalQuantity: total})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ProductID < result[j].ProductID })
	return result, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ProductRepositoryStub serves catalog queries from an in-memory slice.
type ProductRepositoryStub struct {
	Items []model.Product
	Err   error
}

// List returns the requested window of Items in slice order.
func (s *ProductRepositoryStub) List(ctx context.Context, limit, offset int) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if offset >= len(s.Items) {
		return nil, nil
	}
	end := offset + limit
	if end > len(s.Items) {
		end = len(s.Items)
	}
	return s.Items[offset:end], nil
}

// Count returns the number of stored products.
func (s *ProductRepositoryStub) Count(ctx context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return int64(len(s.Items)), nil
}
