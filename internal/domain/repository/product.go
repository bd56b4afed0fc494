package repository

import (
	"context"

	"github.com/polkiloo/factorytrack/internal/domain/model"
)

// ProductRepository provides paginated access to the product catalog.
type ProductRepository interface {
	List(ctx context.Context, limit, offset int) ([]model.Product, error)
	Count(ctx context.Context) (int64, error)
}
