package repository

import (
	"context"

	"github.com/polkiloo/factorytrack/internal/domain/model"
)

// UserRepository provides read access to provisioned accounts plus the
// out-of-band upsert used by the seeding CLI.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Upsert(ctx context.Context, username, passwordHash, role string) (*model.User, error)
}
