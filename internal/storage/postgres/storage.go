package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/factorytrack/internal/domain/errors"
	"github.com/polkiloo/factorytrack/internal/domain/model"
	"github.com/polkiloo/factorytrack/internal/domain/repository"
)

// pool is the subset of pgxpool.Pool the storage relies on, kept as an
// interface so tests can substitute a mock pool.
type pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pgPool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pgPool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pgPool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            username TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            quantity INTEGER NOT NULL CHECK (quantity >= 0),
            employee_id BIGINT NOT NULL,
            total_amount DOUBLE PRECISION NOT NULL,
            date DATE NOT NULL,
            product_id BIGINT NOT NULL,
            customer_id BIGINT NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_date ON orders(date)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_product ON orders(product_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	const query = `SELECT id, username, password_hash, role FROM users WHERE username=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, username, password_hash, role FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Upsert(ctx context.Context, username, passwordHash, role string) (*model.User, error) {
	const query = `INSERT INTO users (username, password_hash, role) VALUES ($1, $2, $3)
                   ON CONFLICT (username) DO UPDATE
                   SET password_hash = EXCLUDED.password_hash, role = EXCLUDED.role
                   RETURNING id`
	u := model.User{Username: username, PasswordHash: passwordHash, Role: role}
	if err := r.storage.pool.QueryRow(ctx, query, username, passwordHash, role).Scan(&u.ID); err != nil {
		return nil, err
	}
	return &u, nil
}

// --- OrderRepository implementation ---

// Listing order is ascending id so pages stay stable between requests.
func (r *orderRepository) List(ctx context.Context, limit, offset int) ([]model.Order, error) {
	const query = `SELECT id, quantity, employee_id, total_amount, date, product_id, customer_id
                   FROM orders ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.storage.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.Quantity, &o.EmployeeID, &o.TotalAmount, &o.Date, &o.ProductID, &o.CustomerID); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM orders`
	var total int64
	if err := r.storage.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *orderRepository) EmployeePerformance(ctx context.Context) ([]model.EmployeePerformance, error) {
	const query = `SELECT employee_id, SUM(quantity) AS total_quantity
                   FROM orders GROUP BY employee_id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.EmployeePerformance
	for rows.Next() {
		var row model.EmployeePerformance
		if err := rows.Scan(&row.EmployeeID, &row.TotalQuantity); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) TopSellingProducts(ctx context.Context) ([]model.ProductSales, error) {
	const query = `SELECT product_id, SUM(quantity) AS total_quantity
                   FROM orders GROUP BY product_id ORDER BY total_quantity DESC`
	return r.queryProductSales(ctx, query)
}

func (r *orderRepository) CustomerLifetimeValue(ctx context.Context, threshold float64) ([]model.CustomerValue, error) {
	const query = `SELECT customer_id, SUM(total_amount) AS total_value
                   FROM orders GROUP BY customer_id HAVING SUM(total_amount) >= $1`
	rows, err := r.storage.pool.Query(ctx, query, threshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.CustomerValue
	for rows.Next() {
		var row model.CustomerValue
		if err := rows.Scan(&row.CustomerID, &row.TotalValue); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) ProductionEfficiency(ctx context.Context, date time.Time) ([]model.ProductSales, error) {
	const query = `SELECT product_id, SUM(quantity) AS total_quantity
                   FROM orders WHERE date=$1 GROUP BY product_id`
	return r.queryProductSales(ctx, query, date)
}

func (r *orderRepository) queryProductSales(ctx context.Context, query string, args ...any) ([]model.ProductSales, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ProductSales
	for rows.Next() {
		var row model.ProductSales
		if err := rows.Scan(&row.ProductID, &row.TotalQuantity); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- ProductRepository implementation ---

func (r *productRepository) List(ctx context.Context, limit, offset int) ([]model.Product, error) {
	const query = `SELECT id, name FROM products ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.storage.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM products`
	var total int64
	if err := r.storage.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
