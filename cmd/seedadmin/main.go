// seedadmin provisions or refreshes an API account. Accounts are created out
// of band; the HTTP surface only authenticates against existing rows.
//
// Usage: seedadmin -d postgres://... -u boss -p secret -r Admin
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/polkiloo/factorytrack/internal/domain/model"
	"github.com/polkiloo/factorytrack/internal/logger"
	pkgAuth "github.com/polkiloo/factorytrack/internal/pkg/auth"
	"github.com/polkiloo/factorytrack/internal/storage/postgres"
)

func main() {
	var (
		dsn      = flag.String("d", os.Getenv("DATABASE_URI"), "PostgreSQL DSN")
		username = flag.String("u", "", "username to provision")
		password = flag.String("p", "", "password to set")
		role     = flag.String("r", model.RoleAdmin, "role label")
	)
	flag.Parse()

	if err := run(*dsn, *username, *password, *role); err != nil {
		fmt.Fprintf(os.Stderr, "seedadmin: %v\n", err)
		os.Exit(1)
	}
}

func run(dsn, username, password, role string) error {
	if dsn == "" {
		return fmt.Errorf("database URI must be provided")
	}
	if username == "" || password == "" {
		return fmt.Errorf("username and password must be provided")
	}

	hash, err := pkgAuth.NewBcryptHasher(0).Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	ctx := context.Background()
	storage, err := postgres.New(ctx, dsn, logger.New())
	if err != nil {
		return err
	}
	defer storage.Close()

	user, err := storage.Users().Upsert(ctx, username, hash, role)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}

	fmt.Printf("user %q (id %d) provisioned with role %q\n", user.Username, user.ID, user.Role)
	return nil
}
