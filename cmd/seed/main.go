package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/stadsloket/registration-api/config"
	regapp "github.com/stadsloket/registration-api/internal/application"
	"github.com/stadsloket/registration-api/internal/domain/entity"
	"github.com/stadsloket/registration-api/internal/domain/repository"
	pginfra "github.com/stadsloket/registration-api/internal/infrastructure/postgres"
	"github.com/stadsloket/registration-api/pkg/helpers"
)

// Seeds the internal admin account. This is the only account-creation
// path; there is no public signup or login endpoint.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	username := envOr("SEED_ADMIN_USERNAME", "beheerder")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("SEED_ADMIN_PASSWORD is required")
	}

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	accounts := regapp.NewAccountService(pginfra.NewUserRepository(pool), logger)

	u, err := accounts.CreateUser(ctx, &entity.UserInsert{Username: username, Password: password})
	if err != nil {
		var conflict *repository.ConflictError
		if errors.As(err, &conflict) {
			existing, lookupErr := accounts.GetUserByUsername(ctx, username)
			if lookupErr != nil || existing == nil {
				log.Fatalf("user %s exists but lookup failed: %v", username, lookupErr)
			}
			fmt.Printf("user already seeded: id=%s username=%s\n", existing.ID, existing.Username)
			return
		}
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s username=%s\n", u.ID, u.Username)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
