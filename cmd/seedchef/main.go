// Command seedchef provisions the default chef account. Chef records are
// never created over HTTP; this is the only write path for them.
package main

import (
	"context"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/breakbuddy/internal/auth"
	"github.com/spec-kit/breakbuddy/internal/config"
	"github.com/spec-kit/breakbuddy/internal/domain"
	"github.com/spec-kit/breakbuddy/internal/observability"
	"github.com/spec-kit/breakbuddy/internal/persistence"
	"github.com/spec-kit/breakbuddy/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	chefID := getEnv("SEED_CHEF_ID", "chef001")
	name := getEnv("SEED_CHEF_NAME", "Master Chef")
	password := getEnv("SEED_CHEF_PASSWORD", "chef123")

	chefs := repository.NewChefRepository(pg.PoolHandle())

	if _, err := chefs.GetByChefID(ctx, chefID); err == nil {
		logger.Info("default chef already exists", zap.String("chef_id", chefID))
		return
	} else if err != pgx.ErrNoRows {
		logger.Fatal("failed to look up chef", zap.Error(err))
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		logger.Fatal("failed to hash password", zap.Error(err))
	}

	chef := &domain.Chef{
		Name:         name,
		ChefID:       chefID,
		PasswordHash: hash,
		Role:         domain.RoleChef,
	}
	if err := chefs.Create(ctx, chef); err != nil {
		logger.Fatal("failed to create chef", zap.Error(err))
	}

	logger.Info("default chef created", zap.String("chef_id", chefID))
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
