package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/breakbuddy/internal/domain"
)

// ChefRepository defines persistence access for chefs. Chef records are
// written only by administrative seeding, never by HTTP handlers.
type ChefRepository interface {
	Create(ctx context.Context, chef *domain.Chef) error
	GetByID(ctx context.Context, id string) (*domain.Chef, error)
	GetByChefID(ctx context.Context, chefID string) (*domain.Chef, error)
}

type chefRepository struct {
	pool *pgxpool.Pool
}

// NewChefRepository returns a Postgres-backed implementation.
func NewChefRepository(pool *pgxpool.Pool) ChefRepository {
	return &chefRepository{pool: pool}
}

func (r *chefRepository) Create(ctx context.Context, chef *domain.Chef) error {
	const query = `
        INSERT INTO chefs (id, name, chef_id, password_hash, role)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at, updated_at`

	chef.ID = uuid.NewString()
	err := r.pool.QueryRow(ctx, query,
		chef.ID,
		chef.Name,
		chef.ChefID,
		chef.PasswordHash,
		chef.Role,
	).Scan(&chef.CreatedAt, &chef.UpdatedAt)
	if err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

func (r *chefRepository) GetByID(ctx context.Context, id string) (*domain.Chef, error) {
	const query = `
        SELECT id, name, chef_id, password_hash, role, created_at, updated_at
        FROM chefs WHERE id=$1`

	return r.scanOne(ctx, query, id)
}

func (r *chefRepository) GetByChefID(ctx context.Context, chefID string) (*domain.Chef, error) {
	const query = `
        SELECT id, name, chef_id, password_hash, role, created_at, updated_at
        FROM chefs WHERE chef_id=$1`

	return r.scanOne(ctx, query, chefID)
}

func (r *chefRepository) scanOne(ctx context.Context, query string, args ...any) (*domain.Chef, error) {
	var chef domain.Chef
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&chef.ID,
		&chef.Name,
		&chef.ChefID,
		&chef.PasswordHash,
		&chef.Role,
		&chef.CreatedAt,
		&chef.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &chef, nil
}
