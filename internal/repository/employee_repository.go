package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/breakbuddy/internal/domain"
)

// ErrDuplicate is returned when an insert violates a uniqueness constraint.
// The store enforces insert-if-absent atomically, so a pre-check that passed
// can still lose the race and surface this.
var ErrDuplicate = errors.New("duplicate identifier")

// EmployeeRepository defines persistence access for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	FindByEmailOrEmployeeID(ctx context.Context, email, employeeID string) (*domain.Employee, error)
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository returns a Postgres-backed implementation.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *employeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	const query = `
        INSERT INTO employees (id, full_name, employee_id, email, password_hash, role, phone, department)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING created_at, updated_at`

	employee.ID = uuid.NewString()
	err := r.pool.QueryRow(ctx, query,
		employee.ID,
		employee.FullName,
		employee.EmployeeID,
		employee.Email,
		employee.PasswordHash,
		employee.Role,
		employee.Profile.Phone,
		employee.Profile.Department,
	).Scan(&employee.CreatedAt, &employee.UpdatedAt)
	if err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	const query = `
        SELECT id, full_name, employee_id, email, password_hash, role, phone, department, created_at, updated_at
        FROM employees WHERE id=$1`

	return r.scanOne(ctx, query, id)
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	const query = `
        SELECT id, full_name, employee_id, email, password_hash, role, phone, department, created_at, updated_at
        FROM employees WHERE email=$1`

	return r.scanOne(ctx, query, email)
}

func (r *employeeRepository) FindByEmailOrEmployeeID(ctx context.Context, email, employeeID string) (*domain.Employee, error) {
	const query = `
        SELECT id, full_name, employee_id, email, password_hash, role, phone, department, created_at, updated_at
        FROM employees WHERE email=$1 OR employee_id=$2 LIMIT 1`

	return r.scanOne(ctx, query, email, employeeID)
}

func (r *employeeRepository) scanOne(ctx context.Context, query string, args ...any) (*domain.Employee, error) {
	var employee domain.Employee
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&employee.ID,
		&employee.FullName,
		&employee.EmployeeID,
		&employee.Email,
		&employee.PasswordHash,
		&employee.Role,
		&employee.Profile.Phone,
		&employee.Profile.Department,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &employee, nil
}

// mapUniqueViolation converts a Postgres 23505 into ErrDuplicate so callers
// need not depend on driver error codes.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	return err
}
