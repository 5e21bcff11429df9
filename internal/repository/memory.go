package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/breakbuddy/internal/domain"
)

// MemoryEmployeeRepository is an in-memory EmployeeRepository used for test
// isolation. It mirrors the Postgres implementation's semantics: not-found
// is pgx.ErrNoRows and uniqueness violations are ErrDuplicate, enforced
// atomically under the lock.
type MemoryEmployeeRepository struct {
	mu        sync.Mutex
	employees map[string]*domain.Employee
}

// NewMemoryEmployeeRepository builds an empty store.
func NewMemoryEmployeeRepository() *MemoryEmployeeRepository {
	return &MemoryEmployeeRepository{employees: make(map[string]*domain.Employee)}
}

func (r *MemoryEmployeeRepository) Create(_ context.Context, employee *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.employees {
		if existing.Email == employee.Email || existing.EmployeeID == employee.EmployeeID {
			return ErrDuplicate
		}
	}

	employee.ID = uuid.NewString()
	now := time.Now()
	employee.CreatedAt = now
	employee.UpdatedAt = now

	stored := *employee
	r.employees[employee.ID] = &stored
	return nil
}

func (r *MemoryEmployeeRepository) GetByID(_ context.Context, id string) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if employee, ok := r.employees[id]; ok {
		copied := *employee
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *MemoryEmployeeRepository) GetByEmail(_ context.Context, email string) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, employee := range r.employees {
		if employee.Email == email {
			copied := *employee
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *MemoryEmployeeRepository) FindByEmailOrEmployeeID(_ context.Context, email, employeeID string) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, employee := range r.employees {
		if employee.Email == email || employee.EmployeeID == employeeID {
			copied := *employee
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

// Len reports the number of stored records.
func (r *MemoryEmployeeRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.employees)
}

// MemoryChefRepository is the in-memory ChefRepository counterpart.
type MemoryChefRepository struct {
	mu    sync.Mutex
	chefs map[string]*domain.Chef
}

// NewMemoryChefRepository builds an empty store.
func NewMemoryChefRepository() *MemoryChefRepository {
	return &MemoryChefRepository{chefs: make(map[string]*domain.Chef)}
}

func (r *MemoryChefRepository) Create(_ context.Context, chef *domain.Chef) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.chefs {
		if existing.ChefID == chef.ChefID {
			return ErrDuplicate
		}
	}

	chef.ID = uuid.NewString()
	now := time.Now()
	chef.CreatedAt = now
	chef.UpdatedAt = now

	stored := *chef
	r.chefs[chef.ID] = &stored
	return nil
}

func (r *MemoryChefRepository) GetByID(_ context.Context, id string) (*domain.Chef, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if chef, ok := r.chefs[id]; ok {
		copied := *chef
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *MemoryChefRepository) GetByChefID(_ context.Context, chefID string) (*domain.Chef, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, chef := range r.chefs {
		if chef.ChefID == chefID {
			copied := *chef
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}
