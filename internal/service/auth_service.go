package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/breakbuddy/internal/auth"
	"github.com/spec-kit/breakbuddy/internal/config"
	"github.com/spec-kit/breakbuddy/internal/domain"
	"github.com/spec-kit/breakbuddy/internal/repository"
	apperrors "github.com/spec-kit/breakbuddy/pkg/util"
)

// AuthService coordinates registration and login flows for both identity
// domains. Each flow is a stateless request/response transaction; the only
// persistent state mutated is the credential store, exactly once, on
// successful registration.
type AuthService struct {
	employees repository.EmployeeRepository
	chefs     repository.ChefRepository
	tokenMgr  *auth.TokenManager
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	EmployeeRepo repository.EmployeeRepository
	ChefRepo     repository.ChefRepository
}

// RegisterEmployeeInput carries already shape-validated registration fields.
type RegisterEmployeeInput struct {
	FullName        string
	EmployeeID      string
	Email           string
	Password        string
	ConfirmPassword string
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		employees: deps.EmployeeRepo,
		chefs:     deps.ChefRepo,
		tokenMgr:  auth.NewTokenManager(cfg.Auth.JWTSecret),
	}
}

// RegisterEmployee creates a new employee account and issues its first token.
func (s *AuthService) RegisterEmployee(ctx context.Context, in RegisterEmployeeInput) (*domain.Employee, string, time.Time, error) {
	if in.Password != in.ConfirmPassword {
		return nil, "", time.Time{}, apperrors.NewCredentialMismatch()
	}

	if _, err := s.employees.FindByEmailOrEmployeeID(ctx, in.Email, in.EmployeeID); err == nil {
		return nil, "", time.Time{}, apperrors.NewDuplicateIdentity("User with this email or employee ID already exists")
	} else if err != pgx.ErrNoRows {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	employee := &domain.Employee{
		FullName:     in.FullName,
		EmployeeID:   in.EmployeeID,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.RoleEmployee,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		// The pre-check is not atomic with the insert; a concurrent
		// registration that wins the race shows up as a constraint hit.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", time.Time{}, apperrors.NewDuplicateIdentity("User with this email or employee ID already exists")
		}
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(auth.Claims{
		SubjectID:  employee.ID,
		Role:       employee.Role,
		Email:      employee.Email,
		EmployeeID: employee.EmployeeID,
	})
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return employee, token, exp, nil
}

// LoginEmployee authenticates an employee by email. Unknown email and wrong
// password are deliberately indistinguishable to the caller.
func (s *AuthService) LoginEmployee(ctx context.Context, email, password string) (*domain.Employee, string, time.Time, error) {
	employee, err := s.employees.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewInvalidCredential("Invalid email or password")
		}
		return nil, "", time.Time{}, err
	}
	if !auth.ComparePassword(employee.PasswordHash, password) {
		return nil, "", time.Time{}, apperrors.NewInvalidCredential("Invalid email or password")
	}

	token, exp, err := s.tokenMgr.GenerateToken(auth.Claims{
		SubjectID:  employee.ID,
		Role:       employee.Role,
		Email:      employee.Email,
		EmployeeID: employee.EmployeeID,
	})
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return employee, token, exp, nil
}

// LoginChef authenticates a chef by chef ID with the same generic rejection
// as employee login.
func (s *AuthService) LoginChef(ctx context.Context, chefID, password string) (*domain.Chef, string, time.Time, error) {
	chef, err := s.chefs.GetByChefID(ctx, chefID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewInvalidCredential("Invalid chef ID or password")
		}
		return nil, "", time.Time{}, err
	}
	if !auth.ComparePassword(chef.PasswordHash, password) {
		return nil, "", time.Time{}, apperrors.NewInvalidCredential("Invalid chef ID or password")
	}

	token, exp, err := s.tokenMgr.GenerateToken(auth.Claims{
		SubjectID: chef.ID,
		Role:      chef.Role,
		ChefID:    chef.ChefID,
	})
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return chef, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
