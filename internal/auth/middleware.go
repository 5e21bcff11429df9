package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/breakbuddy/internal/domain"
	"github.com/spec-kit/breakbuddy/internal/repository"
	apperrors "github.com/spec-kit/breakbuddy/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller. Exactly one of Employee or
// Chef is set, matching Role.
type Principal struct {
	Role     domain.Role
	Employee *domain.Employee
	Chef     *domain.Chef
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens    *TokenManager
	employees repository.EmployeeRepository
	chefs     repository.ChefRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, employees repository.EmployeeRepository, chefs repository.ChefRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, employees: employees, chefs: chefs}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	principal := &Principal{Role: claims.Role}

	switch claims.Role {
	case domain.RoleEmployee:
		employee, err := m.employees.GetByID(c.Context(), claims.SubjectID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return apperrors.NewUnauthorized("employee not found")
			}
			return apperrors.MapError(err)
		}
		principal.Employee = employee
	case domain.RoleChef:
		chef, err := m.chefs.GetByID(c.Context(), claims.SubjectID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return apperrors.NewUnauthorized("chef not found")
			}
			return apperrors.MapError(err)
		}
		principal.Chef = chef
	default:
		return apperrors.NewUnauthorized("unknown subject")
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
