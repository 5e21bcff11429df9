package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/breakbuddy/internal/auth"
	"github.com/spec-kit/breakbuddy/internal/config"
	"github.com/spec-kit/breakbuddy/internal/domain"
	"github.com/spec-kit/breakbuddy/internal/repository"
	apperrors "github.com/spec-kit/breakbuddy/pkg/util"
)

type serviceFixture struct {
	svc       *AuthService
	employees *repository.MemoryEmployeeRepository
	chefs     *repository.MemoryChefRepository
}

func newServiceFixture() *serviceFixture {
	employees := repository.NewMemoryEmployeeRepository()
	chefs := repository.NewMemoryChefRepository()

	cfg := config.Config{Auth: config.AuthConfig{JWTSecret: "test-secret"}}
	svc := NewAuthService(cfg, AuthDependencies{
		EmployeeRepo: employees,
		ChefRepo:     chefs,
	})
	return &serviceFixture{svc: svc, employees: employees, chefs: chefs}
}

func registerAnn(t *testing.T, f *serviceFixture) *domain.Employee {
	t.Helper()
	employee, _, _, err := f.svc.RegisterEmployee(context.Background(), RegisterEmployeeInput{
		FullName:        "Ann Lee",
		EmployeeID:      "E100",
		Email:           "ann@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	require.NoError(t, err)
	return employee
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	return apperrors.ToDomainError(err).Code
}

func TestRegisterEmployee(t *testing.T) {
	f := newServiceFixture()

	employee, token, exp, err := f.svc.RegisterEmployee(context.Background(), RegisterEmployeeInput{
		FullName:        "Ann Lee",
		EmployeeID:      "E100",
		Email:           "ann@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, employee.ID)
	assert.Equal(t, domain.RoleEmployee, employee.Role)
	assert.NotEqual(t, "secret1", employee.PasswordHash)
	assert.True(t, auth.ComparePassword(employee.PasswordHash, "secret1"))
	assert.NotEmpty(t, token)
	assert.False(t, exp.IsZero())
	assert.Equal(t, 1, f.employees.Len())

	claims, err := f.svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, employee.ID, claims.SubjectID)
	assert.Equal(t, domain.RoleEmployee, claims.Role)
	assert.Equal(t, "ann@x.com", claims.Email)
	assert.Equal(t, "E100", claims.EmployeeID)
}

func TestRegisterEmployeePasswordMismatch(t *testing.T) {
	f := newServiceFixture()

	_, _, _, err := f.svc.RegisterEmployee(context.Background(), RegisterEmployeeInput{
		FullName:        "Ann Lee",
		EmployeeID:      "E100",
		Email:           "ann@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret2",
	})
	assert.Equal(t, "CREDENTIAL_MISMATCH", domainCode(t, err))
	assert.Equal(t, 0, f.employees.Len())
}

func TestRegisterEmployeeDuplicateEmail(t *testing.T) {
	f := newServiceFixture()
	registerAnn(t, f)

	_, _, _, err := f.svc.RegisterEmployee(context.Background(), RegisterEmployeeInput{
		FullName:        "Ann Clone",
		EmployeeID:      "E101",
		Email:           "ann@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	assert.Equal(t, "DUPLICATE_IDENTITY", domainCode(t, err))
	assert.Equal(t, 1, f.employees.Len())
}

func TestRegisterEmployeeDuplicateEmployeeID(t *testing.T) {
	f := newServiceFixture()
	registerAnn(t, f)

	_, _, _, err := f.svc.RegisterEmployee(context.Background(), RegisterEmployeeInput{
		FullName:        "Bob Ray",
		EmployeeID:      "E100",
		Email:           "bob@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	assert.Equal(t, "DUPLICATE_IDENTITY", domainCode(t, err))
	assert.Equal(t, 1, f.employees.Len())
}

func TestLoginEmployee(t *testing.T) {
	f := newServiceFixture()
	registered := registerAnn(t, f)

	employee, token, _, err := f.svc.LoginEmployee(context.Background(), "ann@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, employee.ID)

	claims, err := f.svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.SubjectID)
	assert.Equal(t, domain.RoleEmployee, claims.Role)
}

func TestLoginEmployeeRejectionsIndistinguishable(t *testing.T) {
	f := newServiceFixture()
	registerAnn(t, f)

	_, _, _, wrongPassErr := f.svc.LoginEmployee(context.Background(), "ann@x.com", "wrong")
	_, _, _, unknownErr := f.svc.LoginEmployee(context.Background(), "ghost@x.com", "secret1")

	// Unknown identifier and wrong secret must be externally identical.
	wrongPass := apperrors.ToDomainError(wrongPassErr)
	unknown := apperrors.ToDomainError(unknownErr)
	assert.Equal(t, "INVALID_CREDENTIAL", wrongPass.Code)
	assert.Equal(t, wrongPass.Code, unknown.Code)
	assert.Equal(t, wrongPass.Message, unknown.Message)
	assert.Equal(t, wrongPass.HTTPStatus, unknown.HTTPStatus)
}

func TestLoginChef(t *testing.T) {
	f := newServiceFixture()

	hash, err := auth.HashPassword("chef123")
	require.NoError(t, err)
	chef := &domain.Chef{Name: "Master Chef", ChefID: "chef001", PasswordHash: hash, Role: domain.RoleChef}
	require.NoError(t, f.chefs.Create(context.Background(), chef))

	got, token, _, err := f.svc.LoginChef(context.Background(), "chef001", "chef123")
	require.NoError(t, err)
	assert.Equal(t, chef.ID, got.ID)

	claims, err := f.svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, chef.ID, claims.SubjectID)
	assert.Equal(t, domain.RoleChef, claims.Role)
	assert.Equal(t, "chef001", claims.ChefID)
}

func TestLoginChefRejectionsIndistinguishable(t *testing.T) {
	f := newServiceFixture()

	hash, err := auth.HashPassword("chef123")
	require.NoError(t, err)
	require.NoError(t, f.chefs.Create(context.Background(), &domain.Chef{
		Name: "Master Chef", ChefID: "chef001", PasswordHash: hash, Role: domain.RoleChef,
	}))

	_, _, _, wrongPassErr := f.svc.LoginChef(context.Background(), "chef001", "wrong")
	_, _, _, unknownErr := f.svc.LoginChef(context.Background(), "chef999", "chef123")

	wrongPass := apperrors.ToDomainError(wrongPassErr)
	unknown := apperrors.ToDomainError(unknownErr)
	assert.Equal(t, "INVALID_CREDENTIAL", wrongPass.Code)
	assert.Equal(t, wrongPass.Code, unknown.Code)
	assert.Equal(t, wrongPass.Message, unknown.Message)
	assert.Equal(t, wrongPass.HTTPStatus, unknown.HTTPStatus)
}

func TestRegisterEmployeeStorageRace(t *testing.T) {
	f := newServiceFixture()

	// Simulate losing the check-then-insert race: the store surfaces its
	// uniqueness constraint and the core reports it as a duplicate identity.
	svc := NewAuthService(config.Config{Auth: config.AuthConfig{JWTSecret: "test-secret"}}, AuthDependencies{
		EmployeeRepo: &racingEmployeeRepo{MemoryEmployeeRepository: f.employees},
		ChefRepo:     f.chefs,
	})

	_, _, _, err := svc.RegisterEmployee(context.Background(), RegisterEmployeeInput{
		FullName:        "Ann Lee",
		EmployeeID:      "E100",
		Email:           "ann@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	assert.Equal(t, "DUPLICATE_IDENTITY", domainCode(t, err))
}

// racingEmployeeRepo passes the pre-check but fails the insert, as happens
// when a concurrent registration commits between the two.
type racingEmployeeRepo struct {
	*repository.MemoryEmployeeRepository
}

func (r *racingEmployeeRepo) Create(context.Context, *domain.Employee) error {
	return repository.ErrDuplicate
}
