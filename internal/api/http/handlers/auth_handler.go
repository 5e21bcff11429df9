package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/breakbuddy/internal/api/dto"
	"github.com/spec-kit/breakbuddy/internal/api/validation"
	"github.com/spec-kit/breakbuddy/internal/auth"
	"github.com/spec-kit/breakbuddy/internal/domain"
	"github.com/spec-kit/breakbuddy/internal/service"
)

// AuthHandler exposes registration and login endpoints for both identity
// domains.
type AuthHandler struct {
	auth     *service.AuthService
	validate *validation.Validator
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, validate *validation.Validator) *AuthHandler {
	return &AuthHandler{auth: authService, validate: validate}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	employee, token, _, err := h.auth.RegisterEmployee(c.Context(), service.RegisterEmployeeInput{
		FullName:        req.FullName,
		EmployeeID:      req.EmployeeID,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"token":   token,
		"user":    userResponse(employee),
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	employee, token, _, err := h.auth.LoginEmployee(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    userResponse(employee),
	})
}

// ChefLogin handles POST /api/auth/chef/login.
func (h *AuthHandler) ChefLogin(c *fiber.Ctx) error {
	var req dto.ChefLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	chef, token, _, err := h.auth.LoginChef(c.Context(), req.ChefID, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Chef login successful",
		"token":   token,
		"chef":    chefResponse(chef),
	})
}

// Me handles GET /api/auth/me for authenticated callers.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	switch {
	case principal.Employee != nil:
		return c.JSON(fiber.Map{"user": userResponse(principal.Employee)})
	case principal.Chef != nil:
		return c.JSON(fiber.Map{"chef": chefResponse(principal.Chef)})
	default:
		return fiber.NewError(http.StatusUnauthorized, "unknown subject")
	}
}

func userResponse(employee *domain.Employee) dto.UserResponse {
	return dto.UserResponse{
		ID:         employee.ID,
		FullName:   employee.FullName,
		EmployeeID: employee.EmployeeID,
		Email:      employee.Email,
		Role:       string(employee.Role),
	}
}

func chefResponse(chef *domain.Chef) dto.ChefResponse {
	return dto.ChefResponse{
		ID:     chef.ID,
		Name:   chef.Name,
		ChefID: chef.ChefID,
		Role:   string(chef.Role),
	}
}
