package dto

// RegisterRequest payload for employee registration.
type RegisterRequest struct {
	FullName        string `json:"fullName" validate:"required"`
	EmployeeID      string `json:"employeeId" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,min=6"`
}

// LoginRequest payload for employee login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// ChefLoginRequest payload for chef login.
type ChefLoginRequest struct {
	ChefID   string `json:"chefId" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// UserResponse is the public projection of an employee record. The password
// hash is never exposed.
type UserResponse struct {
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	EmployeeID string `json:"employeeId"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

// ChefResponse is the public projection of a chef record.
type ChefResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	ChefID string `json:"chefId"`
	Role   string `json:"role"`
}
