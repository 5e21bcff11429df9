package domain

import "time"

// Profile holds free-form, mutable employee profile fields. Neither field is
// validated or required.
type Profile struct {
	Phone      string
	Department string
}

// Employee is the domain model for self-registered end-users.
type Employee struct {
	ID           string
	FullName     string
	EmployeeID   string
	Email        string
	PasswordHash string
	Role         Role
	Profile      Profile
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
