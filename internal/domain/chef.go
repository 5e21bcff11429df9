package domain

import "time"

// Chef is the operator identity. Chefs are never created over HTTP; they are
// provisioned by the seedchef command and only read during login.
type Chef struct {
	ID           string
	Name         string
	ChefID       string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
