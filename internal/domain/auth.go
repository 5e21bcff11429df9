package domain

// Role tags an authenticated subject. It is the only authorization-relevant
// attribute carried by a token.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleChef     Role = "chef"
)
