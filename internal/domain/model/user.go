package model

// RoleAdmin is the role label granting access to aggregate reports.
const RoleAdmin = "Admin"

// User represents an account able to authenticate against the API.
// Accounts are provisioned out of band; the HTTP surface only reads them.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string
}

// IsAdmin reports whether the user's role grants report access.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
