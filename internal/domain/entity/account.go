package entity

import "strings"

// Account roles. Mutating operations on listings, brokers and articles are
// gated on RoleAdmin by the web layer.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Account represents a login account.
//
// Password is an opaque credential: this layer stores and returns it verbatim
// and never compares it. Hashing and salting are the auth boundary's
// responsibility and must happen before the value reaches Create or Update.
type Account struct {
	ID       int64
	Username string
	Password string
	Role     string
}

// Validate checks the required account fields before any store write.
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Username) == "" {
		return &ValidationError{Field: "username", Message: "is required"}
	}
	if a.Password == "" {
		return &ValidationError{Field: "password", Message: "is required"}
	}
	if a.Role != RoleAdmin && a.Role != RoleUser {
		return &ValidationError{Field: "role", Message: "must be admin or user"}
	}
	return nil
}
