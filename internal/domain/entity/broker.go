// Package entity defines the core domain entities and validation logic for the
// application. It contains the persisted record types of the site (Broker,
// Housing, Office, Article, Comment, Account) along with their validation
// rules and domain-specific errors.
package entity

import "strings"

// Broker represents a real-estate broker employed by the firm.
// A broker may be credited as the author of news articles.
type Broker struct {
	ID    int64
	Name  string
	Email string
	Phone string
	Title string
	Bio   string
}

// Validate checks the required broker fields before any store write.
func (b *Broker) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if strings.TrimSpace(b.Email) == "" {
		return &ValidationError{Field: "email", Message: "is required"}
	}
	if !strings.Contains(b.Email, "@") {
		return &ValidationError{Field: "email", Message: "must be an email address"}
	}
	return nil
}
