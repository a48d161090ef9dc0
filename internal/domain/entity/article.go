package entity

import (
	"strings"
	"time"
)

// Article represents a news article published on the site.
// BrokerID is nil for articles without a credited author.
type Article struct {
	ID          int64
	Title       string
	Body        string
	PublishedAt time.Time
	BrokerID    *int64
}

// Validate checks the required article fields before any store write.
func (a *Article) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if strings.TrimSpace(a.Body) == "" {
		return &ValidationError{Field: "body", Message: "is required"}
	}
	return nil
}

// Normalize fills defaulted fields before insert. PublishedAt defaults to the
// creation time when the caller left it unset.
func (a *Article) Normalize(now time.Time) {
	if a.PublishedAt.IsZero() {
		a.PublishedAt = now
	}
}
