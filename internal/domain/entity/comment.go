package entity

import (
	"strings"
	"time"
)

// Comment represents a reader comment attached to an article. Comments live
// and die with their article: the schema cascades the delete.
type Comment struct {
	ID         int64
	ArticleID  int64
	AuthorName string
	Body       string
	CreatedAt  time.Time
}

// Validate checks the required comment fields before any store write.
func (c *Comment) Validate() error {
	if c.ArticleID <= 0 {
		return &ValidationError{Field: "article_id", Message: "is required"}
	}
	if strings.TrimSpace(c.AuthorName) == "" {
		return &ValidationError{Field: "author_name", Message: "is required"}
	}
	if strings.TrimSpace(c.Body) == "" {
		return &ValidationError{Field: "body", Message: "is required"}
	}
	return nil
}

// Normalize fills defaulted fields before insert.
func (c *Comment) Normalize(now time.Time) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
}
