package entity

import "strings"

// Housing represents a single listing on the site.
// Price is kept as a display string because listed prices carry currency
// formatting ("1 950 000 kr") that must round-trip unchanged.
type Housing struct {
	ID          int64
	Address     string
	City        string
	Price       string
	Rooms       int
	Area        int
	Description string
}

// Validate checks the required housing fields before any store write.
// Rooms and Area are counts and must be at least 1.
func (h *Housing) Validate() error {
	if strings.TrimSpace(h.Address) == "" {
		return &ValidationError{Field: "address", Message: "is required"}
	}
	if strings.TrimSpace(h.City) == "" {
		return &ValidationError{Field: "city", Message: "is required"}
	}
	if strings.TrimSpace(h.Price) == "" {
		return &ValidationError{Field: "price", Message: "is required"}
	}
	if h.Rooms < 1 {
		return &ValidationError{Field: "rooms", Message: "must be at least 1"}
	}
	if h.Area < 1 {
		return &ValidationError{Field: "area", Message: "must be at least 1"}
	}
	return nil
}
