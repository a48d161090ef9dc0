package entity

import "strings"

// Office represents one of the firm's physical offices. Latitude and
// longitude are required so the office can be placed on the site map.
type Office struct {
	ID       int64
	Name     string
	Address  string
	Lat      float64
	Lon      float64
	Manager  string
	ImageURL string
}

// Validate checks the required office fields before any store write.
func (o *Office) Validate() error {
	if strings.TrimSpace(o.Name) == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if strings.TrimSpace(o.Address) == "" {
		return &ValidationError{Field: "address", Message: "is required"}
	}
	if o.Lat < -90 || o.Lat > 90 {
		return &ValidationError{Field: "lat", Message: "must be between -90 and 90"}
	}
	if o.Lon < -180 || o.Lon > 180 {
		return &ValidationError{Field: "lon", Message: "must be between -180 and 180"}
	}
	return nil
}
