package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validHousing() Housing {
	return Housing{
		Address: "Storgatan 15A",
		City:    "Borlänge",
		Price:   "1 950 000 kr",
		Rooms:   3,
		Area:    75,
	}
}

func TestHousing_Validate(t *testing.T) {
	h := validHousing()
	assert.NoError(t, h.Validate())
}

func TestHousing_Validate_MissingRequired(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Housing)
		field  string
	}{
		{"empty address", func(h *Housing) { h.Address = "" }, "address"},
		{"blank address", func(h *Housing) { h.Address = "   " }, "address"},
		{"empty city", func(h *Housing) { h.City = "" }, "city"},
		{"empty price", func(h *Housing) { h.Price = "" }, "price"},
		{"zero rooms", func(h *Housing) { h.Rooms = 0 }, "rooms"},
		{"negative rooms", func(h *Housing) { h.Rooms = -1 }, "rooms"},
		{"zero area", func(h *Housing) { h.Area = 0 }, "area"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := validHousing()
			tt.mutate(&h)

			err := h.Validate()
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestHousing_Validate_OptionalDescription(t *testing.T) {
	h := validHousing()
	h.Description = ""
	assert.NoError(t, h.Validate())
}
