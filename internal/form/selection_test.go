package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection_SetManufacturerClearsModel(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
	}{
		{"different manufacturer", "Dell", "HP"},
		{"same manufacturer", "Dell", "Dell"},
		{"cleared manufacturer", "Dell", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Selection{Manufacturer: tt.from, ModelName: "XPS13", Purpose: "Gaming"}
			s.SetManufacturer(tt.to)

			assert.Equal(t, tt.to, s.Manufacturer)
			assert.Equal(t, "", s.ModelName)
			assert.Equal(t, "Gaming", s.Purpose)
		})
	}
}

func TestSelection_SettersHaveNoSideEffects(t *testing.T) {
	s := Selection{Manufacturer: "Dell"}

	s.SetModelName("XPS13")
	s.SetPurpose("Design")

	assert.Equal(t, Selection{Manufacturer: "Dell", ModelName: "XPS13", Purpose: "Design"}, s)
}

func TestSelection_Request(t *testing.T) {
	s := Selection{Manufacturer: "HP", ModelName: "Spectre", Purpose: "Business"}

	req := s.Request()
	assert.Equal(t, "HP", req.Manufacturer)
	assert.Equal(t, "Spectre", req.ModelName)
	assert.Equal(t, "Ultrabook", req.Category)
}

func TestSelection_CategoryForUnmappedPurpose(t *testing.T) {
	assert.Equal(t, "", Selection{}.Category())
	assert.Equal(t, "", Selection{Purpose: "business"}.Category())
}
