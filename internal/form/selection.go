package form

import (
	"github.com/muurk/laptop-advisor/internal/purpose"
	"github.com/muurk/laptop-advisor/internal/service"
)

// Selection is the user's current choice. The empty string means "not selected"
// for every field. No transition is ever rejected.
type Selection struct {
	Manufacturer string
	ModelName    string
	Purpose      string
}

// SetManufacturer selects m and clears the model in the same update, even when
// m is empty or equal to the current manufacturer.
func (s *Selection) SetManufacturer(m string) {
	s.Manufacturer = m
	s.ModelName = ""
}

// SetModelName selects n. Membership in the manufacturer's model list is the
// caller's concern.
func (s *Selection) SetModelName(n string) {
	s.ModelName = n
}

// SetPurpose selects p
func (s *Selection) SetPurpose(p string) {
	s.Purpose = p
}

// Category returns the backend category for the selected purpose ("" if unmapped)
func (s Selection) Category() string {
	return purpose.MapPurposeToCategory(s.Purpose)
}

// Request builds the recommend request body for this selection
func (s Selection) Request() *service.RecommendRequest {
	return &service.RecommendRequest{
		Manufacturer: s.Manufacturer,
		ModelName:    s.ModelName,
		Category:     s.Category(),
	}
}
