package service

// OptionSet is the body returned by GET /api/options/.
// It holds every value the form can offer.
type OptionSet struct {
	Manufacturers []string            `json:"manufacturers"`
	ModelNames    map[string][]string `json:"model_names"` // Keyed by manufacturer
	Categories    []string            `json:"categories"`  // Not sent by every backend
}

// NewOptionSet returns an empty option set with non-nil collections.
func NewOptionSet() *OptionSet {
	return &OptionSet{
		Manufacturers: []string{},
		ModelNames:    map[string][]string{},
		Categories:    []string{},
	}
}

// Clone returns a deep copy of the option set.
// Nil collections in the source come back as empty ones.
func (o *OptionSet) Clone() *OptionSet {
	out := NewOptionSet()
	if o == nil {
		return out
	}

	out.Manufacturers = append(out.Manufacturers, o.Manufacturers...)
	out.Categories = append(out.Categories, o.Categories...)
	for manufacturer, models := range o.ModelNames {
		out.ModelNames[manufacturer] = append([]string{}, models...)
	}
	return out
}

// RecommendRequest is the body sent to POST /api/recommend/.
// Any field may be empty. The JSON names are part of the wire contract.
type RecommendRequest struct {
	Manufacturer string `json:"manufacturer"`
	ModelName    string `json:"model_name"`
	Category     string `json:"category"`
}

// Recommendation is a single recommended laptop configuration.
type Recommendation struct {
	Name       string  `json:"name"`
	ScreenSize string  `json:"screen_size"` // e.g. "15.6 inches"
	Screen     string  `json:"screen"`
	RAM        string  `json:"ram"`
	Storage    string  `json:"storage"`
	GPU        string  `json:"gpu"`
	PriceTZS   float64 `json:"price_tzs"` // Tanzanian shillings
}

// recommendResponse is the body returned by POST /api/recommend/.
// Recommendations is a pointer so a missing field can be told apart from an empty list.
type recommendResponse struct {
	Recommendations *[]Recommendation `json:"recommendations"`
}

// errorResponse is the body the backend sends with a failure status.
type errorResponse struct {
	Error string `json:"error"`
}
