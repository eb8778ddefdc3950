package form

import (
	"context"
)

// Service is the remote side of the form
type Service interface {
	OptionsLoader
	Recommender
}

// Form ties the option store, the current selection and the recommendation
// results together over one service.
type Form struct {
	Options   *OptionStore
	Selection Selection
	Results   *Orchestrator

	svc Service
}

// New creates a form with empty options, an empty selection and no results
func New(svc Service) *Form {
	return &Form{
		Options: NewOptionStore(),
		Results: NewOrchestrator(svc),
		svc:     svc,
	}
}

// LoadOptions fetches the option set. A failure leaves the form usable with
// whatever options it had before (initially none).
func (f *Form) LoadOptions(ctx context.Context) error {
	return f.Options.Load(ctx, f.svc)
}

// SetManufacturer selects a manufacturer and clears the model
func (f *Form) SetManufacturer(m string) {
	f.Selection.SetManufacturer(m)
}

// SetModelName selects a model
func (f *Form) SetModelName(n string) {
	f.Selection.SetModelName(n)
}

// SetPurpose selects a purpose
func (f *Form) SetPurpose(p string) {
	f.Selection.SetPurpose(p)
}

// ModelChoices returns the models offered for the selected manufacturer
func (f *Form) ModelChoices() []string {
	return f.Options.Models(f.Selection.Manufacturer)
}

// Submit sends the current selection and integrates the result
func (f *Form) Submit(ctx context.Context) error {
	return f.Results.Submit(ctx, f.Selection)
}
