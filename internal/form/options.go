package form

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/muurk/laptop-advisor/internal/logging"
	"github.com/muurk/laptop-advisor/internal/service"
)

// OptionsLoader fetches the selectable option set
type OptionsLoader interface {
	FetchOptions(ctx context.Context) (*service.OptionSet, error)
}

// OptionStore holds the values the form offers. It starts empty and is
// replaced wholesale by a successful load; it is never merged.
type OptionStore struct {
	set    *service.OptionSet
	loaded bool
}

// NewOptionStore creates an empty option store
func NewOptionStore() *OptionStore {
	return &OptionStore{set: service.NewOptionSet()}
}

// Load fetches the option set once and integrates it with Apply.
func (s *OptionStore) Load(ctx context.Context, loader OptionsLoader) error {
	set, err := loader.FetchOptions(ctx)
	return s.Apply(set, err)
}

// Apply integrates the outcome of a fetch. On success the store's contents
// are replaced. On failure the error is logged and returned, and the previous
// (possibly empty) option set stays in place so the form remains usable.
func (s *OptionStore) Apply(set *service.OptionSet, err error) error {
	if err != nil {
		logging.Error("Failed to load form options", zap.Error(err))
		return fmt.Errorf("failed to load options: %w", err)
	}
	if set == nil {
		set = service.NewOptionSet()
	}

	s.Replace(set)
	logging.Info("Form options loaded",
		zap.Int("manufacturers", len(set.Manufacturers)),
		zap.Int("categories", len(set.Categories)),
	)
	return nil
}

// Replace swaps in a copy of set. Readers never see a partial update.
func (s *OptionStore) Replace(set *service.OptionSet) {
	s.set = set.Clone()
	s.loaded = true
}

// Loaded reports whether a load has ever succeeded
func (s *OptionStore) Loaded() bool {
	return s.loaded
}

// Manufacturers returns the selectable manufacturers in service order
func (s *OptionStore) Manufacturers() []string {
	return append([]string{}, s.set.Manufacturers...)
}

// Models returns the models offered for manufacturer.
// An empty or unknown manufacturer offers no models.
func (s *OptionStore) Models(manufacturer string) []string {
	if manufacturer == "" {
		return []string{}
	}
	return append([]string{}, s.set.ModelNames[manufacturer]...)
}

// Categories returns the categories sent by the service. The form does not
// use them (categories come from the purpose table) but they are kept.
func (s *OptionStore) Categories() []string {
	return append([]string{}, s.set.Categories...)
}

// Snapshot returns a copy of the whole option set
func (s *OptionStore) Snapshot() *service.OptionSet {
	return s.set.Clone()
}
