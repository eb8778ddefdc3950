package form

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/laptop-advisor/internal/service"
)

// fakeService records requests and answers with canned data
type fakeService struct {
	options    *service.OptionSet
	optionsErr error

	recs   []service.Recommendation
	recErr error

	requests   []service.RecommendRequest
	requestIDs []string
}

func (f *fakeService) FetchOptions(ctx context.Context) (*service.OptionSet, error) {
	if f.optionsErr != nil {
		return nil, f.optionsErr
	}
	return f.options, nil
}

func (f *fakeService) Recommend(ctx context.Context, req *service.RecommendRequest) ([]service.Recommendation, error) {
	f.requests = append(f.requests, *req)
	f.requestIDs = append(f.requestIDs, service.RequestIDFromContext(ctx))
	if f.recErr != nil {
		return nil, f.recErr
	}
	return f.recs, nil
}

func sampleOptions() *service.OptionSet {
	return &service.OptionSet{
		Manufacturers: []string{"Dell", "HP"},
		ModelNames: map[string][]string{
			"Dell": {"XPS13", "Inspiron"},
			"HP":   {"Spectre"},
		},
		Categories: []string{"Ultrabook", "Gaming"},
	}
}

func TestForm_DellHPExample(t *testing.T) {
	svc := &fakeService{options: sampleOptions()}
	f := New(svc)

	require.NoError(t, f.LoadOptions(context.Background()))

	f.SetManufacturer("Dell")
	assert.Equal(t, []string{"XPS13", "Inspiron"}, f.ModelChoices())

	f.SetModelName("XPS13")
	f.SetManufacturer("HP")
	assert.Equal(t, "HP", f.Selection.Manufacturer)
	assert.Equal(t, "", f.Selection.ModelName)
	assert.Equal(t, []string{"Spectre"}, f.ModelChoices())
}

func TestForm_SubmitSendsMappedCategory(t *testing.T) {
	svc := &fakeService{
		options: sampleOptions(),
		recs:    []service.Recommendation{{Name: "A", PriceTZS: 1000}},
	}
	f := New(svc)
	require.NoError(t, f.LoadOptions(context.Background()))

	f.SetManufacturer("Dell")
	f.SetModelName("XPS13")
	f.SetPurpose("light productivity")

	require.NoError(t, f.Submit(context.Background()))
	require.Len(t, svc.requests, 1)
	assert.Equal(t, service.RecommendRequest{
		Manufacturer: "Dell",
		ModelName:    "XPS13",
		Category:     "2 in 1 Convertible",
	}, svc.requests[0])
	assert.NotEmpty(t, svc.requestIDs[0])
	assert.Len(t, f.Results.Recommendations(), 1)
}

func TestForm_SubmitUnmappedPurposeSendsEmptyCategory(t *testing.T) {
	svc := &fakeService{recs: []service.Recommendation{}}
	f := New(svc)

	f.SetPurpose("Unknown")
	require.NoError(t, f.Submit(context.Background()))

	require.Len(t, svc.requests, 1)
	assert.Equal(t, "", svc.requests[0].Category)
}

func TestForm_SubmitWithEmptySelectionIsNotRejected(t *testing.T) {
	svc := &fakeService{recs: []service.Recommendation{}}
	f := New(svc)

	require.NoError(t, f.Submit(context.Background()))
	require.Len(t, svc.requests, 1)
	assert.Equal(t, service.RecommendRequest{}, svc.requests[0])
}

func TestForm_LoadOptionsFailureLeavesFormUsable(t *testing.T) {
	svc := &fakeService{optionsErr: errors.New("service down")}
	f := New(svc)

	err := f.LoadOptions(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service down")

	assert.False(t, f.Options.Loaded())
	assert.Empty(t, f.Options.Manufacturers())

	f.SetManufacturer("Dell")
	assert.Empty(t, f.ModelChoices())
}

func TestForm_FailedSubmissionKeepsPreviousResults(t *testing.T) {
	svc := &fakeService{recs: []service.Recommendation{{Name: "A"}, {Name: "B"}}}
	f := New(svc)

	require.NoError(t, f.Submit(context.Background()))
	f.Results.Toggle(1)

	svc.recErr = errors.New("boom")
	err := f.Submit(context.Background())
	require.Error(t, err)

	assert.Len(t, f.Results.Recommendations(), 2)
	assert.True(t, f.Results.Visible(1))
	assert.Equal(t, err, f.Results.LastError())
}
