package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/laptop-advisor/internal/form"
	"github.com/muurk/laptop-advisor/internal/service"
)

type fakeService struct {
	options *service.OptionSet
	recs    []service.Recommendation
	recErr  error

	requests []service.RecommendRequest
}

func (f *fakeService) FetchOptions(ctx context.Context) (*service.OptionSet, error) {
	return f.options, nil
}

func (f *fakeService) Recommend(ctx context.Context, req *service.RecommendRequest) ([]service.Recommendation, error) {
	f.requests = append(f.requests, *req)
	if f.recErr != nil {
		return nil, f.recErr
	}
	return f.recs, nil
}

func newTestModel(svc *fakeService) Model {
	m := NewModel(context.Background(), svc, nil, "http://127.0.0.1:8000")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// collect runs cmd and flattens batches into their messages
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findResult(t *testing.T, msgs []tea.Msg) recommendResultMsg {
	t.Helper()
	for _, msg := range msgs {
		if res, ok := msg.(recommendResultMsg); ok {
			return res
		}
	}
	t.Fatal("no recommendResultMsg produced")
	return recommendResultMsg{}
}

func sampleOptions() *service.OptionSet {
	return &service.OptionSet{
		Manufacturers: []string{"Dell", "HP"},
		ModelNames: map[string][]string{
			"Dell": {"XPS13"},
			"HP":   {"Spectre"},
		},
	}
}

func TestModel_InitLoadsOptions(t *testing.T) {
	svc := &fakeService{options: sampleOptions()}
	m := newTestModel(svc)
	require.True(t, m.LoadingOptions)

	var loaded optionsLoadedMsg
	for _, msg := range collect(m.Init()) {
		if l, ok := msg.(optionsLoadedMsg); ok {
			loaded = l
		}
	}

	m, _ = send(t, m, loaded)
	assert.False(t, m.LoadingOptions)
	assert.NoError(t, m.OptionsErr)
	assert.Equal(t, []string{"Dell", "HP"}, m.Form.Options.Manufacturers())
}

func TestModel_OptionsFailureShowsWarning(t *testing.T) {
	m := newTestModel(&fakeService{})

	m, _ = send(t, m, optionsLoadedMsg{err: service.NewNetworkError("boom", errors.New("dial failed"))})

	assert.False(t, m.LoadingOptions)
	require.Error(t, m.OptionsErr)
	assert.Empty(t, m.Form.Options.Manufacturers())
	assert.Contains(t, m.View(), "Could not load options")
}

func TestModel_DropdownSelectsManufacturerAndClearsModel(t *testing.T) {
	m := newTestModel(&fakeService{})
	m, _ = send(t, m, optionsLoadedMsg{options: sampleOptions()})
	m.Form.SetManufacturer("Dell")
	m.Form.SetModelName("XPS13")

	// Open the manufacturer dropdown: entries are [unselected, Dell, HP]
	m, _ = send(t, m, keyPress("enter"))
	require.Equal(t, fieldManufacturer, m.Editor.Field)
	assert.Equal(t, 1, m.Editor.Cursor)

	m, _ = send(t, m, keyPress("down"))
	m, _ = send(t, m, keyPress("enter"))

	assert.Equal(t, editorClosed, m.Editor.Field)
	assert.Equal(t, "HP", m.Form.Selection.Manufacturer)
	assert.Equal(t, "", m.Form.Selection.ModelName)
}

func TestModel_DropdownEscCancels(t *testing.T) {
	m := newTestModel(&fakeService{})
	m, _ = send(t, m, optionsLoadedMsg{options: sampleOptions()})

	m, _ = send(t, m, keyPress("enter"))
	m, _ = send(t, m, keyPress("down"))
	m, _ = send(t, m, keyPress("esc"))

	assert.Equal(t, editorClosed, m.Editor.Field)
	assert.Equal(t, "", m.Form.Selection.Manufacturer)
}

func TestModel_SubmitAndToggleDetails(t *testing.T) {
	svc := &fakeService{recs: []service.Recommendation{
		{Name: "Dell XPS 13", RAM: "16GB", PriceTZS: 4599872},
		{Name: "Dell XPS 15", RAM: "32GB", PriceTZS: 6000000},
	}}
	m := newTestModel(svc)
	m, _ = send(t, m, optionsLoadedMsg{options: sampleOptions()})
	m.Form.SetManufacturer("Dell")
	m.Form.SetModelName("XPS13")
	m.Form.SetPurpose("Gaming")

	m, cmd := send(t, m, keyPress("s"))
	assert.True(t, m.Form.Results.Pending())

	m, _ = send(t, m, findResult(t, collect(cmd)))
	assert.False(t, m.Form.Results.Pending())
	require.Len(t, svc.requests, 1)
	assert.Equal(t, "Gaming", svc.requests[0].Category)

	view := m.View()
	assert.Contains(t, view, "Dell XPS 13 - 4,599,872 Tsh")
	assert.NotContains(t, view, service.PriceDisclaimer)

	// Jump to the first result and expand it
	m, _ = send(t, m, keyPress("tab"))
	assert.Equal(t, firstResult, m.Cursor)
	m, _ = send(t, m, keyPress("enter"))

	assert.True(t, m.Form.Results.Visible(0))
	assert.False(t, m.Form.Results.Visible(1))
	assert.Contains(t, m.View(), service.PriceDisclaimer)
}

func TestModel_FailedSubmissionShowsErrorAndKeepsResults(t *testing.T) {
	svc := &fakeService{recs: []service.Recommendation{{Name: "Kept"}}}
	m := newTestModel(svc)
	m, _ = send(t, m, optionsLoadedMsg{options: sampleOptions()})

	m, cmd := send(t, m, keyPress("s"))
	m, _ = send(t, m, findResult(t, collect(cmd)))
	require.Len(t, m.Form.Results.Recommendations(), 1)

	svc.recErr = service.NewHTTPError(500, "unexpected status code: 500", "engine unavailable")
	m, cmd = send(t, m, keyPress("s"))
	m, _ = send(t, m, findResult(t, collect(cmd)))

	assert.Len(t, m.Form.Results.Recommendations(), 1)
	view := m.View()
	assert.Contains(t, view, "engine unavailable")
	assert.Contains(t, view, "Kept")
}

func TestModel_StaleResultIsIgnored(t *testing.T) {
	m := newTestModel(&fakeService{})

	first := m.Form.Results.Begin(form.Selection{Purpose: "Gaming"})
	second := m.Form.Results.Begin(form.Selection{Purpose: "Design"})

	m, _ = send(t, m, recommendResultMsg{result: form.Result{
		Seq: second.Seq, Recommendations: []service.Recommendation{{Name: "Newest"}},
	}})
	m, _ = send(t, m, recommendResultMsg{result: form.Result{
		Seq: first.Seq, Recommendations: []service.Recommendation{{Name: "Stale"}},
	}})

	require.Len(t, m.Form.Results.Recommendations(), 1)
	assert.Equal(t, "Newest", m.Form.Results.Recommendations()[0].Name)
}

func TestModel_EmptyResultsMessage(t *testing.T) {
	svc := &fakeService{recs: []service.Recommendation{}}
	m := newTestModel(svc)
	m, _ = send(t, m, optionsLoadedMsg{options: sampleOptions()})

	m, cmd := send(t, m, keyPress("s"))
	m, _ = send(t, m, findResult(t, collect(cmd)))

	assert.Contains(t, m.View(), "No recommendations found")
}

func TestModel_CursorWraps(t *testing.T) {
	m := newTestModel(&fakeService{})

	m, _ = send(t, m, keyPress("up"))
	assert.Equal(t, fieldSubmit, m.Cursor)

	m, _ = send(t, m, keyPress("down"))
	assert.Equal(t, fieldManufacturer, m.Cursor)
}

func TestModel_QuitKeys(t *testing.T) {
	m := newTestModel(&fakeService{})

	_, cmd := send(t, m, keyPress("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
