package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/laptop-advisor/internal/form"
	"github.com/muurk/laptop-advisor/internal/purpose"
	"github.com/muurk/laptop-advisor/internal/service"
)

// Messages for async operations
type optionsLoadedMsg struct {
	options *service.OptionSet
	err     error
}

type recommendResultMsg struct {
	result form.Result
}

// Focus positions. Positions from firstResult onward address the results list.
const (
	fieldManufacturer = iota
	fieldModel
	fieldPurpose
	fieldSubmit
	firstResult
)

// editorClosed marks that no dropdown is expanded
const editorClosed = -1

// formKeyMap defines key bindings for the form screen
type formKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Tab    key.Binding
	Enter  key.Binding
	Submit key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Submit, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Tab, k.Enter},
		{k.Submit, k.Back, k.Quit},
	}
}

// EditorState tracks the inline dropdown
type EditorState struct {
	Field  int // Field being edited, or editorClosed
	Cursor int // Highlighted entry; 0 is the "not selected" entry
}

// choice is one dropdown entry
type choice struct {
	value string
	label string
}

// Model is the single-screen recommendation form
type Model struct {
	Form       *form.Form
	Prices     *service.PriceFormatter
	ServiceURL string

	// UI state
	Width  int
	Height int

	// Navigation
	Cursor int
	Editor EditorState

	// Async state
	LoadingOptions bool
	OptionsErr     error
	Submitted      bool // At least one submission has been applied

	Spinner spinner.Model
	Help    help.Model
	Keys    formKeyMap

	svc form.Service
	ctx context.Context
}

// NewModel creates the form model. Options are requested by Init.
func NewModel(ctx context.Context, svc form.Service, prices *service.PriceFormatter, serviceURL string) Model {
	if prices == nil {
		prices = service.NewPriceFormatter(service.DefaultLocale)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	keys := formKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "form/results"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select/toggle"),
		),
		Submit: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "recommend"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}

	return Model{
		Form:           form.New(svc),
		Prices:         prices,
		ServiceURL:     serviceURL,
		Editor:         EditorState{Field: editorClosed},
		LoadingOptions: true,
		Spinner:        s,
		Help:           help.New(),
		Keys:           keys,
		svc:            svc,
		ctx:            ctx,
	}
}

// Run starts the interactive form and blocks until the user quits
func Run(ctx context.Context, svc form.Service, prices *service.PriceFormatter, serviceURL string) error {
	program := tea.NewProgram(
		NewModel(ctx, svc, prices, serviceURL),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := program.Run()
	return err
}

// Init starts the one-shot options load
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Spinner.Tick, loadOptionsCmd(m.ctx, m.svc))
}

// loadOptionsCmd fetches the option set off the event loop
func loadOptionsCmd(ctx context.Context, loader form.OptionsLoader) tea.Cmd {
	return func() tea.Msg {
		options, err := loader.FetchOptions(ctx)
		return optionsLoadedMsg{options: options, err: err}
	}
}

// executeCmd performs a submission's exchange off the event loop
func executeCmd(ctx context.Context, o *form.Orchestrator, sub form.Submission) tea.Cmd {
	return func() tea.Msg {
		return recommendResultMsg{result: o.Execute(ctx, sub)}
	}
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case optionsLoadedMsg:
		m.LoadingOptions = false
		m.OptionsErr = m.Form.Options.Apply(msg.options, msg.err)
		return m, nil

	case recommendResultMsg:
		if m.Form.Results.Apply(msg.result) {
			m.Submitted = true
			m.clampCursor()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.Editor.Field != editorClosed {
			return m.updateEditor(msg)
		}
		return m.updateNormalMode(msg)
	}

	return m, nil
}

// updateNormalMode handles input when no dropdown is open
func (m Model) updateNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Up):
		m.Cursor--
		if m.Cursor < 0 {
			m.Cursor = m.lastPosition()
		}

	case key.Matches(msg, m.Keys.Down):
		m.Cursor++
		if m.Cursor > m.lastPosition() {
			m.Cursor = fieldManufacturer
		}

	case key.Matches(msg, m.Keys.Tab):
		if m.Cursor < firstResult && len(m.Form.Results.Recommendations()) > 0 {
			m.Cursor = firstResult
		} else {
			m.Cursor = fieldManufacturer
		}

	case key.Matches(msg, m.Keys.Submit):
		return m.submit()

	case key.Matches(msg, m.Keys.Enter):
		switch {
		case m.Cursor <= fieldPurpose:
			m.openEditor(m.Cursor)
		case m.Cursor == fieldSubmit:
			return m.submit()
		default:
			m.Form.Results.Toggle(m.Cursor - firstResult)
		}
	}

	return m, nil
}

// updateEditor handles input while a dropdown is open
func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	choices := m.choices(m.Editor.Field)

	switch {
	case key.Matches(msg, m.Keys.Back):
		m.Editor = EditorState{Field: editorClosed}

	case key.Matches(msg, m.Keys.Up):
		m.Editor.Cursor--
		if m.Editor.Cursor < 0 {
			m.Editor.Cursor = len(choices) - 1
		}

	case key.Matches(msg, m.Keys.Down):
		m.Editor.Cursor++
		if m.Editor.Cursor >= len(choices) {
			m.Editor.Cursor = 0
		}

	case key.Matches(msg, m.Keys.Enter):
		value := choices[m.Editor.Cursor].value
		switch m.Editor.Field {
		case fieldManufacturer:
			m.Form.SetManufacturer(value)
		case fieldModel:
			m.Form.SetModelName(value)
		case fieldPurpose:
			m.Form.SetPurpose(value)
		}
		m.Editor = EditorState{Field: editorClosed}
	}

	return m, nil
}

// submit issues a submission for the current selection
func (m Model) submit() (tea.Model, tea.Cmd) {
	sub := m.Form.Results.Begin(m.Form.Selection)
	return m, tea.Batch(executeCmd(m.ctx, m.Form.Results, sub), m.Spinner.Tick)
}

// openEditor expands the dropdown for field with the current value highlighted
func (m *Model) openEditor(field int) {
	current := m.currentValue(field)
	cursor := 0
	for i, c := range m.choices(field) {
		if c.value == current {
			cursor = i
			break
		}
	}
	m.Editor = EditorState{Field: field, Cursor: cursor}
}

// choices returns the dropdown entries for field, starting with "not selected"
func (m Model) choices(field int) []choice {
	var out []choice

	switch field {
	case fieldManufacturer:
		out = append(out, choice{"", "Select a manufacturer"})
		for _, manufacturer := range m.Form.Options.Manufacturers() {
			out = append(out, choice{manufacturer, manufacturer})
		}
	case fieldModel:
		out = append(out, choice{"", "Select a model"})
		for _, model := range m.Form.ModelChoices() {
			out = append(out, choice{model, model})
		}
	case fieldPurpose:
		out = append(out, choice{"", "Select a purpose"})
		for _, p := range purpose.Purposes() {
			out = append(out, choice{p.Value, p.Label})
		}
	}

	return out
}

// currentValue returns the selected value of field
func (m Model) currentValue(field int) string {
	switch field {
	case fieldManufacturer:
		return m.Form.Selection.Manufacturer
	case fieldModel:
		return m.Form.Selection.ModelName
	case fieldPurpose:
		return m.Form.Selection.Purpose
	}
	return ""
}

// busy reports whether an exchange is in flight
func (m Model) busy() bool {
	return m.LoadingOptions || m.Form.Results.Pending()
}

// lastPosition returns the highest valid cursor position
func (m Model) lastPosition() int {
	if n := len(m.Form.Results.Recommendations()); n > 0 {
		return firstResult + n - 1
	}
	return fieldSubmit
}

// clampCursor keeps the cursor on an existing position after the list changes
func (m *Model) clampCursor() {
	if last := m.lastPosition(); m.Cursor > last {
		m.Cursor = last
	}
}

// View renders the form
func (m Model) View() string {
	return RenderApplicationContainer(m.buildContent(), m.Help.View(m.Keys), m.ServiceURL, m.Width, m.Height)
}

// buildContent renders the screen content (without container)
func (m Model) buildContent() string {
	parts := []string{}

	if status := m.renderOptionsStatus(); status != "" {
		parts = append(parts, status, "")
	}

	parts = append(parts, SectionTitleStyle.Render("Find a Laptop"))
	parts = append(parts, m.renderFieldBlock("Manufacturer", fieldManufacturer))
	parts = append(parts, m.renderFieldBlock("Model", fieldModel))
	parts = append(parts, m.renderFieldBlock("Purpose", fieldPurpose))
	parts = append(parts, "", m.renderSubmitButton())

	if err := m.Form.Results.LastError(); err != nil {
		parts = append(parts, "", ErrorBoxStyle.Render("✗ "+service.GetShortErrorMessage(err)))
	}

	if results := m.renderResults(); results != "" {
		divider := lipgloss.NewStyle().
			Foreground(BorderColor).
			Render(strings.Repeat("─", dividerWidth))
		parts = append(parts, "", divider, results)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderOptionsStatus shows the options load spinner or its failure
func (m Model) renderOptionsStatus() string {
	if m.LoadingOptions {
		return m.Spinner.View() + " Loading manufacturers and models..."
	}
	if m.OptionsErr != nil {
		return WarningBoxStyle.Render("⚠ Could not load options: " + service.GetShortErrorMessage(m.OptionsErr))
	}
	return ""
}

// renderFieldBlock renders a field line and, when it is being edited, its dropdown
func (m Model) renderFieldBlock(label string, field int) string {
	line := m.renderField(label, m.displayValue(field), field)
	if m.Editor.Field != field {
		return line
	}
	return lipgloss.JoinVertical(lipgloss.Left, line, m.renderEditor(field))
}

// displayValue returns the label shown for field's current value
func (m Model) displayValue(field int) string {
	current := m.currentValue(field)
	if current == "" {
		return SubtitleStyle.Render("not selected")
	}
	if field == fieldPurpose {
		return purpose.Label(current)
	}
	return current
}

// renderField renders a field as a single line
// Format: "→ Label           Value ▼" when focused
func (m Model) renderField(label, value string, field int) string {
	isSelected := m.Cursor == field

	labelStyle := lipgloss.NewStyle().Width(labelWidth).Foreground(SubtleColor)
	valueStyle := lipgloss.NewStyle()

	arrow := "  "
	if isSelected {
		arrow = "→ "
		labelStyle = labelStyle.Foreground(HighlightColor).Bold(true)
		valueStyle = valueStyle.Foreground(HighlightColor).Bold(true)
	}

	return lipgloss.JoinHorizontal(lipgloss.Left,
		arrow,
		labelStyle.Render(label),
		valueStyle.Render(value+" ▼"),
	)
}

// renderEditor renders the expanded dropdown for field
func (m Model) renderEditor(field int) string {
	current := m.currentValue(field)

	var lines []string
	for i, c := range m.choices(field) {
		indicator := "( )"
		if c.value == current {
			indicator = "(•)"
		}

		style := lipgloss.NewStyle()
		if i == m.Editor.Cursor {
			style = style.Foreground(HighlightColor).Bold(true)
		}
		if c.value == "" {
			style = style.Italic(true)
		}

		lines = append(lines, style.Render(indicator+" "+c.label))
	}

	lines = append(lines, lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render("↑/↓ select • Enter confirm • Esc cancel"))

	return InlineEditorStyle().Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderSubmitButton renders the submit button and in-flight indicator
func (m Model) renderSubmitButton() string {
	buttonStyle := lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true)

	if m.Cursor == fieldSubmit {
		buttonStyle = buttonStyle.
			Background(PrimaryColor).
			Foreground(BackgroundColor)
	}

	button := buttonStyle.Render("[Get Recommendations]")
	if m.Form.Results.Pending() {
		button = lipgloss.JoinHorizontal(lipgloss.Left, button, "  ", m.Spinner.View(), " Fetching...")
	}

	return "  " + button
}

// renderResults renders the recommendation list with expanded detail panels
func (m Model) renderResults() string {
	recs := m.Form.Results.Recommendations()
	if !m.Submitted && len(recs) == 0 {
		return ""
	}

	lines := []string{SectionTitleStyle.Render("Recommendations")}

	if len(recs) == 0 {
		lines = append(lines, SubtitleStyle.Render("  No recommendations found for this selection."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for i := range recs {
		rec := &recs[i]
		position := firstResult + i
		visible := m.Form.Results.Visible(i)

		arrow := "  "
		style := lipgloss.NewStyle()
		if m.Cursor == position {
			arrow = "→ "
			style = style.Foreground(HighlightColor).Bold(true)
		}

		marker := "▸"
		if visible {
			marker = "▾"
		}

		lines = append(lines, style.Render(fmt.Sprintf("%s%s %d. %s", arrow, marker, i+1, rec.Summary(m.Prices))))

		if visible {
			for _, detail := range rec.DetailLines(m.Prices) {
				lines = append(lines, DetailStyle.Render(fmt.Sprintf("%-12s %s", detail[0]+":", detail[1])))
			}
			lines = append(lines, DisclaimerStyle.Render(service.PriceDisclaimer))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
