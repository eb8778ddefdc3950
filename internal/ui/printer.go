package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/laptop-advisor/internal/purpose"
	"github.com/muurk/laptop-advisor/internal/service"
)

// Field is one labelled value in a header or result box. Fields are
// rendered in slice order.
type Field struct {
	Key   string
	Value string
}

// Printer provides methods for printing UI components to a writer.
// This is the primary way CLI commands output styled content.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// Width returns the width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// SetWidth overrides the detected terminal width
func (p *Printer) SetWidth(width int) *Printer {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	p.width = width
	return p
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params []Field) {
	p.Println(RenderHeader(title, command, params, p.width))
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details []Field) {
	p.Println(RenderSuccessBox(title, details, p.width))
}

// PrintError prints an error result box with troubleshooting tips
func (p *Printer) PrintError(title string, err error, troubleshooting []string) {
	p.Println(RenderErrorBox(title, err, troubleshooting, p.width))
}

// PrintServiceError prints err with the short message and hint for its error type
func (p *Printer) PrintServiceError(title string, err error) {
	var tips []string
	for _, line := range strings.Split(service.GetTroubleshootingHint(err), "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "•"))
		if line == "" || line == "Troubleshooting:" {
			continue
		}
		tips = append(tips, line)
	}
	p.PrintError(title, fmt.Errorf("%s", service.GetShortErrorMessage(err)), tips)
}

// PrintRecommendations prints one box per recommendation. With expanded set,
// each box includes the detail panel.
func (p *Printer) PrintRecommendations(recs []service.Recommendation, f *service.PriceFormatter, expanded bool) {
	p.Println(RenderRecommendations(recs, f, expanded, p.width))
}

// PrintOptions prints the manufacturers, their models and the categories
func (p *Printer) PrintOptions(options *service.OptionSet) {
	p.Println(RenderOptions(options, p.width))
}

// PrintPurposes prints the purpose to category table
func (p *Printer) PrintPurposes() {
	p.Println(RenderPurposes(p.width))
}

// RenderHeader renders a command header box
func RenderHeader(title, command string, params []Field, width int) string {
	titleLine := HeaderTitleStyle.Render(strings.ToUpper(title))
	commandLine := HeaderCommandStyle.Render(command)
	topSection := lipgloss.JoinVertical(lipgloss.Left, titleLine, commandLine)

	if len(params) == 0 {
		return HeaderBorderStyle(width).Render(topSection)
	}

	var paramLines []string
	for _, param := range params {
		paramLines = append(paramLines,
			HeaderParamKeyStyle.Render(param.Key+":")+HeaderParamValueStyle.Render(param.Value))
	}

	dividerWidth := width - 6 // Account for border and padding
	if dividerWidth < 10 {
		dividerWidth = 10
	}
	divider := RenderHorizontalDivider(dividerWidth, "─")

	content := lipgloss.JoinVertical(lipgloss.Left, topSection, divider, strings.Join(paramLines, "\n"))
	return HeaderBorderStyle(width).Render(content)
}

// RenderSuccessBox renders a success result box
func RenderSuccessBox(title string, details []Field, width int) string {
	lines := []string{
		SuccessTitleStyle.Render(SuccessMarker + "  " + title),
	}

	if len(details) > 0 {
		lines = append(lines, "")
	}
	for _, d := range details {
		lines = append(lines, ResultKeyStyle.Render(d.Key+":")+" "+ResultValueStyle.Render(d.Value))
	}

	return SuccessBoxStyle(width).Render(strings.Join(lines, "\n"))
}

// RenderErrorBox renders an error result box with troubleshooting
func RenderErrorBox(title string, err error, troubleshooting []string, width int) string {
	lines := []string{
		ErrorTitleStyle.Render(FailureMarker + "  FAILED  ─  " + title),
	}

	if err != nil {
		lines = append(lines, "", ErrorMessageStyle.Render("Error: "+err.Error()))
	}

	if len(troubleshooting) > 0 {
		troubleLines := []string{TroubleshootingTitleStyle.Render("Troubleshooting:")}
		for _, tip := range troubleshooting {
			troubleLines = append(troubleLines, TroubleshootingItemStyle.Render("  • "+tip))
		}
		lines = append(lines, "", TroubleshootingBoxStyle(width).Render(strings.Join(troubleLines, "\n")))
	}

	return ErrorBoxStyle(width).Render(strings.Join(lines, "\n"))
}

// RenderRecommendations renders the recommendation list
func RenderRecommendations(recs []service.Recommendation, f *service.PriceFormatter, expanded bool, width int) string {
	if len(recs) == 0 {
		return NoteStyle.Render("No recommendations found for this selection.")
	}

	boxes := make([]string, 0, len(recs))
	for i := range recs {
		rec := &recs[i]
		lines := []string{ItemTitleStyle.Render(fmt.Sprintf("%d. %s", i+1, rec.Summary(f)))}

		if expanded {
			lines = append(lines, "")
			for _, d := range rec.DetailLines(f) {
				lines = append(lines, ResultKeyStyle.Render(d[0]+":")+" "+ResultValueStyle.Render(d[1]))
			}
			lines = append(lines, NoteStyle.Render(service.PriceDisclaimer))
		}

		boxes = append(boxes, ItemBoxStyle(width).Render(strings.Join(lines, "\n")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, boxes...)
}

// RenderOptions renders an option set as one box per manufacturer
func RenderOptions(options *service.OptionSet, width int) string {
	if options == nil || len(options.Manufacturers) == 0 {
		return NoteStyle.Render("The service offered no manufacturers.")
	}

	var boxes []string
	for _, manufacturer := range options.Manufacturers {
		models := options.ModelNames[manufacturer]
		lines := []string{ItemTitleStyle.Render(fmt.Sprintf("%s (%d models)", manufacturer, len(models)))}
		for _, model := range models {
			lines = append(lines, "  - "+model)
		}
		boxes = append(boxes, ItemBoxStyle(width).Render(strings.Join(lines, "\n")))
	}

	if len(options.Categories) > 0 {
		boxes = append(boxes,
			ResultKeyStyle.Render("Categories:")+" "+ResultValueStyle.Render(strings.Join(options.Categories, ", ")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, boxes...)
}

// RenderPurposes renders the purpose to category table
func RenderPurposes(width int) string {
	keyStyle := ResultKeyStyle.Width(22)

	lines := []string{ItemTitleStyle.Render("Purpose → Category")}
	for _, p := range purpose.Purposes() {
		lines = append(lines,
			keyStyle.Render(p.Label)+" "+ResultValueStyle.Render(purpose.MapPurposeToCategory(p.Value)))
	}

	return ItemBoxStyle(width).Render(strings.Join(lines, "\n"))
}
