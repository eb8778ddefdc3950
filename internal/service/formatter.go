package service

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is used when no locale is configured or the configured one does not parse
const DefaultLocale = "en-US"

// CurrencySuffix follows every rendered price
const CurrencySuffix = "Tsh"

// PriceDisclaimer is shown under every price
const PriceDisclaimer = "* Price may vary"

// PriceFormatter renders prices as locale-grouped whole numbers
type PriceFormatter struct {
	printer *message.Printer

	// Currency is appended to amounts by Amount
	Currency string
}

// NewPriceFormatter creates a formatter for a BCP 47 locale tag (e.g., "en-US", "de").
// Tags that do not parse fall back to DefaultLocale.
func NewPriceFormatter(locale string) *PriceFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	return &PriceFormatter{printer: message.NewPrinter(tag), Currency: CurrencySuffix}
}

// Format renders price with thousands separators and no fractional digits.
// Halves round away from zero. Negative and non-finite input is not supported.
func (f *PriceFormatter) Format(price float64) string {
	return f.printer.Sprintf("%d", int64(math.Round(price)))
}

// Amount renders price followed by the currency suffix, e.g. "1,234 Tsh"
func (f *PriceFormatter) Amount(price float64) string {
	return f.Format(price) + " " + f.Currency
}

var defaultPriceFormatter = NewPriceFormatter(DefaultLocale)

// FormatPrice renders price with the default (English) grouping, e.g. 1234567 -> "1,234,567"
func FormatPrice(price float64) string {
	return defaultPriceFormatter.Format(price)
}

// Summary returns a one-line summary of the recommendation
func (r *Recommendation) Summary(f *PriceFormatter) string {
	if f == nil {
		f = defaultPriceFormatter
	}
	return r.Name + " - " + f.Amount(r.PriceTZS)
}

// DetailLines returns the label/value pairs of the detail panel, in display order
func (r *Recommendation) DetailLines(f *PriceFormatter) [][2]string {
	if f == nil {
		f = defaultPriceFormatter
	}
	return [][2]string{
		{"Screen Size", r.ScreenSize},
		{"Screen", r.Screen},
		{"RAM", r.RAM},
		{"Storage", r.Storage},
		{"GPU", r.GPU},
		{"Price", f.Amount(r.PriceTZS)},
	}
}

// FormatDetails returns the detail panel as plain text
func (r *Recommendation) FormatDetails(f *PriceFormatter) string {
	var b strings.Builder

	for _, line := range r.DetailLines(f) {
		b.WriteString(fmt.Sprintf("%-12s %s\n", line[0]+":", line[1]))
	}
	b.WriteString(PriceDisclaimer + "\n")

	return b.String()
}

// FormatCompact returns one line per recommendation, numbered from 1
func FormatCompact(recs []Recommendation, f *PriceFormatter) string {
	if len(recs) == 0 {
		return "No recommendations.\n"
	}

	var b strings.Builder
	for i := range recs {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, recs[i].Summary(f)))
	}
	return b.String()
}

// FormatDetailed returns every recommendation with its detail panel expanded
func FormatDetailed(recs []Recommendation, f *PriceFormatter) string {
	if len(recs) == 0 {
		return "No recommendations.\n"
	}

	var b strings.Builder
	b.WriteString("=== Recommendations ===\n")
	for i := range recs {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, recs[i].Name))
		for _, line := range strings.Split(strings.TrimRight(recs[i].FormatDetails(f), "\n"), "\n") {
			b.WriteString("   " + line + "\n")
		}
	}
	return b.String()
}

// FormatOptions returns a readable listing of an option set
func FormatOptions(o *OptionSet) string {
	var b strings.Builder

	b.WriteString("=== Manufacturers & Models ===\n")
	if o == nil || len(o.Manufacturers) == 0 {
		b.WriteString("(none)\n")
	} else {
		for _, manufacturer := range o.Manufacturers {
			models := o.ModelNames[manufacturer]
			b.WriteString(fmt.Sprintf("%s (%d models)\n", manufacturer, len(models)))
			for _, model := range models {
				b.WriteString("  - " + model + "\n")
			}
		}
	}

	if o != nil && len(o.Categories) > 0 {
		b.WriteString("\n=== Categories ===\n")
		b.WriteString(strings.Join(o.Categories, ", ") + "\n")
	}

	return b.String()
}
