// Package purpose translates the usage purposes offered by the form into the
// category vocabulary understood by the recommendation service.
package purpose

// Purpose is a selectable usage purpose. Value is what the form stores and
// what MapPurposeToCategory looks up; Label is what the user sees.
type Purpose struct {
	Value string
	Label string
}

// purposeCategories maps a purpose value to the backend category.
var purposeCategories = map[string]string{
	"Business":           "Ultrabook",
	"Productivity":       "Ultrabook",
	"Gaming":             "Gaming",
	"Design":             "Workstation",
	"Engineering":        "Workstation",
	"Content Creation":   "Workstation",
	"light productivity": "2 in 1 Convertible",
	"entertainment":      "2 in 1 Convertible",
	"web-based tasks":    "Notebook",
}

// formPurposes lists the purposes in the order the form offers them.
var formPurposes = []Purpose{
	{Value: "Business", Label: "Business"},
	{Value: "Productivity", Label: "Productivity"},
	{Value: "Gaming", Label: "Gaming"},
	{Value: "Design", Label: "Design"},
	{Value: "Engineering", Label: "Engineering"},
	{Value: "Content Creation", Label: "Content Creation"},
	{Value: "light productivity", Label: "Light Productivity"},
	{Value: "entertainment", Label: "Entertainment"},
	{Value: "web-based tasks", Label: "Web-based Tasks"},
}

// MapPurposeToCategory returns the category for a purpose value, or "" when the
// purpose is not in the table. An empty category means "no category filter".
func MapPurposeToCategory(purpose string) string {
	return purposeCategories[purpose]
}

// IsKnown reports whether purpose has a category mapping.
func IsKnown(purpose string) bool {
	_, ok := purposeCategories[purpose]
	return ok
}

// Purposes returns the selectable purposes in form order.
func Purposes() []Purpose {
	out := make([]Purpose, len(formPurposes))
	copy(out, formPurposes)
	return out
}

// Label returns the display label for a purpose value.
// Unknown values are returned unchanged.
func Label(value string) string {
	for _, p := range formPurposes {
		if p.Value == value {
			return p.Label
		}
	}
	return value
}

// Categories returns the distinct categories, in the order they first appear
// in the form's purpose list.
func Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range formPurposes {
		category := purposeCategories[p.Value]
		if !seen[category] {
			seen[category] = true
			categories = append(categories, category)
		}
	}
	return categories
}
