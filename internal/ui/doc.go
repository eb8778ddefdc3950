// Package ui renders the styled output of the laptop-advisor CLI commands.
//
// Unlike the interactive form in package tui, these components print once
// and return. A Printer wraps an io.Writer and the detected terminal width
// (via golang.org/x/term, capped at MaxContentWidth) and offers:
//
//   - PrintHeader: command banner with the request parameters
//   - PrintRecommendations: one box per recommendation, optionally expanded
//   - PrintOptions / PrintPurposes: the form's selectable values
//   - PrintSuccess / PrintError / PrintServiceError: result boxes
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Recommendations", "laptop-advisor recommend", []ui.Field{
//	    {Key: "Manufacturer", Value: "Dell"},
//	})
//	p.PrintRecommendations(recs, service.NewPriceFormatter("en-US"), true)
//
// Logging goes to stderr and is silent unless LAPTOP_ADVISOR_LOG_LEVEL or
// --log-level is set, so it never interleaves with this output.
package ui
