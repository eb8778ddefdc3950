// Package tui implements the interactive laptop recommendation form.
//
// The form is a single Bubble Tea screen wrapped in RenderApplicationContainer
// (header with the service address, help footer). It offers three inline
// dropdowns (manufacturer, model, purpose), a submit button and the list of
// recommendations, each of which expands into a detail panel.
//
// # Async Operations
//
// Network exchanges never run on the event loop. Options are fetched once by
// Init and arrive as optionsLoadedMsg; each submission is issued with
// form.Orchestrator.Begin, executed in a command, and integrated by Apply when
// its recommendResultMsg arrives. Results of superseded submissions are
// dropped by Apply.
//
// # Failures
//
// A failed options load leaves an empty but usable form with a warning
// panel. A failed submission shows an error panel and keeps the previous
// results on screen.
//
// # Usage Example
//
//	client := service.NewClient(baseURL)
//	if err := tui.Run(ctx, client, service.NewPriceFormatter("en-US"), baseURL); err != nil {
//	    log.Fatal(err)
//	}
package tui
