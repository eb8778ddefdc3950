// Package form holds the state behind the laptop recommendation form.
//
// The form offers manufacturers and their models from an OptionStore loaded
// once from the service, keeps the user's Selection (changing the manufacturer
// always clears the model), and hands submissions to an Orchestrator which
// maps the purpose to a backend category, sends the request, and keeps the
// resulting recommendation list together with per-entry detail visibility.
//
// Submissions are sequenced. A result that arrives after a newer submission
// was issued is discarded, so the displayed list always belongs to the most
// recent request.
package form
