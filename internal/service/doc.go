// Package service provides an HTTP client for the laptop recommendation service.
//
// The service exposes two JSON endpoints:
//   - GET  /api/options/   selectable manufacturers, models per manufacturer and categories
//   - POST /api/recommend/ recommendations for {manufacturer, model_name, category}
//
// # Usage Example
//
//	client := service.NewClient("http://127.0.0.1:8000")
//
//	options, err := client.FetchOptions(ctx)
//	if err != nil {
//	    log.Fatal(service.GetShortErrorMessage(err))
//	}
//
//	recs, err := client.Recommend(ctx, &service.RecommendRequest{
//	    Manufacturer: "Dell",
//	    ModelName:    "XPS 13",
//	    Category:     "Ultrabook",
//	})
//
// # Exchange Semantics
//
// Every call is a single request. The client never retries, caches or
// deduplicates; sequencing overlapping submissions is the caller's job
// (see package form). Any non-2xx status is returned as a ServiceError of
// type ErrTypeHTTP carrying the backend's "error" message when present.
//
// # Formatting
//
// PriceFormatter renders price_tzs values as locale-grouped whole numbers
// using golang.org/x/text/message.
package service
