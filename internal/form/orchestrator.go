package form

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/muurk/laptop-advisor/internal/logging"
	"github.com/muurk/laptop-advisor/internal/service"
)

// Recommender answers a recommend request
type Recommender interface {
	Recommend(ctx context.Context, req *service.RecommendRequest) ([]service.Recommendation, error)
}

// Submission is one issued recommendation request
type Submission struct {
	// Seq orders submissions; later submissions have larger values
	Seq uint64

	// RequestID correlates the exchange in logs and on the wire
	RequestID string

	// Request is the body sent to the service
	Request *service.RecommendRequest
}

// Result is the outcome of executing a Submission
type Result struct {
	Seq             uint64
	RequestID       string
	Recommendations []service.Recommendation
	Err             error
}

// Orchestrator turns selections into recommendation requests and integrates
// their results. Only the result of the most recently issued submission is
// applied; anything older is dropped.
//
// Begin and Apply mutate state and must be called from a single goroutine
// (the UI event loop). Execute touches no state and may run anywhere.
type Orchestrator struct {
	recommender Recommender

	issued  uint64
	applied uint64

	recommendations []service.Recommendation
	details         DetailVisibility
	lastErr         error
}

// NewOrchestrator creates an orchestrator with an empty recommendation list
func NewOrchestrator(r Recommender) *Orchestrator {
	return &Orchestrator{
		recommender:     r,
		recommendations: []service.Recommendation{},
	}
}

// Begin issues a submission for the selection. The selection is sent as-is:
// empty fields and an unmapped purpose are not rejected.
func (o *Orchestrator) Begin(sel Selection) Submission {
	o.issued++

	sub := Submission{
		Seq:       o.issued,
		RequestID: uuid.NewString(),
		Request:   sel.Request(),
	}

	logging.LogSubmission(sub.Seq, sub.RequestID,
		sub.Request.Manufacturer, sub.Request.ModelName, sub.Request.Category)
	return sub
}

// Execute performs the exchange for sub
func (o *Orchestrator) Execute(ctx context.Context, sub Submission) Result {
	ctx = service.WithRequestID(ctx, sub.RequestID)
	recs, err := o.recommender.Recommend(ctx, sub.Request)
	return Result{
		Seq:             sub.Seq,
		RequestID:       sub.RequestID,
		Recommendations: recs,
		Err:             err,
	}
}

// Apply integrates res and reports whether it changed the visible state.
//
// A stale result is discarded. A failure is recorded as LastError and logged;
// the recommendation list and detail visibility are left as they were. A
// success replaces the list, hides every detail panel and clears LastError.
func (o *Orchestrator) Apply(res Result) bool {
	if res.Seq < o.issued {
		logging.Warn("Discarding stale recommendation result",
			zap.Uint64("seq", res.Seq),
			zap.Uint64("latest", o.issued),
			zap.String("request_id", res.RequestID),
		)
		return false
	}
	o.applied = res.Seq

	if res.Err != nil {
		o.lastErr = res.Err
		logging.Error("Recommendation request failed",
			zap.Uint64("seq", res.Seq),
			zap.String("request_id", res.RequestID),
			zap.Error(res.Err),
		)
		return true
	}

	recs := res.Recommendations
	if recs == nil {
		recs = []service.Recommendation{}
	}
	o.recommendations = recs
	o.details.Reset()
	o.lastErr = nil

	logging.Info("Recommendations received",
		zap.Uint64("seq", res.Seq),
		zap.String("request_id", res.RequestID),
		zap.Int("count", len(recs)),
	)
	return true
}

// Submit runs Begin, Execute and Apply in sequence and returns the
// exchange's error, if any.
func (o *Orchestrator) Submit(ctx context.Context, sel Selection) error {
	res := o.Execute(ctx, o.Begin(sel))
	o.Apply(res)
	return res.Err
}

// Pending reports whether the latest issued submission has not been applied yet
func (o *Orchestrator) Pending() bool {
	return o.applied < o.issued
}

// Recommendations returns the current recommendation list, in service order
func (o *Orchestrator) Recommendations() []service.Recommendation {
	return o.recommendations
}

// LastError returns the error of the latest applied submission, or nil
func (o *Orchestrator) LastError() error {
	return o.lastErr
}

// Toggle flips the detail panel of the recommendation at index
func (o *Orchestrator) Toggle(index int) bool {
	return o.details.Toggle(index)
}

// Visible reports whether the detail panel at index is expanded
func (o *Orchestrator) Visible(index int) bool {
	return o.details.Visible(index)
}
