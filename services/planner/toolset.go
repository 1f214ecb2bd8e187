// Package planner implements the capability functions ("tools") the
// vacation-planner agent is allowed to call: calendar and preference reads,
// flight/hotel/activity searches, budget arithmetic, and payment-gated
// bookings. The agent itself is untrusted; everything it can do runs through
// ToolSet.Invoke.
package planner

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// ToolSet is a constructed capability set. The authorization fact is bound
// at construction and cannot be altered afterward: no invocation argument,
// catalog record, or prior booking outcome reaches it. Re-authorization is
// reconstruction, never mutation.
type ToolSet struct {
	catalog    Catalog
	authorized bool
	logger     *zap.Logger
	observer   Observer
}

// Option configures a ToolSet at construction time.
type Option func(*ToolSet)

// WithLogger sets the logger used for invocation diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(ts *ToolSet) { ts.logger = logger }
}

// WithObserver sets the observability hook for tool invocations.
func WithObserver(o Observer) Option {
	return func(ts *ToolSet) { ts.observer = o }
}

// NewToolSet constructs a capability set over the given catalog with the
// given payment-authorization status.
func NewToolSet(catalog Catalog, authorized bool, opts ...Option) *ToolSet {
	ts := &ToolSet{
		catalog:    catalog,
		authorized: authorized,
		logger:     zap.NewNop(),
		observer:   nopObserver{},
	}
	for _, opt := range opts {
		opt(ts)
	}
	return ts
}

// Authorized reports the gate value this set was constructed with.
func (ts *ToolSet) Authorized() bool { return ts.authorized }

// Invoke dispatches a tool call by name. It never panics or returns an error
// past this boundary: every internal failure becomes a structured
// {"status":"error","message":...} result the calling agent can reason over.
func (ts *ToolSet) Invoke(ctx context.Context, name string, args map[string]interface{}) (result map[string]interface{}) {
	defer func() {
		if r := recover(); r != nil {
			ts.logger.Error("tool panicked", zap.String("tool", name), zap.Any("panic", r))
			result = errorResult(fmt.Sprintf("internal failure in %s", name))
		}
	}()

	if args == nil {
		args = map[string]interface{}{}
	}

	var res map[string]interface{}
	var err error
	switch name {
	case ToolReadCalendar:
		res, err = ts.readCalendar(args)
	case ToolReadPreferences:
		res, err = ts.readPreferences(args)
	case ToolSearchFlights:
		res, err = ts.searchFlights(args)
	case ToolSearchHotels:
		res, err = ts.searchHotels(args)
	case ToolSearchActivities:
		res, err = ts.searchActivities(args)
	case ToolCalculateBudget:
		res, err = ts.calculateBudget(args)
	case ToolBookFlight:
		res, err = ts.bookFlight(args)
	case ToolBookHotel:
		res, err = ts.bookHotel(args)
	default:
		return errorResult(fmt.Sprintf("unknown tool %q", name))
	}
	if err != nil {
		ts.logger.Warn("tool rejected input", zap.String("tool", name), zap.Error(err))
		return errorResult(err.Error())
	}
	if _, ok := res["status"]; !ok {
		res["status"] = "ok"
	}
	return res
}

func errorResult(msg string) map[string]interface{} {
	return map[string]interface{}{
		"status":  "error",
		"message": msg,
	}
}

// asMap converts a model struct into the plain-JSON map shape tool results
// are made of (string keys, primitive/slice/map values only).
func asMap(v interface{}) map[string]interface{} {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("planner: marshal result: %v", err))
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		panic(fmt.Sprintf("planner: unmarshal result: %v", err))
	}
	return out
}
