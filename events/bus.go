package events

import (
	"context"

	uuid "github.com/satori/go.uuid"
)

type Type int

const (
	// All event type is used by subscribers that want every event, it has
	// no corresponding payload.
	All Type = iota
	IntentionRegisteredEvent
	InsufficientBalanceEvent
	AMMSellErrorEvent
	AMMBuyErrorEvent
	DirectTradeEvent
)

var eventStrings = map[Type]string{
	All:                      "ALL",
	IntentionRegisteredEvent: "IntentionRegistered",
	InsufficientBalanceEvent: "InsufficientBalance",
	AMMSellErrorEvent:        "AMMSellError",
	AMMBuyErrorEvent:         "AMMBuyError",
	DirectTradeEvent:         "DirectTrade",
}

// Event is the common denominator all bus events share.
type Event interface {
	Type() Type
	Context() context.Context
	TraceID() string
}

// Base common denominator all event-bus events share.
type Base struct {
	ctx     context.Context
	traceID string
	et      Type
}

type traceIDKey int

var traceIDK traceIDKey

// WithTraceID returns a copy of ctx carrying the given trace ID, every
// event raised from it will share the ID.
func WithTraceID(ctx context.Context, tID string) context.Context {
	return context.WithValue(ctx, traceIDK, tID)
}

// TraceIDFromContext returns the trace ID the context carries, minting
// a fresh one and attaching it when the context carries none.
func TraceIDFromContext(ctx context.Context) (context.Context, string) {
	if tID, ok := ctx.Value(traceIDK).(string); ok {
		return ctx, tID
	}
	tID := uuid.NewV4().String()
	return WithTraceID(ctx, tID), tID
}

// newBase populates the trace ID from the context, or mints a fresh
// one when the context carries none.
func newBase(ctx context.Context, t Type) *Base {
	ctx, tID := TraceIDFromContext(ctx)
	return &Base{
		ctx:     ctx,
		traceID: tID,
		et:      t,
	}
}

// TraceID returns the correlation ID shared by all events of one round.
func (b Base) TraceID() string {
	return b.traceID
}

// Context returns the context the event was raised with.
func (b Base) Context() context.Context {
	return b.ctx
}

// Type returns the event type.
func (b Base) Type() Type {
	return b.et
}

// String gets a string representation of the event type.
func (t Type) String() string {
	s, ok := eventStrings[t]
	if !ok {
		return "UNKNOWN EVENT"
	}
	return s
}
