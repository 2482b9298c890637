// Package event provides an in-process publish/subscribe event bus.
//
// Handlers subscribe to an event type and receive every published event of
// that type in registration order. Dispatch is sequential within one
// Publish call, and a failing handler never prevents later handlers from
// running: its error is reported on the bus's diagnostic channel (a
// structured log record, an optional error callback, and an optional error
// counter) and its result slot is omitted.
//
//	bus := event.NewBus()
//	bus.SubscribeFunc("user.created", "audit", func(ctx context.Context, evt event.Event) (any, error) {
//	    return auditStore.Record(ctx, evt)
//	})
//	results := bus.Publish(ctx, event.New("user.created", user))
//
// The bus holds no event history; an event is released as soon as its
// dispatch completes.
package event
