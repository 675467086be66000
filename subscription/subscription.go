package subscription

import (
	"context"
	stderrors "errors"
	"log/slog"

	"ichat/domain/event"
	"ichat/runtime"
)

// Decision is a filter's verdict on a single bus event.
type Decision int

const (
	// Drop skips the event for this subscriber.
	Drop Decision = iota
	// Yield delivers the event.
	Yield
	// YieldAndEnd delivers the event and terminates the stream.
	YieldAndEnd
)

// Filter decides, per event and in cursor order, what a subscriber gets
// to see. A non-nil error ends the stream; transient lookup failures are
// expected to be swallowed and turned into Drop instead.
type Filter interface {
	Apply(ctx context.Context, e event.DomainEvent) (Decision, error)
}

// Open attaches a cursor to the bus and pumps filtered events into the
// returned channel on a dedicated goroutine, so one subscriber's slow
// authorization lookups never delay another subscriber or the bus.
//
// The channel closes when the context is cancelled, the bus closes, the
// filter errors, or a terminal event was yielded. Lag is recovered
// silently: the subscriber misses events and continues from the head.
func Open(ctx context.Context, log *slog.Logger, bus *runtime.Bus, filter Filter) <-chan event.DomainEvent {
	out := make(chan event.DomainEvent)

	go func() {
		defer close(out)

		cursor := bus.Subscribe()
		defer cursor.Close()

		for {
			evt, err := cursor.Next(ctx)
			if stderrors.Is(err, runtime.ErrLagged) {
				log.Debug("Subscriber lagged, resuming from head")
				continue
			}
			if err != nil {
				return
			}

			decision, err := filter.Apply(ctx, evt)
			if err != nil {
				log.Debug("Ending subscription", "error", err)
				return
			}
			if decision == Drop {
				continue
			}

			select {
			case out <- evt:
			case <-ctx.Done():
				return
			}

			if decision == YieldAndEnd {
				return
			}
		}
	}()

	return out
}
