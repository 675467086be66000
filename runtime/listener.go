package runtime

import (
	"context"
	"fmt"
	"log/slog"

	"ichat/domain/event"
	"ichat/errors"
)

// Notification is one raw entry from the database change feed.
type Notification struct {
	Channel string
	Payload string
}

// ChangeFeed abstracts the database notification source (Postgres
// LISTEN/NOTIFY in production, a plain channel in tests).
type ChangeFeed interface {
	Listen(channel string) error
	Notifications() <-chan Notification
	Close() error
}

// ChangeListener bridges the change feed into the bus. It runs as a
// supervised worker: decode failures are logged and skipped, but losing
// the feed itself ends the run and is left to the supervisor.
type ChangeListener struct {
	log  *slog.Logger
	bus  *Bus
	feed ChangeFeed
}

func NewChangeListener(log *slog.Logger, bus *Bus, feed ChangeFeed) *ChangeListener {
	return &ChangeListener{log: log, bus: bus, feed: feed}
}

func (l *ChangeListener) Run(ctx context.Context) error {
	for _, channel := range []string{event.ChanChatChange, event.ChanNewMessage} {
		if err := l.feed.Listen(channel); err != nil {
			return fmt.Errorf("listen on %s: %w", channel, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case n, ok := <-l.feed.Notifications():
			if !ok {
				return errors.ErrChangeFeedClosed
			}
			evt, err := event.Decode(n.Channel, n.Payload)
			if err != nil {
				// A single bad payload must not take the listener down.
				l.log.Warn("Dropping change notification",
					"channel", n.Channel, "error", err)
				continue
			}
			l.bus.Publish(evt)
		}
	}
}
