package repositories

import (
	"log/slog"
	"time"

	"github.com/lib/pq"

	"ichat/runtime"
)

const (
	feedMinReconnect = 5 * time.Second
	feedMaxReconnect = time.Minute
)

// PgChangeFeed adapts a Postgres LISTEN/NOTIFY connection to the change
// listener's feed interface. Database triggers on the chats and messages
// tables raise the notifications it forwards.
type PgChangeFeed struct {
	log      *slog.Logger
	listener *pq.Listener
	out      chan runtime.Notification
}

func NewPgChangeFeed(log *slog.Logger, dsn string) *PgChangeFeed {
	feed := &PgChangeFeed{
		log: log,
		out: make(chan runtime.Notification),
	}
	feed.listener = pq.NewListener(dsn, feedMinReconnect, feedMaxReconnect,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				log.Warn("Change feed connection event", "event", ev, "error", err)
			}
		})
	go feed.pump()
	return feed
}

func (f *PgChangeFeed) Listen(channel string) error {
	return f.listener.Listen(channel)
}

func (f *PgChangeFeed) Notifications() <-chan runtime.Notification {
	return f.out
}

func (f *PgChangeFeed) Close() error {
	return f.listener.Close()
}

func (f *PgChangeFeed) pump() {
	defer close(f.out)
	for n := range f.listener.Notify {
		// pq sends nil after an automatic reconnect to flag a gap in the
		// stream; nothing to decode there.
		if n == nil {
			f.log.Warn("Change feed reconnected, notifications may have been missed")
			continue
		}
		f.out <- runtime.Notification{Channel: n.Channel, Payload: n.Extra}
	}
}
