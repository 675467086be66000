package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ichat/domain/event"
	"ichat/errors"
)

// fakeFeed is the in-memory stand-in for the Postgres listener.
type fakeFeed struct {
	listened  []string
	listenErr error
	out       chan Notification
}

func newFakeFeed() *fakeFeed {
	return &fakeFeed{out: make(chan Notification, 8)}
}

func (f *fakeFeed) Listen(channel string) error {
	if f.listenErr != nil {
		return f.listenErr
	}
	f.listened = append(f.listened, channel)
	return nil
}

func (f *fakeFeed) Notifications() <-chan Notification {
	return f.out
}

func (f *fakeFeed) Close() error {
	close(f.out)
	return nil
}

func TestChangeListener_PublishesDecodedEvents(t *testing.T) {
	req := require.New(t)
	bus := NewBus(DefaultCapacity)
	defer bus.Close()
	feed := newFakeFeed()

	cursor := bus.Subscribe()
	defer cursor.Close()

	listener := NewChangeListener(slog.Default(), bus, feed)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- listener.Run(ctx) }()

	feed.out <- Notification{
		Channel: event.ChanNewMessage,
		Payload: `{"id":1,"chat_id":7,"user_id":3,"type":"text","content":"hi"}`,
	}

	readCtx, readCancel := context.WithTimeout(ctx, time.Second)
	defer readCancel()
	evt, err := cursor.Next(readCtx)
	req.NoError(err)
	msg, ok := evt.(event.NewMessage)
	req.True(ok)
	req.Equal(int64(7), msg.Message.ChatID)

	req.ElementsMatch([]string{event.ChanChatChange, event.ChanNewMessage}, feed.listened)

	cancel()
	req.NoError(<-done)
}

func TestChangeListener_SkipsBadPayloads(t *testing.T) {
	req := require.New(t)
	bus := NewBus(DefaultCapacity)
	defer bus.Close()
	feed := newFakeFeed()

	cursor := bus.Subscribe()
	defer cursor.Close()

	listener := NewChangeListener(slog.Default(), bus, feed)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- listener.Run(ctx) }()

	// One malformed payload must not take the listener down, and the
	// following valid one still goes through.
	feed.out <- Notification{Channel: event.ChanChatChange, Payload: `garbage`}
	feed.out <- Notification{
		Channel: event.ChanChatChange,
		Payload: `{"op":"INSERT","new":{"id":5,"name":"general","owner_id":2}}`,
	}

	readCtx, readCancel := context.WithTimeout(ctx, time.Second)
	defer readCancel()
	evt, err := cursor.Next(readCtx)
	req.NoError(err)
	created, ok := evt.(event.ChatCreated)
	req.True(ok)
	req.Equal(int64(5), created.Chat.ID)

	cancel()
	req.NoError(<-done)
}

func TestChangeListener_FeedClosureEndsTheRun(t *testing.T) {
	req := require.New(t)
	bus := NewBus(DefaultCapacity)
	defer bus.Close()
	feed := newFakeFeed()

	listener := NewChangeListener(slog.Default(), bus, feed)

	done := make(chan error, 1)
	go func() { done <- listener.Run(context.Background()) }()

	req.NoError(feed.Close())

	select {
	case err := <-done:
		// Surfacing the closure lets the supervisor rebuild the feed.
		req.ErrorIs(err, errors.ErrChangeFeedClosed)
	case <-time.After(time.Second):
		req.Fail("listener should have stopped when the feed closed")
	}
}

func TestChangeListener_ListenFailureAborts(t *testing.T) {
	req := require.New(t)
	bus := NewBus(DefaultCapacity)
	defer bus.Close()
	feed := newFakeFeed()
	feed.listenErr = fmt.Errorf("connection refused")

	listener := NewChangeListener(slog.Default(), bus, feed)

	err := listener.Run(context.Background())
	req.Error(err)
	req.Contains(err.Error(), "connection refused")
}
