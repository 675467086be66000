package subscription

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ichat/domain"
	"ichat/domain/event"
	"ichat/errors"
	"ichat/mocks"
	"ichat/runtime"
)

// openAndWait opens a subscription and blocks until its cursor is
// attached, so events published afterwards are guaranteed to be seen.
func openAndWait(t *testing.T, ctx context.Context, bus *runtime.Bus, filter Filter) <-chan event.DomainEvent {
	t.Helper()
	before := bus.Subscribers()
	out := Open(ctx, slog.Default(), bus, filter)
	require.Eventually(t, func() bool {
		return bus.Subscribers() > before
	}, time.Second, 5*time.Millisecond)
	// Wait for this subscriber to detach before the next (sub)test runs,
	// so a later openAndWait never races against a stale cursor and
	// snapshots a count that is about to drop.
	t.Cleanup(func() {
		require.Eventually(t, func() bool {
			return bus.Subscribers() <= before
		}, time.Second, 5*time.Millisecond)
	})
	return out
}

func recv(t *testing.T, out <-chan event.DomainEvent) event.DomainEvent {
	t.Helper()
	select {
	case evt, ok := <-out:
		require.True(t, ok, "stream ended before the expected event")
		return evt
	case <-time.After(time.Second):
		require.Fail(t, "timed out waiting for event")
		return nil
	}
}

func expectClosed(t *testing.T, out <-chan event.DomainEvent) {
	t.Helper()
	select {
	case evt, ok := <-out:
		require.False(t, ok, "expected end of stream, got %T", evt)
	case <-time.After(time.Second):
		require.Fail(t, "stream should have ended")
	}
}

func TestPairingSubscription(t *testing.T) {
	req := require.New(t)
	bus := runtime.NewBus(runtime.DefaultCapacity)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := openAndWait(t, ctx, bus, NewPairing("abc"))

	bus.Publish(event.QRScanned{DeviceUUID: "abc"})
	bus.Publish(event.QRScanned{DeviceUUID: "xyz"})
	bus.Publish(event.QRConfirmed{DeviceUUID: "xyz", Token: "other"})
	bus.Publish(event.QRConfirmed{DeviceUUID: "abc", Token: "tok-1"})
	bus.Publish(event.QRScanned{DeviceUUID: "abc"})

	// Only this device's events come through, in publish order, and the
	// confirm terminates the stream before the trailing scan.
	req.Equal(event.QRScanned{DeviceUUID: "abc"}, recv(t, out))
	req.Equal(event.QRConfirmed{DeviceUUID: "abc", Token: "tok-1"}, recv(t, out))
	expectClosed(t, out)
}

func TestPairingSubscription_CancelIsTerminal(t *testing.T) {
	req := require.New(t)
	bus := runtime.NewBus(runtime.DefaultCapacity)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := openAndWait(t, ctx, bus, NewPairing("abc"))

	bus.Publish(event.QRCancelled{DeviceUUID: "abc"})
	bus.Publish(event.QRConfirmed{DeviceUUID: "abc", Token: "late"})

	req.Equal(event.QRCancelled{DeviceUUID: "abc"}, recv(t, out))
	expectClosed(t, out)
}

func TestPairingSubscription_RepeatedScans(t *testing.T) {
	req := require.New(t)
	bus := runtime.NewBus(runtime.DefaultCapacity)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := openAndWait(t, ctx, bus, NewPairing("abc"))

	bus.Publish(event.QRScanned{DeviceUUID: "abc"})
	bus.Publish(event.QRScanned{DeviceUUID: "abc"})

	// A scan is not terminal, so both go through.
	req.Equal(event.QRScanned{DeviceUUID: "abc"}, recv(t, out))
	req.Equal(event.QRScanned{DeviceUUID: "abc"}, recv(t, out))
	cancel()
	expectClosed(t, out)
}

func TestChatLifecycleSubscription_BroadcastsToAll(t *testing.T) {
	req := require.New(t)
	bus := runtime.NewBus(runtime.DefaultCapacity)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first := openAndWait(t, ctx, bus, NewChatLifecycle())
	second := openAndWait(t, ctx, bus, NewChatLifecycle())

	deleted := event.ChatDeleted{Chat: domain.Chat{ID: 9, Name: "doomed", OwnerID: 4}}
	bus.Publish(event.NewMessage{Message: domain.Message{ID: 1, ChatID: 9}})
	bus.Publish(deleted)

	// Lifecycle streams skip messages and deliver the deletion to every
	// subscriber with the last known chat state.
	req.Equal(deleted, recv(t, first))
	req.Equal(deleted, recv(t, second))
}

func TestChatMessagesSubscription(t *testing.T) {
	req := require.New(t)
	bus := runtime.NewBus(runtime.DefaultCapacity)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := openAndWait(t, ctx, bus, NewChatMessages(7))

	bus.Publish(event.NewMessage{Message: domain.Message{ID: 1, ChatID: 3}})
	bus.Publish(event.ChatCreated{Chat: domain.Chat{ID: 7}})
	bus.Publish(event.NewMessage{Message: domain.Message{ID: 2, ChatID: 7}})

	evt := recv(t, out)
	msg, ok := evt.(event.NewMessage)
	req.True(ok)
	req.Equal(int64(2), msg.Message.ID)
}

func TestAllMessagesSubscription(t *testing.T) {
	bus := runtime.NewBus(runtime.DefaultCapacity)
	defer bus.Close()

	chat := domain.Chat{ID: 7, Name: "general", OwnerID: 2, Type: domain.ChatGroup}
	members := []domain.User{{ID: 2}, {ID: 3}}
	msg := event.NewMessage{Message: domain.Message{ID: 1, ChatID: 7, UserID: 3}}

	t.Run("member receives the message", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		chats := mocks.NewMockIChatRepository(ctrl)

		chats.EXPECT().GetChatByID(gomock.Any(), int64(7)).Return(chat, nil)
		chats.EXPECT().GetMembers(gomock.Any(), int64(7)).Return(members, nil)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		out := openAndWait(t, ctx, bus, NewAllMessages(slog.Default(), 2, chats))

		bus.Publish(msg)
		req.Equal(msg, recv(t, out))
	})

	t.Run("non-member never receives it", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		chats := mocks.NewMockIChatRepository(ctrl)

		chats.EXPECT().GetChatByID(gomock.Any(), int64(7)).Return(chat, nil)
		chats.EXPECT().GetMembers(gomock.Any(), int64(7)).Return(members, nil)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		out := openAndWait(t, ctx, bus, NewAllMessages(slog.Default(), 4, chats))

		bus.Publish(msg)

		// A later matching event proves the first was dropped, not buffered.
		chats.EXPECT().GetChatByID(gomock.Any(), int64(7)).Return(chat, nil)
		chats.EXPECT().GetMembers(gomock.Any(), int64(7)).
			Return([]domain.User{{ID: 4}}, nil)
		second := event.NewMessage{Message: domain.Message{ID: 2, ChatID: 7}}
		bus.Publish(second)

		req.Equal(second, recv(t, out))
	})

	t.Run("transient lookup failure drops the event only", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		chats := mocks.NewMockIChatRepository(ctrl)

		chats.EXPECT().GetChatByID(gomock.Any(), int64(7)).
			Return(domain.Chat{}, fmt.Errorf("connection reset"))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		out := openAndWait(t, ctx, bus, NewAllMessages(slog.Default(), 2, chats))

		bus.Publish(msg)

		// The stream survives and delivers the next resolvable event.
		chats.EXPECT().GetChatByID(gomock.Any(), int64(7)).Return(chat, nil)
		chats.EXPECT().GetMembers(gomock.Any(), int64(7)).Return(members, nil)
		second := event.NewMessage{Message: domain.Message{ID: 2, ChatID: 7}}
		bus.Publish(second)

		req.Equal(second, recv(t, out))
	})

	t.Run("vanished subscriber ends the stream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		chats := mocks.NewMockIChatRepository(ctrl)

		chats.EXPECT().GetChatByID(gomock.Any(), int64(7)).
			Return(domain.Chat{}, fmt.Errorf("resolve subscriber: %w", errors.ErrUserNotFound))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		out := openAndWait(t, ctx, bus, NewAllMessages(slog.Default(), 2, chats))

		bus.Publish(msg)
		expectClosed(t, out)
	})
}

func TestOpen_ContextCancellationEndsStream(t *testing.T) {
	bus := runtime.NewBus(runtime.DefaultCapacity)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	out := openAndWait(t, ctx, bus, NewChatLifecycle())

	cancel()
	expectClosed(t, out)

	require.Eventually(t, func() bool {
		return bus.Subscribers() == 0
	}, time.Second, 5*time.Millisecond)
}

func TestOpen_BusCloseEndsStream(t *testing.T) {
	bus := runtime.NewBus(runtime.DefaultCapacity)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	out := openAndWait(t, ctx, bus, NewChatLifecycle())

	bus.Close()
	expectClosed(t, out)
}
