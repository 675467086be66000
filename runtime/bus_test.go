package runtime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ichat/domain"
	"ichat/domain/event"
)

func scanned(id string) event.DomainEvent {
	return event.QRScanned{DeviceUUID: id}
}

func TestBus_DeliversInPublishOrder(t *testing.T) {
	req := require.New(t)
	bus := NewBus(DefaultCapacity)
	defer bus.Close()

	cursor := bus.Subscribe()
	defer cursor.Close()

	bus.Publish(scanned("a"))
	bus.Publish(scanned("b"))
	bus.Publish(scanned("c"))

	ctx := context.Background()
	for _, want := range []string{"a", "b", "c"} {
		evt, err := cursor.Next(ctx)
		req.NoError(err)
		req.Equal(event.QRScanned{DeviceUUID: want}, evt)
	}
}

func TestBus_NoHistoryReplay(t *testing.T) {
	req := require.New(t)
	bus := NewBus(DefaultCapacity)
	defer bus.Close()

	// Published before anyone subscribes, so it must never be seen.
	bus.Publish(scanned("before"))

	cursor := bus.Subscribe()
	defer cursor.Close()

	bus.Publish(scanned("after"))

	evt, err := cursor.Next(context.Background())
	req.NoError(err)
	req.Equal(event.QRScanned{DeviceUUID: "after"}, evt)
}

func TestBus_IndependentCursors(t *testing.T) {
	req := require.New(t)
	bus := NewBus(DefaultCapacity)
	defer bus.Close()

	fast := bus.Subscribe()
	defer fast.Close()
	slow := bus.Subscribe()
	defer slow.Close()

	bus.Publish(scanned("a"))
	bus.Publish(scanned("b"))

	ctx := context.Background()

	// The fast cursor drains both events.
	for _, want := range []string{"a", "b"} {
		evt, err := fast.Next(ctx)
		req.NoError(err)
		req.Equal(event.QRScanned{DeviceUUID: want}, evt)
	}

	// The slow cursor still sees both, unaffected by the fast one.
	for _, want := range []string{"a", "b"} {
		evt, err := slow.Next(ctx)
		req.NoError(err)
		req.Equal(event.QRScanned{DeviceUUID: want}, evt)
	}
}

func TestBus_LaggedExactlyOnceThenResumesFromHead(t *testing.T) {
	req := require.New(t)
	capacity := 4
	bus := NewBus(capacity)
	defer bus.Close()

	cursor := bus.Subscribe()
	defer cursor.Close()

	// Overflow the ring while the cursor never reads.
	for i := 0; i < capacity+3; i++ {
		bus.Publish(event.NewMessage{Message: domain.Message{ID: int64(i)}})
	}

	ctx := context.Background()

	_, err := cursor.Next(ctx)
	req.ErrorIs(err, ErrLagged)

	// Resumption is from the head at lag detection, not from the oldest
	// retained entry: pre-lag survivors are skipped entirely.
	bus.Publish(event.NewMessage{Message: domain.Message{ID: 100}})
	evt, err := cursor.Next(ctx)
	req.NoError(err)
	req.Equal(event.NewMessage{Message: domain.Message{ID: 100}}, evt)
}

func TestBus_WithinCapacityNeverLags(t *testing.T) {
	req := require.New(t)
	capacity := 4
	bus := NewBus(capacity)
	defer bus.Close()

	cursor := bus.Subscribe()
	defer cursor.Close()

	for i := 0; i < capacity; i++ {
		bus.Publish(event.NewMessage{Message: domain.Message{ID: int64(i)}})
	}

	ctx := context.Background()
	for i := 0; i < capacity; i++ {
		evt, err := cursor.Next(ctx)
		req.NoError(err)
		req.Equal(event.NewMessage{Message: domain.Message{ID: int64(i)}}, evt)
	}
}

func TestBus_NextBlocksUntilPublish(t *testing.T) {
	req := require.New(t)
	bus := NewBus(DefaultCapacity)
	defer bus.Close()

	cursor := bus.Subscribe()
	defer cursor.Close()

	got := make(chan event.DomainEvent, 1)
	go func() {
		evt, err := cursor.Next(context.Background())
		if err == nil {
			got <- evt
		}
	}()

	// Give the reader time to park before publishing.
	time.Sleep(20 * time.Millisecond)
	bus.Publish(scanned("wake"))

	select {
	case evt := <-got:
		req.Equal(event.QRScanned{DeviceUUID: "wake"}, evt)
	case <-time.After(500 * time.Millisecond):
		req.Fail("blocked reader was never woken")
	}
}

func TestBus_NextHonoursContextCancellation(t *testing.T) {
	req := require.New(t)
	bus := NewBus(DefaultCapacity)
	defer bus.Close()

	cursor := bus.Subscribe()
	defer cursor.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := cursor.Next(ctx)
	req.ErrorIs(err, context.DeadlineExceeded)
}

func TestBus_CloseDrainsThenEnds(t *testing.T) {
	req := require.New(t)
	bus := NewBus(DefaultCapacity)

	cursor := bus.Subscribe()
	defer cursor.Close()

	bus.Publish(scanned("last"))
	bus.Close()

	ctx := context.Background()

	// Events published before close remain readable.
	evt, err := cursor.Next(ctx)
	req.NoError(err)
	req.Equal(event.QRScanned{DeviceUUID: "last"}, evt)

	_, err = cursor.Next(ctx)
	req.ErrorIs(err, ErrClosed)

	// Publishing after close is a silent no-op.
	bus.Publish(scanned("ignored"))
	_, err = cursor.Next(ctx)
	req.ErrorIs(err, ErrClosed)
}

func TestBus_SubscriberAccounting(t *testing.T) {
	req := require.New(t)
	bus := NewBus(DefaultCapacity)
	defer bus.Close()

	req.Equal(0, bus.Subscribers())

	first := bus.Subscribe()
	second := bus.Subscribe()
	req.Equal(2, bus.Subscribers())

	first.Close()
	// A second close must not corrupt the count.
	first.Close()
	req.Equal(1, bus.Subscribers())

	second.Close()
	req.Equal(0, bus.Subscribers())

	_, err := first.Next(context.Background())
	req.ErrorIs(err, ErrClosed)
}
