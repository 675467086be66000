package runtime

import (
	"context"
	"fmt"
	"sync"

	"ichat/domain/event"
)

// DefaultCapacity is how many published events the bus retains. A cursor
// falling further behind than this loses the overwritten events.
const DefaultCapacity = 16

var (
	// ErrLagged tells a subscriber it fell behind the retention window.
	// Its cursor has already been moved to the current head; the next
	// read returns only events published after the lag was detected.
	ErrLagged = fmt.Errorf("subscriber lagged behind bus retention")

	// ErrClosed is returned once the bus is torn down. Outside of tests
	// the bus lives as long as the process, so subscribers treat it as
	// a natural end of stream.
	ErrClosed = fmt.Errorf("bus closed")
)

// Bus is the process-wide multicast hub. Exactly one instance is built at
// startup and handed to every producer and subscriber; there is no global.
//
// Publish never blocks: slow subscribers lose history instead of slowing
// producers down. All publishes go through one critical section, so every
// cursor observes the same total order.
type Bus struct {
	mu     sync.Mutex
	ring   []event.DomainEvent
	head   uint64
	wake   chan struct{}
	subs   map[*Cursor]struct{}
	closed bool
}

func NewBus(capacity int) *Bus {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Bus{
		ring: make([]event.DomainEvent, capacity),
		wake: make(chan struct{}),
		subs: make(map[*Cursor]struct{}),
	}
}

// Publish appends the event to the ring, overwriting the oldest retained
// entry once capacity is exceeded, and wakes every blocked cursor.
// Publishing with no subscribers attached is a no-op, not an error.
func (b *Bus) Publish(e event.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.ring[b.head%uint64(len(b.ring))] = e
	b.head++
	close(b.wake)
	b.wake = make(chan struct{})
}

// Subscribe returns a cursor positioned at "now". History published before
// the call is never replayed.
func (b *Bus) Subscribe() *Cursor {
	b.mu.Lock()
	defer b.mu.Unlock()

	c := &Cursor{bus: b, next: b.head}
	b.subs[c] = struct{}{}
	return c
}

// Subscribers reports how many cursors are currently attached.
func (b *Bus) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close tears the bus down. Cursors drain what they can still read and
// then get ErrClosed. Only used on process exit and in tests.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	close(b.wake)
}

// Cursor is a subscriber's private read position. Not safe for concurrent
// use; each subscriber task owns exactly one.
type Cursor struct {
	bus      *Bus
	next     uint64
	detached bool
}

// Next blocks until an event is available, the context is cancelled, or
// the bus is closed. When the cursor has fallen more than the bus capacity
// behind it returns ErrLagged exactly once and resumes from the head.
func (c *Cursor) Next(ctx context.Context) (event.DomainEvent, error) {
	for {
		c.bus.mu.Lock()
		if c.detached {
			c.bus.mu.Unlock()
			return nil, ErrClosed
		}
		if behind := c.bus.head - c.next; behind > 0 {
			if behind > uint64(len(c.bus.ring)) {
				c.next = c.bus.head
				c.bus.mu.Unlock()
				return nil, ErrLagged
			}
			e := c.bus.ring[c.next%uint64(len(c.bus.ring))]
			c.next++
			c.bus.mu.Unlock()
			return e, nil
		}
		if c.bus.closed {
			c.bus.mu.Unlock()
			return nil, ErrClosed
		}
		wake := c.bus.wake
		c.bus.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-wake:
		}
	}
}

// Close releases the cursor's slot in the bus registry. Abandoned cursors
// would only ever lag, but reclaiming them keeps the accounting bounded.
func (c *Cursor) Close() {
	c.bus.mu.Lock()
	defer c.bus.mu.Unlock()

	if !c.detached {
		c.detached = true
		delete(c.bus.subs, c)
	}
}
