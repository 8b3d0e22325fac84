package log

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
)

// Buffer queues entries for a single worker goroutine that fans them out
// to the transporters. Send never blocks. A full queue sheds its oldest
// entry below Warn first, so failed tips and rejected requests outlast a
// burst of request logs.
type Buffer struct {
	transporters []Transporter
	capacity     int

	mu     sync.Mutex
	ready  *sync.Cond
	queue  []Entry
	closed bool

	dropped  atomic.Int64
	failures []atomic.Int64 // per transporter, same order
	done     chan struct{}
}

// NewBuffer starts a buffer holding up to capacity pending entries.
func NewBuffer(capacity int, transporters ...Transporter) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	b := &Buffer{
		transporters: transporters,
		capacity:     capacity,
		queue:        make([]Entry, 0, capacity),
		failures:     make([]atomic.Int64, len(transporters)),
		done:         make(chan struct{}),
	}
	b.ready = sync.NewCond(&b.mu)

	go b.run()

	return b
}

// Send queues entry. It is safe for concurrent use and a no-op after Close.
func (b *Buffer) Send(entry Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	if len(b.queue) >= b.capacity && !b.shed(entry.Level) {
		b.dropped.Add(1)
		return
	}
	b.queue = append(b.queue, entry)
	b.ready.Signal()
}

// shed frees one slot for an entry at level. It evicts the oldest entry
// below Warn, or the oldest entry at all when level is Warn or above.
// Callers hold mu.
func (b *Buffer) shed(level Level) bool {
	victim := -1
	for i := range b.queue {
		if b.queue[i].Level < Warn {
			victim = i
			break
		}
	}
	if victim < 0 {
		if level < Warn {
			return false
		}
		victim = 0
	}
	b.queue = append(b.queue[:victim], b.queue[victim+1:]...)
	b.dropped.Add(1)
	return true
}

// DroppedCount is the number of entries discarded because the queue was full.
func (b *Buffer) DroppedCount() int64 {
	return b.dropped.Load()
}

// Failures returns how many writes each transporter rejected, by name.
func (b *Buffer) Failures() map[string]int64 {
	out := make(map[string]int64, len(b.transporters))
	for i, t := range b.transporters {
		out[t.Name()] += b.failures[i].Load()
	}
	return out
}

// Close delivers whatever is still queued, then closes the transporters.
// Further calls do nothing.
func (b *Buffer) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	b.ready.Broadcast()
	b.mu.Unlock()

	<-b.done

	if n := b.dropped.Load(); n > 0 {
		fmt.Fprintf(os.Stderr, "log buffer dropped %d entries\n", n)
	}
	for _, t := range b.transporters {
		_ = t.Close()
	}
}

func (b *Buffer) run() {
	defer close(b.done)

	batch := make([]Entry, 0, b.capacity)
	for {
		b.mu.Lock()
		for len(b.queue) == 0 && !b.closed {
			b.ready.Wait()
		}
		if len(b.queue) == 0 {
			b.mu.Unlock()
			return
		}
		batch = append(batch[:0], b.queue...)
		b.queue = b.queue[:0]
		b.mu.Unlock()

		for _, entry := range batch {
			b.deliver(entry)
		}
	}
}

func (b *Buffer) deliver(entry Entry) {
	for i, t := range b.transporters {
		if err := t.Write(entry); err != nil {
			b.failures[i].Add(1)
			fmt.Fprintf(os.Stderr, "log transporter %q failed: %v\n", t.Name(), err)
		}
	}
}
