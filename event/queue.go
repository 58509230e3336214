package event

import "sync/atomic"

const (
	// QueueSize is the ring capacity, must be a power of two
	QueueSize  = 1024
	bufferMask = QueueSize - 1
)

// Queue is a lock-free MPSC ring buffer of events
// Push is safe from multiple producers; Consume runs on the frame loop only
// When full the oldest unread events are overwritten
type Queue struct {
	events    [QueueSize]Event
	published [QueueSize]atomic.Bool
	head      atomic.Uint64
	tail      atomic.Uint64
	dropped   atomic.Uint64
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event
func (q *Queue) Push(ev Event) {
	for {
		tail := q.tail.Load()
		next := tail + 1
		if !q.tail.CompareAndSwap(tail, next) {
			continue
		}
		idx := tail & bufferMask
		q.events[idx] = ev
		q.published[idx].Store(true) // after the write

		head := q.head.Load()
		if next-head > QueueSize {
			if q.head.CompareAndSwap(head, next-QueueSize) {
				q.dropped.Add(next - QueueSize - head)
			}
		}
		return
	}
}

// Consume returns pending events in FIFO order
func (q *Queue) Consume() []Event {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if tail == head {
			return nil
		}

		avail := tail - head
		if avail > QueueSize {
			avail = QueueSize
			head = tail - QueueSize
		}

		out := make([]Event, 0, avail)
		for i := uint64(0); i < avail; i++ {
			idx := (head + i) & bufferMask
			if !q.published[idx].Load() {
				break // writer incomplete
			}
			out = append(out, q.events[idx])
			q.events[idx] = Event{}
			q.published[idx].Store(false)
		}

		if q.head.CompareAndSwap(head, head+uint64(len(out))) {
			return out
		}
	}
}

// Len returns the number of unread events
func (q *Queue) Len() int {
	n := q.tail.Load() - q.head.Load()
	if n > QueueSize {
		n = QueueSize
	}
	return int(n)
}

// Dropped returns how many events were overwritten before being read
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}
