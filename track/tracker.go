package track

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/owned/errors"
)

// Tracker is an in-memory registry of live owned resources. Slots are
// reused through a free list. Closing the tracker audits whatever is
// still live: each leak is logged and the returned error carries the
// leak count.
//
// Unlike a handle itself, a Tracker is shared infrastructure and is
// safe for concurrent use.
type Tracker struct {
	entries   []entry
	freeList  []Handle
	observers []Observer
	mu        sync.RWMutex
	obsMu     sync.RWMutex
	closed    bool
}

type entry struct {
	label string
	live  bool
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		entries:  make([]entry, 0, 64),
		freeList: make([]Handle, 0, 16),
	}
}

// Register records that a resource became owned and returns its slot.
// Returns 0 if the tracker is closed.
func (t *Tracker) Register(label string) Handle {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return 0
	}

	e := entry{label: label, live: true}

	var handle Handle
	if len(t.freeList) > 0 {
		handle = t.freeList[len(t.freeList)-1]
		t.freeList = t.freeList[:len(t.freeList)-1]
		t.entries[handle-1] = e
	} else {
		t.entries = append(t.entries, e)
		handle = Handle(len(t.entries))
	}
	t.mu.Unlock()

	t.notify(Event{Type: EventAdopted, Handle: handle, Label: label})
	return handle
}

// Disposed marks a slot's resource as destroyed and frees the slot.
func (t *Tracker) Disposed(handle Handle) bool {
	return t.retire(handle, EventDisposed)
}

// Released marks a slot's resource as having escaped the handle system
// and frees the slot. The tracker stops auditing the resource; the
// caller owns its eventual disposal.
func (t *Tracker) Released(handle Handle) bool {
	return t.retire(handle, EventReleased)
}

// Moved records an ownership transfer between handles. The slot stays
// live; the event exists for observers following where ownership went.
func (t *Tracker) Moved(handle Handle) bool {
	label, ok := t.Label(handle)
	if !ok {
		return false
	}
	t.notify(Event{Type: EventMoved, Handle: handle, Label: label})
	return true
}

// Label returns the label recorded for a live slot.
func (t *Tracker) Label(handle Handle) (string, bool) {
	if handle == 0 {
		return "", false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	idx := handle - 1
	if int(idx) >= len(t.entries) {
		return "", false
	}

	e := t.entries[idx]
	if !e.live {
		return "", false
	}
	return e.label, true
}

// Live returns the number of live slots.
func (t *Tracker) Live() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for _, e := range t.entries {
		if e.live {
			count++
		}
	}
	return count
}

// Each iterates over all live slots.
func (t *Tracker) Each(fn func(Handle, string) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i, e := range t.entries {
		if e.live {
			if !fn(Handle(i+1), e.label) {
				break
			}
		}
	}
}

// Subscribe adds an observer for lifecycle events.
func (t *Tracker) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Tracker) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Close audits remaining live slots and stops accepting registrations.
// Every slot still live is a leak: each is logged, and if any exist the
// returned error carries the count. Close is idempotent; repeat calls
// return nil.
func (t *Tracker) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true

	var leaks []entry
	for i := range t.entries {
		if t.entries[i].live {
			leaks = append(leaks, t.entries[i])
			t.entries[i].live = false
		}
	}
	t.entries = nil
	t.freeList = nil
	t.mu.Unlock()

	if len(leaks) == 0 {
		return nil
	}

	log := Logger()
	for _, e := range leaks {
		log.Warn("resource still owned at tracker close",
			zap.String("label", e.label))
	}
	return errors.Leaked(len(leaks))
}

func (t *Tracker) retire(handle Handle, ev EventType) bool {
	if handle == 0 {
		return false
	}

	t.mu.Lock()
	idx := handle - 1
	if int(idx) >= len(t.entries) {
		t.mu.Unlock()
		return false
	}

	e := &t.entries[idx]
	if !e.live {
		t.mu.Unlock()
		return false
	}

	label := e.label
	e.live = false
	e.label = ""
	t.freeList = append(t.freeList, handle)
	t.mu.Unlock()

	t.notify(Event{Type: ev, Handle: handle, Label: label})
	return true
}

func (t *Tracker) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnOwnershipEvent(e)
	}
}
