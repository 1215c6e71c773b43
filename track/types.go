package track

// Handle is an opaque reference to a slot in a tracker.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Event types for ownership lifecycle notifications.
type EventType uint8

const (
	EventAdopted EventType = iota
	EventDisposed
	EventReleased
	EventMoved
)

// Event represents an ownership lifecycle event.
type Event struct {
	Label  string
	Handle Handle
	Type   EventType
}

// String returns the event type's lowercase name.
func (e EventType) String() string {
	switch e {
	case EventAdopted:
		return "adopted"
	case EventDisposed:
		return "disposed"
	case EventReleased:
		return "released"
	case EventMoved:
		return "moved"
	default:
		return "unknown"
	}
}

// Observer receives notifications about ownership lifecycle events.
type Observer interface {
	OnOwnershipEvent(Event)
}

// Registry is the bookkeeping surface of a Tracker.
type Registry interface {
	// Register records that a resource became owned and returns its slot.
	Register(label string) Handle

	// Disposed marks a slot's resource as destroyed.
	Disposed(handle Handle) bool

	// Released marks a slot's resource as having escaped the handle system.
	Released(handle Handle) bool

	// Moved records an ownership transfer between handles; the slot stays live.
	Moved(handle Handle) bool

	// Label returns the label recorded for a live slot.
	Label(handle Handle) (string, bool)

	// Live returns the number of live slots.
	Live() int

	// Each iterates over all live slots.
	Each(func(Handle, string) bool)

	// Subscribe adds an observer for lifecycle events.
	Subscribe(Observer)

	// Unsubscribe removes an observer.
	Unsubscribe(Observer)

	// Close audits remaining live slots and stops accepting registrations.
	Close() error
}
