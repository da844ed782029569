package player

import "time"

// EventKind identifies an engine notification.
type EventKind int

const (
	// EventMetadataLoaded fires once per Load, when the duration is known.
	EventMetadataLoaded EventKind = iota
	// EventTimeUpdate fires periodically while playing.
	EventTimeUpdate
	// EventEnded fires when the loaded source plays to its end.
	EventEnded
	// EventError reports a failure that happened outside a direct call.
	EventError
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventMetadataLoaded:
		return "MetadataLoaded"
	case EventTimeUpdate:
		return "TimeUpdate"
	case EventEnded:
		return "Ended"
	case EventError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Event is a single engine notification. Load is the number of the Load
// call the event belongs to: every call counts, failed ones included, so
// a caller counting its own calls can drop events from older loads.
type Event struct {
	Kind     EventKind
	URI      string
	Load     uint64
	Duration time.Duration // EventMetadataLoaded
	Position time.Duration // EventTimeUpdate
	Err      error         // EventError
}

const (
	eventBufferSize  = 32
	timeUpdatePeriod = 250 * time.Millisecond
)
