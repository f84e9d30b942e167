package key

// EventType classifies the type of input event.
type EventType uint8

const (
	// EventNone is the zero event, returned when no complete event is
	// available
	EventNone EventType = iota
	// EventKeyPress is a keyboard event
	EventKeyPress
	// EventFocusIn is reported when the terminal window gains focus
	EventFocusIn
	// EventFocusOut is reported when the terminal window loses focus
	EventFocusOut
)

// Event is a decoded input event. This decouples all code above the
// decoder from the raw escape grammar.
type Event struct {
	Type EventType
	Key  Key
}
