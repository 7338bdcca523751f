package listener

import "fmt"

// State is a point in the listener lifecycle
type State int32

const (
	StateUnbound State = iota
	StateBound
	StateListening
	StateProcessing
	StateShuttingDown
	StateClosed
)

// String returns a human-readable name for the state
func (s State) String() string {
	switch s {
	case StateUnbound:
		return "unbound"
	case StateBound:
		return "bound"
	case StateListening:
		return "listening"
	case StateProcessing:
		return "processing"
	case StateShuttingDown:
		return "shutting-down"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}
