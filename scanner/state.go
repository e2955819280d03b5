package scanner

// State is a scan lifecycle stage. Transitions only move forward:
// Idle -> Scanning -> Draining -> Done.
type State int32

const (
	Idle State = iota
	Scanning
	Draining
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Scanning:
		return "scanning"
	case Draining:
		return "draining"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}
