package consumable

import "strconv"

// Status is the lifecycle state of a Poller.
type Status int32

const (
	// StatusIdle is the zero value: Run has not been called yet.
	StatusIdle Status = iota
	// StatusRunning means Run is polling.
	StatusRunning
	// StatusDraining means the poller is taking out the last matching records before it stops.
	StatusDraining
	// StatusStopped means the poller has returned from Run.
	StatusStopped
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusRunning:
		return "Running"
	case StatusDraining:
		return "Draining"
	case StatusStopped:
		return "Stopped"
	default:
		return "Status(" + strconv.Itoa(int(s)) + ")"
	}
}
