package valueobjects

import "fmt"

// Status is the lifecycle state of a ticket.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusClosed     Status = "closed"
)

var validStatuses = map[Status]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusClosed:     true,
}

// statusTransitions is the allowed state machine: tickets move forward to
// in_progress/closed and closed tickets may be reopened. Closed is not
// terminal.
var statusTransitions = map[Status][]Status{
	StatusOpen:       {StatusInProgress, StatusClosed},
	StatusInProgress: {StatusClosed},
	StatusClosed:     {StatusOpen},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) CanTransitionTo(newStatus Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (s Status) IsOpen() bool       { return s == StatusOpen }
func (s Status) IsInProgress() bool { return s == StatusInProgress }
func (s Status) IsClosed() bool     { return s == StatusClosed }

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return status, nil
}

// AllStatuses returns every valid status, in lifecycle order.
func AllStatuses() []Status {
	return []Status{StatusOpen, StatusInProgress, StatusClosed}
}
