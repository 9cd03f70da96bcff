package board

// Lane is one of the three fixed board columns.
type Lane string

const (
	LaneTodo       Lane = "todo"
	LaneInProgress Lane = "in_progress"
	LaneDone       Lane = "done"
)

// Lanes returns every lane in display (and repair-scan) order.
func Lanes() []Lane {
	return []Lane{LaneTodo, LaneInProgress, LaneDone}
}

// Title returns the lane's column header.
func (l Lane) Title() string {
	switch l {
	case LaneTodo:
		return "To Do"
	case LaneInProgress:
		return "In Progress"
	case LaneDone:
		return "Done"
	}
	return string(l)
}

// LaneForStatus maps a remote status string to a lane. The remote uses
// "in_progress" but older payloads carry "inProgress"; both are accepted.
func LaneForStatus(status string) (Lane, bool) {
	switch status {
	case "todo":
		return LaneTodo, true
	case "in_progress", "inProgress":
		return LaneInProgress, true
	case "done":
		return LaneDone, true
	}
	return "", false
}

// StatusFor returns the remote status string for a lane.
func StatusFor(l Lane) string {
	return string(l)
}

// Priority of a work item.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority maps a remote priority string, falling back to medium.
func ParsePriority(s string) (Priority, bool) {
	switch s {
	case "low":
		return PriorityLow, true
	case "medium":
		return PriorityMedium, true
	case "high":
		return PriorityHigh, true
	}
	return PriorityMedium, false
}

// Item is a single work item on the board. Lane is the only attribute this
// subsystem mutates; everything else is replaced wholesale by reconciliation.
type Item struct {
	ID       int64
	Title    string
	Priority Priority
	Assignee string // resolved display string, see assignee.go
	Lane     Lane
}
