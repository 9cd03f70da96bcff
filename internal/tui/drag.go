package tui

import "github.com/jask/sprintdeck/internal/board"

// DragPhase enumerates the states of one pick-up-and-drop gesture.
type DragPhase int

const (
	PhaseIdle DragPhase = iota
	PhaseDragging
	PhaseHovering
	PhaseDropped
	PhaseCancelled
)

func (p DragPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseHovering:
		return "hovering"
	case PhaseDropped:
		return "dropped"
	case PhaseCancelled:
		return "cancelled"
	}
	return "unknown"
}

// DragSession is the transient state of one user gesture. It is a value
// type: every transition returns the next session, and every transition
// function switches exhaustively on the phase. A session always resolves
// back to idle via End.
type DragSession struct {
	phase  DragPhase
	itemID int64
	source board.Lane
	target board.Lane
}

// Phase returns the current phase.
func (s DragSession) Phase() DragPhase { return s.phase }

// ItemID returns the grabbed item's id; meaningful outside idle only.
func (s DragSession) ItemID() int64 { return s.itemID }

// Source returns the lane the item was grabbed from.
func (s DragSession) Source() board.Lane { return s.source }

// Target returns the lane last hovered over.
func (s DragSession) Target() board.Lane { return s.target }

// Active reports whether a gesture is in progress. Reconciliation defers
// while this holds.
func (s DragSession) Active() bool {
	switch s.phase {
	case PhaseIdle, PhaseDropped, PhaseCancelled:
		return false
	case PhaseDragging, PhaseHovering:
		return true
	}
	return false
}

// Start begins a gesture. Only valid from idle; any other phase returns the
// session unchanged.
func (s DragSession) Start(item board.Item, lane board.Lane) DragSession {
	switch s.phase {
	case PhaseIdle:
		return DragSession{phase: PhaseDragging, itemID: item.ID, source: lane, target: lane}
	case PhaseDragging, PhaseHovering, PhaseDropped, PhaseCancelled:
		return s
	}
	return s
}

// Over records the lane currently hovered. Re-enterable; the last call wins.
func (s DragSession) Over(lane board.Lane) DragSession {
	switch s.phase {
	case PhaseDragging, PhaseHovering:
		s.phase = PhaseHovering
		s.target = lane
		return s
	case PhaseIdle, PhaseDropped, PhaseCancelled:
		return s
	}
	return s
}

// Drop attempts to complete the gesture onto lane. The drop is valid only
// when a gesture is in progress, lane differs from the source, and lane does
// not already contain the item; otherwise it is a silent no-op with no state
// change (ok=false) — no network call, no notification.
func (s DragSession) Drop(lane board.Lane, contains func(board.Lane, int64) bool) (DragSession, bool) {
	switch s.phase {
	case PhaseDragging, PhaseHovering:
		if lane == s.source {
			return s, false
		}
		if contains != nil && contains(lane, s.itemID) {
			return s, false
		}
		s.phase = PhaseDropped
		s.target = lane
		return s, true
	case PhaseIdle, PhaseDropped, PhaseCancelled:
		return s, false
	}
	return s, false
}

// End resets the session to idle, unconditionally. Without a prior
// successful Drop this is a cancellation and the board is untouched.
func (s DragSession) End() DragSession {
	return DragSession{}
}
