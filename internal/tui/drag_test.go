package tui

import (
	"testing"

	"github.com/jask/sprintdeck/internal/board"
)

func item5() board.Item {
	return board.Item{ID: 5, Title: "Wire telemetry", Lane: board.LaneTodo}
}

func never(board.Lane, int64) bool  { return false }
func always(board.Lane, int64) bool { return true }

func TestDragStartFromIdle(t *testing.T) {
	var s DragSession
	s = s.Start(item5(), board.LaneTodo)

	if s.Phase() != PhaseDragging {
		t.Fatalf("phase = %s, want dragging", s.Phase())
	}
	if s.ItemID() != 5 || s.Source() != board.LaneTodo {
		t.Fatalf("session = %+v", s)
	}
	if !s.Active() {
		t.Fatal("dragging session must report active")
	}
}

func TestDragStartIgnoredWhileActive(t *testing.T) {
	var s DragSession
	s = s.Start(item5(), board.LaneTodo)
	s2 := s.Start(board.Item{ID: 9}, board.LaneDone)

	if s2 != s {
		t.Fatalf("second Start changed the session: %+v", s2)
	}
}

func TestDragOverLastCallWins(t *testing.T) {
	var s DragSession
	s = s.Start(item5(), board.LaneTodo)
	s = s.Over(board.LaneInProgress)
	if s.Phase() != PhaseHovering || s.Target() != board.LaneInProgress {
		t.Fatalf("session = %+v", s)
	}
	s = s.Over(board.LaneDone)
	if s.Target() != board.LaneDone {
		t.Fatalf("target = %s, want done (last dragOver wins)", s.Target())
	}
}

func TestDragOverIgnoredWhenIdle(t *testing.T) {
	var s DragSession
	if got := s.Over(board.LaneDone); got != s {
		t.Fatalf("Over from idle changed the session: %+v", got)
	}
}

func TestDropValid(t *testing.T) {
	var s DragSession
	s = s.Start(item5(), board.LaneTodo)
	s = s.Over(board.LaneInProgress)

	next, ok := s.Drop(board.LaneInProgress, never)
	if !ok {
		t.Fatal("valid drop rejected")
	}
	if next.Phase() != PhaseDropped {
		t.Fatalf("phase = %s, want dropped", next.Phase())
	}
	if next.Source() != board.LaneTodo || next.Target() != board.LaneInProgress {
		t.Fatalf("session = %+v", next)
	}
}

func TestDropOntoSourceLaneIsSilentNoop(t *testing.T) {
	var s DragSession
	s = s.Start(item5(), board.LaneTodo)

	next, ok := s.Drop(board.LaneTodo, never)
	if ok {
		t.Fatal("drop onto source lane must be rejected")
	}
	if next != s {
		t.Fatalf("no-op drop changed the session: %+v", next)
	}
	if !next.Active() {
		t.Fatal("session must remain in its current state after a no-op drop")
	}
}

func TestDropOntoLaneAlreadyContainingItem(t *testing.T) {
	var s DragSession
	s = s.Start(item5(), board.LaneTodo)

	next, ok := s.Drop(board.LaneDone, always)
	if ok {
		t.Fatal("drop onto a lane already containing the item must be rejected")
	}
	if next != s {
		t.Fatalf("no-op drop changed the session: %+v", next)
	}
}

func TestDropFromIdleRejected(t *testing.T) {
	var s DragSession
	if _, ok := s.Drop(board.LaneDone, never); ok {
		t.Fatal("drop without a gesture must be rejected")
	}
}

func TestEndUnconditional(t *testing.T) {
	var s DragSession
	for _, setup := range []func() DragSession{
		func() DragSession { return s },
		func() DragSession { return s.Start(item5(), board.LaneTodo) },
		func() DragSession { return s.Start(item5(), board.LaneTodo).Over(board.LaneDone) },
		func() DragSession {
			d, _ := s.Start(item5(), board.LaneTodo).Drop(board.LaneDone, never)
			return d
		},
	} {
		got := setup().End()
		if got.Phase() != PhaseIdle || got.Active() {
			t.Fatalf("End from %s did not return to idle", setup().Phase())
		}
	}
}
