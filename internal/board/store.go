package board

import (
	"errors"
	"log/slog"
	"sync"
)

var (
	// ErrItemNotFound means the id is absent from the stated source lane.
	ErrItemNotFound = errors.New("item not found in source lane")
	// ErrDuplicateTarget means the id is already present in the target lane;
	// the move is a no-op.
	ErrDuplicateTarget = errors.New("item already present in target lane")
)

// Store is the sole mutable home of the board. Every mutation goes through
// its methods, which is what makes the uniqueness invariant enforceable:
// MoveItem and ReplaceAll both re-check (and if necessary repair) the state
// before returning, so a violation is never observable outside the store.
//
// The Bubble Tea update loop reads it and tea.Cmd goroutines mutate it, so
// access is mutex-guarded.
type Store struct {
	mu    sync.Mutex
	lanes map[Lane][]Item
	log   *slog.Logger
}

// NewStore returns an empty store. logger may be nil.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	lanes := make(map[Lane][]Item, 3)
	for _, l := range Lanes() {
		lanes[l] = nil
	}
	return &Store{lanes: lanes, log: logger}
}

// MoveItem removes id from fromLane and appends it to toLane, preserving the
// relative order of the remaining items in each lane.
func (s *Store) MoveItem(id int64, fromLane, toLane Lane) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.lanes[toLane] {
		if it.ID == id {
			return ErrDuplicateTarget
		}
	}

	src := s.lanes[fromLane]
	idx := -1
	for i, it := range src {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrItemNotFound
	}

	item := src[idx]
	item.Lane = toLane
	s.lanes[fromLane] = append(append([]Item(nil), src[:idx]...), src[idx+1:]...)
	s.lanes[toLane] = append(append([]Item(nil), s.lanes[toLane]...), item)

	s.checkAndRepairLocked("moveItem")
	return nil
}

// ReplaceAll replaces the whole board with the fetched authoritative list,
// used only by reconciliation. Items are bucketed by their Lane field; if
// the same id appears more than once, the first occurrence in input order
// wins and the rest are dropped with a warning, so the result satisfies the
// uniqueness invariant by construction.
func (s *Store) ReplaceAll(items []Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lanes := make(map[Lane][]Item, 3)
	for _, l := range Lanes() {
		lanes[l] = nil
	}
	seen := make(map[int64]Lane, len(items))
	for _, it := range items {
		if first, dup := seen[it.ID]; dup {
			s.log.Warn("replaceAll: item reported in multiple lanes, keeping first",
				"item_id", it.ID, "kept_lane", first, "dropped_lane", it.Lane)
			continue
		}
		if _, ok := lanes[it.Lane]; !ok {
			s.log.Warn("replaceAll: item has unknown lane, defaulting to todo",
				"item_id", it.ID, "lane", it.Lane)
			it.Lane = LaneTodo
		}
		seen[it.ID] = it.Lane
		lanes[it.Lane] = append(lanes[it.Lane], it)
	}
	s.lanes = lanes

	s.checkAndRepairLocked("replaceAll")
}

// Items returns a copy of one lane in order.
func (s *Store) Items(lane Lane) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Item(nil), s.lanes[lane]...)
}

// Find returns the item with the given id, if present anywhere on the board.
func (s *Store) Find(id int64) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range Lanes() {
		for _, it := range s.lanes[l] {
			if it.ID == id {
				return it, true
			}
		}
	}
	return Item{}, false
}

// Contains reports whether lane holds the given id.
func (s *Store) Contains(lane Lane, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.lanes[lane] {
		if it.ID == id {
			return true
		}
	}
	return false
}

// Len returns the total number of items across all lanes.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, l := range Lanes() {
		n += len(s.lanes[l])
	}
	return n
}

// Snapshot captures the current board for later Restore.
type Snapshot struct {
	lanes map[Lane][]Item
}

// Snapshot returns a deep copy of the board state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make(map[Lane][]Item, len(s.lanes))
	for l, items := range s.lanes {
		cp[l] = append([]Item(nil), items...)
	}
	return Snapshot{lanes: cp}
}

// Restore replaces the board with a previously captured snapshot.
func (s *Store) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make(map[Lane][]Item, len(snap.lanes))
	for l, items := range snap.lanes {
		cp[l] = append([]Item(nil), items...)
	}
	for _, l := range Lanes() {
		if _, ok := cp[l]; !ok {
			cp[l] = nil
		}
	}
	s.lanes = cp

	s.checkAndRepairLocked("restore")
}

// checkAndRepairLocked runs the validator after a mutation. Construction
// guarantees mean the repair path should never fire; when it does, that is
// an upstream data-integrity problem worth a loud log line.
func (s *Store) checkAndRepairLocked(op string) {
	rep := Check(s.lanes)
	if rep.Valid {
		return
	}
	s.log.Warn("board invariant violated, repairing",
		"op", op, "duplicate_ids", rep.DuplicateIDs)
	s.lanes = Repair(s.lanes)
	if rep = Check(s.lanes); !rep.Valid {
		// Repair converges in one pass; reaching this line is a bug.
		s.log.Error("board repair did not converge", "op", op,
			"duplicate_ids", rep.DuplicateIDs)
	}
}
