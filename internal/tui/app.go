// Package tui renders the sprint board and drives the synchronization
// engine from a Bubble Tea update loop. All I/O runs as tea.Cmds; the model
// itself only ever mutates board state through the store's own methods.
package tui

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/sprintdeck/internal/board"
	"github.com/jask/sprintdeck/internal/config"
	"github.com/jask/sprintdeck/internal/service"
)

// SnapshotSource is the slice of the cache the TUI reads at startup.
type SnapshotSource interface {
	Load(ctx context.Context) ([]board.Item, time.Time, error)
}

// Model is the Bubble Tea model for the board view.
type Model struct {
	cfg      config.Config
	store    *board.Store
	coord    *service.Coordinator
	worker   *service.Reconciler
	notifier *service.Notifier
	pending  *service.PendingSet
	cache    SnapshotSource
	log      *slog.Logger

	keys   keyMap
	width  int
	height int

	laneIdx int
	rowIdx  map[board.Lane]int

	drag        DragSession
	gestureFlag *atomic.Bool // shared with the reconciler's deferral gate

	filtering   bool
	filterInput textinput.Model
	filterQuery string

	// stale means the board was painted from the local cache and no live
	// fetch has succeeded yet; transitions are rejected while stale.
	stale  bool
	loaded bool
}

// Deps bundles the engine components the TUI drives.
type Deps struct {
	Store    *board.Store
	Coord    *service.Coordinator
	Worker   *service.Reconciler
	Notifier *service.Notifier
	Pending  *service.PendingSet
	Cache    SnapshotSource // may be nil
	Log      *slog.Logger
}

// New wires the model and the reconciler's gesture gate.
func New(cfg config.Config, d Deps) Model {
	if d.Log == nil {
		d.Log = slog.Default()
	}
	flag := &atomic.Bool{}
	d.Worker.GestureActive = flag.Load

	ti := textinput.New()
	ti.Placeholder = "filter items"
	ti.Prompt = "/"
	ti.CharLimit = 64

	rows := make(map[board.Lane]int, 3)
	for _, l := range board.Lanes() {
		rows[l] = 0
	}

	return Model{
		cfg:         cfg,
		store:       d.Store,
		coord:       d.Coord,
		worker:      d.Worker,
		notifier:    d.Notifier,
		pending:     d.Pending,
		cache:       d.Cache,
		log:         d.Log,
		keys:        newKeyMap(),
		rowIdx:      rows,
		gestureFlag: flag,
		filterInput: ti,
		stale:       true,
	}
}

// Init paints from the cache and starts the first live fetch in parallel.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadCacheCmd(m.cache), refreshCmd(m.worker))
}

// currentLane returns the lane under the cursor.
func (m Model) currentLane() board.Lane {
	lanes := board.Lanes()
	if m.laneIdx < 0 || m.laneIdx >= len(lanes) {
		return board.LaneTodo
	}
	return lanes[m.laneIdx]
}

// visibleItems returns the (possibly filtered) items of a lane.
func (m Model) visibleItems(lane board.Lane) []board.Item {
	items := m.store.Items(lane)
	if m.filterQuery == "" {
		return items
	}
	return filterItems(items, m.filterQuery)
}

// itemUnderCursor returns the item the cursor points at, if any.
func (m Model) itemUnderCursor() (board.Item, bool) {
	lane := m.currentLane()
	items := m.visibleItems(lane)
	row := m.rowIdx[lane]
	if row < 0 || row >= len(items) {
		return board.Item{}, false
	}
	return items[row], true
}

// clampCursors keeps every lane cursor inside its visible item list.
func (m *Model) clampCursors() {
	for _, l := range board.Lanes() {
		n := len(m.visibleItems(l))
		if m.rowIdx[l] >= n {
			m.rowIdx[l] = n - 1
		}
		if m.rowIdx[l] < 0 {
			m.rowIdx[l] = 0
		}
	}
}
