package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/sprintdeck/internal/board"
	"github.com/jask/sprintdeck/internal/service"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case cacheLoadedMsg:
		return m.handleCacheLoaded(msg)
	case refreshDoneMsg:
		return m.handleRefreshDone(msg)
	case transitionDoneMsg:
		return m.handleTransitionDone(msg)
	case reconcileTickMsg:
		return m, refreshCmd(m.worker)
	case noteExpiredMsg:
		// Redraw only; Current() already reports the slot as expired. A
		// newer notification re-armed its own timer.
		return m, nil
	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilterInput(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleCacheLoaded(msg cacheLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Warn("cache load failed", "err", msg.err)
		return m, nil
	}
	// The live fetch may have already landed; never clobber it with the
	// stale snapshot.
	if m.loaded || len(msg.items) == 0 {
		return m, nil
	}
	m.store.ReplaceAll(msg.items)
	m.clampCursors()
	m.log.Info("board painted from cache", "items", len(msg.items), "fetched_at", msg.fetchedAt)
	return m, nil
}

func (m Model) handleRefreshDone(msg refreshDoneMsg) (tea.Model, tea.Cmd) {
	if msg.status == service.ReconcileApplied {
		m.stale = false
		m.loaded = true
	}
	m.clampCursors()
	return m, nil
}

func (m Model) handleTransitionDone(msg transitionDoneMsg) (tea.Model, tea.Cmd) {
	m.clampCursors()
	var cmds []tea.Cmd
	if note, ok := m.notifier.Current(); ok {
		cmds = append(cmds, noteExpiryCmd(m.notifier.TTL(), note.Seq))
	}
	if msg.res.Outcome == service.OutcomeApplied {
		cmds = append(cmds, reconcileTickCmd(m.cfg.Reconcile.Delay))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		if m.filterQuery != "" {
			m.filterQuery = ""
			m.filterInput.SetValue("")
			m.clampCursors()
			return m, nil
		}
		// dragEnd: unconditional, never touches the board.
		m.drag = m.drag.End()
		m.gestureFlag.Store(false)
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filterInput.SetValue(m.filterQuery)
		return m, m.filterInput.Focus()

	case key.Matches(msg, m.keys.Refresh):
		return m, refreshCmd(m.worker)

	case key.Matches(msg, m.keys.Left):
		return m.moveLaneCursor(-1), nil

	case key.Matches(msg, m.keys.Right):
		return m.moveLaneCursor(+1), nil

	case key.Matches(msg, m.keys.Up):
		lane := m.currentLane()
		if m.rowIdx[lane] > 0 {
			m.rowIdx[lane]--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		lane := m.currentLane()
		if m.rowIdx[lane] < len(m.visibleItems(lane))-1 {
			m.rowIdx[lane]++
		}
		return m, nil

	case key.Matches(msg, m.keys.Grab):
		return m.handleGrab()
	}
	return m, nil
}

// moveLaneCursor shifts the lane cursor; while a gesture is active this is
// the dragOver transition (last call wins).
func (m Model) moveLaneCursor(delta int) Model {
	lanes := board.Lanes()
	m.laneIdx += delta
	if m.laneIdx < 0 {
		m.laneIdx = 0
	}
	if m.laneIdx > len(lanes)-1 {
		m.laneIdx = len(lanes) - 1
	}
	if m.drag.Active() {
		m.drag = m.drag.Over(m.currentLane())
	}
	return m
}

// handleGrab is dragStart when idle and drop when a gesture is active.
func (m Model) handleGrab() (tea.Model, tea.Cmd) {
	if !m.drag.Active() {
		if m.stale {
			// A move against unconfirmed state could target a deleted item.
			return m, nil
		}
		item, ok := m.itemUnderCursor()
		if !ok {
			return m, nil
		}
		m.drag = m.drag.Start(item, m.currentLane())
		m.gestureFlag.Store(true)
		return m, nil
	}

	next, ok := m.drag.Drop(m.currentLane(), m.store.Contains)
	if !ok {
		// Silent no-op: same lane or duplicate target. Session unchanged.
		m.drag = next
		return m, nil
	}

	// Control passes to the coordinator before dragEnd resets the session;
	// the pending marker is driven by PendingTransition membership, so it
	// outlives the reset.
	cmd := moveCmd(m.coord, next.ItemID(), next.Source(), next.Target())
	m.drag = next.End()
	m.gestureFlag.Store(false)
	return m, cmd
}

func (m Model) updateFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filtering = false
		m.filterQuery = m.filterInput.Value()
		m.filterInput.Blur()
		m.clampCursors()
		return m, nil
	case "esc":
		m.filtering = false
		m.filterInput.SetValue(m.filterQuery)
		m.filterInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}
