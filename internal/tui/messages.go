package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/sprintdeck/internal/board"
	"github.com/jask/sprintdeck/internal/service"
)

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

// cacheLoadedMsg carries the startup snapshot from the local cache.
type cacheLoadedMsg struct {
	items     []board.Item
	fetchedAt time.Time
	err       error
}

// refreshDoneMsg reports one reconciliation pass (initial load, manual
// refresh, or post-commit pass — they are all the same pass).
type refreshDoneMsg struct {
	status service.ReconcileStatus
}

// transitionDoneMsg reports a finished TransitionCoordinator call.
type transitionDoneMsg struct {
	res service.Result
}

// reconcileTickMsg fires after the post-commit delay.
type reconcileTickMsg struct{}

// noteExpiredMsg triggers a redraw when the notification slot should clear.
// seq guards against a newer notification having replaced the one this
// timer was armed for.
type noteExpiredMsg struct {
	seq uint64
}

// ---------------------------------------------------------------------------
// Commands
// ---------------------------------------------------------------------------

// loadCacheCmd reads the startup snapshot. Cache may be nil.
func loadCacheCmd(c SnapshotSource) tea.Cmd {
	return func() tea.Msg {
		if c == nil {
			return cacheLoadedMsg{}
		}
		items, fetchedAt, err := c.Load(context.Background())
		return cacheLoadedMsg{items: items, fetchedAt: fetchedAt, err: err}
	}
}

// refreshCmd runs one reconciliation pass.
func refreshCmd(w *service.Reconciler) tea.Cmd {
	return func() tea.Msg {
		return refreshDoneMsg{status: w.RunOnce(context.Background())}
	}
}

// moveCmd hands a dropped item to the coordinator.
func moveCmd(c *service.Coordinator, itemID int64, source, target board.Lane) tea.Cmd {
	return func() tea.Msg {
		return transitionDoneMsg{res: c.Move(context.Background(), itemID, source, target)}
	}
}

// reconcileTickCmd schedules the post-commit reconciliation pass.
func reconcileTickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return reconcileTickMsg{}
	})
}

// noteExpiryCmd schedules the redraw that clears an expired notification.
func noteExpiryCmd(ttl time.Duration, seq uint64) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return noteExpiredMsg{seq: seq}
	})
}
