package service

import (
	"context"
	"log/slog"

	"github.com/jask/sprintdeck/internal/board"
	"github.com/jask/sprintdeck/internal/taskapi"
)

// ListAPI is the slice of the task service the reconciler needs.
type ListAPI interface {
	ListItems(ctx context.Context, project string) ([]taskapi.Item, error)
}

// SnapshotCache persists the last authoritative fetch, best-effort.
type SnapshotCache interface {
	Save(ctx context.Context, items []board.Item) error
}

// ReconcileStatus reports what one pass did.
type ReconcileStatus string

const (
	// ReconcileApplied means the fetched list replaced the board.
	ReconcileApplied ReconcileStatus = "applied"
	// ReconcileDeferred means a gesture or transition was in flight, so the
	// pass aborted without mutating anything. Retried on the next trigger.
	ReconcileDeferred ReconcileStatus = "deferred"
	// ReconcileFailed means the fetch errored; logged and swallowed.
	ReconcileFailed ReconcileStatus = "failed"
)

// Reconciler periodically pulls authoritative state and merges it into the
// board. It treats the fetched list as ground truth for existence and
// attributes, not just lane.
type Reconciler struct {
	Store   *board.Store
	API     ListAPI
	Pending *PendingSet
	Cache   SnapshotCache // may be nil
	Log     *slog.Logger

	// GestureActive reports whether a drag gesture is in progress. A pass
	// never clobbers an active gesture.
	GestureActive func() bool

	Project string
}

// RunOnce executes one reconciliation pass. Best-effort: every failure is
// logged and swallowed, never surfaced to the user.
func (r *Reconciler) RunOnce(ctx context.Context) ReconcileStatus {
	log := r.logger()

	items, err := r.API.ListItems(ctx, r.Project)
	if err != nil {
		log.Warn("reconcile fetch failed", "err", err)
		return ReconcileFailed
	}

	if (r.GestureActive != nil && r.GestureActive()) || !r.Pending.Empty() {
		log.Debug("reconcile deferred, gesture or transition in flight")
		return ReconcileDeferred
	}

	converted := ConvertItems(items, log)
	r.Store.ReplaceAll(converted)
	log.Info("reconcile applied", "items", len(converted))

	if r.Cache != nil {
		if err := r.Cache.Save(ctx, converted); err != nil {
			log.Warn("snapshot cache save failed", "err", err)
		}
	}
	return ReconcileApplied
}

// ConvertItems maps wire items to board items. Existence is ground truth, so
// unknown status or priority strings never drop an item; they fall back to
// todo / medium with a warning.
func ConvertItems(items []taskapi.Item, log *slog.Logger) []board.Item {
	if log == nil {
		log = slog.Default()
	}
	out := make([]board.Item, 0, len(items))
	for _, it := range items {
		lane, ok := board.LaneForStatus(it.Status)
		if !ok {
			log.Warn("item has unknown status, defaulting to todo",
				"item_id", it.ID, "status", it.Status)
			lane = board.LaneTodo
		}
		prio, ok := board.ParsePriority(it.Priority)
		if !ok && it.Priority != "" {
			log.Warn("item has unknown priority, defaulting to medium",
				"item_id", it.ID, "priority", it.Priority)
		}
		out = append(out, board.Item{
			ID:       it.ID,
			Title:    it.Title,
			Priority: prio,
			Assignee: board.DisplayNames(it.Assignees),
			Lane:     lane,
		})
	}
	return out
}

func (r *Reconciler) logger() *slog.Logger {
	if r.Log != nil {
		return r.Log
	}
	return slog.Default()
}
