// Package service implements the optimistic synchronization engine behind
// the board: per-item transition coordination against an unreliable
// two-endpoint remote, background reconciliation, and transient user
// notifications.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jask/sprintdeck/internal/board"
	"github.com/jask/sprintdeck/internal/taskapi"
)

// Outcome is the result of a transition, communicated to the UI layer.
type Outcome string

const (
	// OutcomeApplied means the move is durable remotely.
	OutcomeApplied Outcome = "applied"
	// OutcomeRolledBack means both endpoints failed and the board was
	// restored to its pre-move snapshot.
	OutcomeRolledBack Outcome = "rolledBack"
	// OutcomeBusy means a prior transition for the same item is still in
	// flight; nothing was applied, nothing is queued.
	OutcomeBusy Outcome = "busy"
	// OutcomeFailed means the local optimistic apply itself failed; no
	// network call was made.
	OutcomeFailed Outcome = "failed"
)

// ErrTransitionBusy is the error carried by an OutcomeBusy result.
var ErrTransitionBusy = errors.New("transition already in flight for item")

// Result describes one finished Move call.
type Result struct {
	Outcome Outcome
	ItemID  int64
	Target  board.Lane
	Err     error
}

// StatusAPI is the slice of the task service the coordinator needs.
type StatusAPI interface {
	SetStatus(ctx context.Context, itemID int64, status string) (taskapi.Item, error)
	UpdateItem(ctx context.Context, itemID int64, fields map[string]any) (taskapi.Item, error)
}

// Coordinator executes a lane change: optimistic apply, remote persistence
// with fallback, rollback on double failure. Calls for different items may
// run concurrently; the pending set enforces per-item mutual exclusion.
type Coordinator struct {
	Store    *board.Store
	API      StatusAPI
	Pending  *PendingSet
	Notifier *Notifier
	Log      *slog.Logger
}

// Move makes the lane change for itemID durable. It suspends only at the
// two network calls; its own mutations execute in the stated order with no
// interleaving, and it emits exactly one notification unless the move was
// rejected locally.
func (c *Coordinator) Move(ctx context.Context, itemID int64, source, target board.Lane) Result {
	log := c.logger()

	if !c.Pending.TryAcquire(itemID) {
		log.Debug("transition rejected, item busy", "item_id", itemID)
		return Result{Outcome: OutcomeBusy, ItemID: itemID, Target: target, Err: ErrTransitionBusy}
	}

	snap := c.Store.Snapshot()
	title := itemLabel(c.Store, itemID)

	// Optimistic apply: visible before any network I/O to hide latency.
	if err := c.Store.MoveItem(itemID, source, target); err != nil {
		c.Pending.Release(itemID)
		log.Warn("optimistic apply rejected", "item_id", itemID,
			"source", source, "target", target, "err", err)
		return Result{Outcome: OutcomeFailed, ItemID: itemID, Target: target, Err: err}
	}

	status := board.StatusFor(target)

	_, primaryErr := c.API.SetStatus(ctx, itemID, status)
	if primaryErr == nil {
		return c.commit(itemID, target, title)
	}
	log.Debug("primary status endpoint failed, trying fallback",
		"item_id", itemID, "err", primaryErr)

	_, fallbackErr := c.API.UpdateItem(ctx, itemID, map[string]any{"status": status})
	if fallbackErr == nil {
		return c.commit(itemID, target, title)
	}

	// Both endpoints failed: restore the snapshot before anything is
	// observable, then surface exactly one error notification.
	c.Store.Restore(snap)
	c.Pending.Release(itemID)
	log.Error("transition failed on both endpoints, rolled back",
		"item_id", itemID, "target", target,
		"primary_err", primaryErr, "fallback_err", fallbackErr)
	c.Notifier.Error(fmt.Sprintf("Couldn't move %s to %s: %s",
		title, target.Title(), taskapi.UserMessage(fallbackErr)))
	return Result{Outcome: OutcomeRolledBack, ItemID: itemID, Target: target, Err: fallbackErr}
}

func (c *Coordinator) commit(itemID int64, target board.Lane, title string) Result {
	c.Pending.Release(itemID)
	c.Notifier.Success(fmt.Sprintf("Moved %s to %s", title, target.Title()))
	c.logger().Info("transition committed", "item_id", itemID, "target", target)
	return Result{Outcome: OutcomeApplied, ItemID: itemID, Target: target}
}

func (c *Coordinator) logger() *slog.Logger {
	if c.Log != nil {
		return c.Log
	}
	return slog.Default()
}

func itemLabel(s *board.Store, id int64) string {
	if it, ok := s.Find(id); ok && it.Title != "" {
		return fmt.Sprintf("%q", it.Title)
	}
	return fmt.Sprintf("item %d", id)
}
