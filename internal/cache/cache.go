// Package cache persists the last authoritative board fetch in sqlite so
// the TUI can paint immediately on startup, before the first network
// round-trip completes.
package cache

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jask/sprintdeck/internal/board"
)

// Cache is a sqlite-backed snapshot of the board.
type Cache struct {
	db *sql.DB
}

// Open opens (or creates) the cache at path with sensible sqlite defaults
// and applies migrations.
func Open(path string) (*Cache, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate cache: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Save replaces the cached snapshot with items, stamped with the current time.
func (c *Cache) Save(ctx context.Context, items []board.Item) error {
	return withTx(c.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM board_items`); err != nil {
			return err
		}
		now := time.Now().UTC().Truncate(time.Second)
		for pos, it := range items {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO board_items (id, title, priority, assignee, lane, position, fetched_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				it.ID, it.Title, string(it.Priority), it.Assignee, string(it.Lane), pos, now)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Load returns the cached snapshot in original fetch order, plus the time it
// was fetched. An empty cache returns no items and a zero time.
func (c *Cache) Load(ctx context.Context) ([]board.Item, time.Time, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, title, priority, assignee, lane, fetched_at
		FROM board_items ORDER BY position`)
	if err != nil {
		return nil, time.Time{}, err
	}
	defer rows.Close()

	var items []board.Item
	var fetchedAt time.Time
	for rows.Next() {
		var it board.Item
		var prio, lane string
		if err := rows.Scan(&it.ID, &it.Title, &prio, &it.Assignee, &lane, &fetchedAt); err != nil {
			return nil, time.Time{}, err
		}
		it.Priority = board.Priority(prio)
		it.Lane = board.Lane(lane)
		items = append(items, it)
	}
	return items, fetchedAt, rows.Err()
}

// withTx runs fn in a transaction.
func withTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
