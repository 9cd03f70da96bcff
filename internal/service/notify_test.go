package service

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

func TestNotifierSingleSlot(t *testing.T) {
	t.Parallel()
	n := NewNotifier(clockwork.NewFakeClock(), 4*time.Second)

	n.Success("moved A")
	n.Error("failed B")

	note, ok := n.Current()
	require.True(t, ok)
	require.Equal(t, LevelError, note.Level)
	require.Equal(t, "failed B", note.Text)
	require.Equal(t, uint64(2), note.Seq)
}

func TestNotifierExpires(t *testing.T) {
	t.Parallel()
	clock := clockwork.NewFakeClock()
	n := NewNotifier(clock, 4*time.Second)

	n.Success("moved A")
	_, ok := n.Current()
	require.True(t, ok)

	clock.Advance(4 * time.Second)
	_, ok = n.Current()
	require.False(t, ok, "notification must expire after the TTL with no further action")
}

func TestNotifierReplaceExtendsLifetime(t *testing.T) {
	t.Parallel()
	clock := clockwork.NewFakeClock()
	n := NewNotifier(clock, 4*time.Second)

	n.Success("first")
	clock.Advance(3 * time.Second)
	n.Error("second")
	clock.Advance(3 * time.Second)

	note, ok := n.Current()
	require.True(t, ok, "replacement restarts the TTL")
	require.Equal(t, "second", note.Text)
}

func TestNotifierEmpty(t *testing.T) {
	t.Parallel()
	n := NewNotifier(clockwork.NewFakeClock(), time.Second)
	_, ok := n.Current()
	require.False(t, ok)
}
