package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestManager(t *testing.T) *Manager {
	t.Helper()

	mgr, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mgr.Close())
	})

	return mgr
}

func lines(entries []Entry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Line)
	}
	return out
}

func TestRecordAndRecent(t *testing.T) {
	mgr := openTestManager(t)

	for _, line := range []string{"list", "add title Dune", "pop"} {
		_, err := mgr.Record(line, "session-1")
		require.NoError(t, err)
	}

	entries, err := mgr.Recent(10)
	require.NoError(t, err)

	// Oldest first, like a transcript.
	assert.Equal(t, []string{"list", "add title Dune", "pop"}, lines(entries))
}

func TestRecentHonorsLimit(t *testing.T) {
	mgr := openTestManager(t)

	for _, line := range []string{"one", "two", "three", "four"} {
		_, err := mgr.Record(line, "session-1")
		require.NoError(t, err)
	}

	entries, err := mgr.Recent(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"three", "four"}, lines(entries))
}

func TestRecentByPrefix(t *testing.T) {
	mgr := openTestManager(t)

	for _, line := range []string{"add title Dune", "list", "add isbn eu 978", "pop"} {
		_, err := mgr.Record(line, "session-1")
		require.NoError(t, err)
	}

	entries, err := mgr.RecentByPrefix("add", 10)
	require.NoError(t, err)

	// Newest first.
	assert.Equal(t, []string{"add isbn eu 978", "add title Dune"}, lines(entries))
}

func TestAllSpansSessions(t *testing.T) {
	mgr := openTestManager(t)

	_, err := mgr.Record("list", "session-1")
	require.NoError(t, err)
	_, err = mgr.Record("pop", "session-2")
	require.NoError(t, err)

	entries, err := mgr.All()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "pop", entries[0].Line)
	assert.Equal(t, "session-2", entries[0].SessionID)
}

func TestReset(t *testing.T) {
	mgr := openTestManager(t)

	_, err := mgr.Record("list", "session-1")
	require.NoError(t, err)

	require.NoError(t, mgr.Reset())

	entries, err := mgr.All()
	require.NoError(t, err)
	assert.Empty(t, entries)
}
