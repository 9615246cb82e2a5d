package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcher_SignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme:\n  mode: dark\n"), 0o600))

	w, err := New(Config{Path: path, DebounceDur: 20 * time.Millisecond})
	require.NoError(t, err)
	defer w.Stop()

	ch, err := w.Start()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("theme:\n  mode: light\n"), 0o600))

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("expected change notification after write")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0o600))

	w, err := New(Config{Path: path, DebounceDur: 20 * time.Millisecond})
	require.NoError(t, err)
	defer w.Stop()

	ch, err := w.Start()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o600))

	select {
	case <-ch:
		t.Fatal("unexpected notification for unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_DebouncesBurstsIntoOneSignal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0o600))

	w, err := New(Config{Path: path, DebounceDur: 100 * time.Millisecond})
	require.NoError(t, err)
	defer w.Stop()

	ch, err := w.Start()
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("a: 2\n"), 0o600))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("expected one notification after burst")
	}

	select {
	case <-ch:
		t.Fatal("expected burst to collapse into a single notification")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_StopClosesCleanly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0o600))

	w, err := New(Config{Path: path, DebounceDur: 20 * time.Millisecond})
	require.NoError(t, err)

	_, err = w.Start()
	require.NoError(t, err)
	require.NoError(t, w.Stop())
}
