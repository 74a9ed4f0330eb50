package scene

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/affine/engine/core"
)

const watchTimeout = 5 * time.Second

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, Default().Save(path))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	edited := Default()
	edited.Name = "edited"
	require.NoError(t, edited.Save(path))

	deadline := time.After(watchTimeout)
	for {
		select {
		case s := <-w.Scenes():
			if s != nil && s.Name == "edited" {
				return
			}
		case <-w.Errors():
			// a partially written file can fail to parse
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}

func TestWatcherReportsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, Default().Save(path))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("[playback]\nduration = -1.0\n"), 0o644))

	deadline := time.After(watchTimeout)
	for {
		select {
		case <-w.Scenes():
		case err := <-w.Errors():
			assert.ErrorIs(t, err, ErrInvalidScene)
			return
		case <-deadline:
			t.Fatal("no error observed")
		}
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	require.NoError(t, Default().Save(path))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644))

	select {
	case s := <-w.Scenes():
		t.Fatalf("unexpected reload %v", s)
	case err := <-w.Errors():
		t.Fatalf("unexpected error %v", err)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, Default().Save(path))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.ErrorIs(t, w.Close(), core.ErrWatcherClosed)

	_, ok := <-w.Scenes()
	assert.False(t, ok)
	_, ok = <-w.Errors()
	assert.False(t, ok)
}

func TestWatchErrorKeepsPercentVerbs(t *testing.T) {
	var buf bytes.Buffer
	core.LogSetOutput(&buf)
	defer core.LogSetOutput(os.Stderr)

	logWatchError(errors.New("open /tmp/100%d/scene.toml: too many open files"))
	assert.Contains(t, buf.String(), "/tmp/100%d/scene.toml")
	assert.NotContains(t, buf.String(), "%!")
}
