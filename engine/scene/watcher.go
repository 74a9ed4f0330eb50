package scene

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/affine/engine/core"
)

// Watcher reloads a scene file whenever it changes on disk. Parsed scenes
// arrive on Scenes, load failures on Errors.
type Watcher struct {
	path string

	mutex    sync.Mutex
	wg       sync.WaitGroup
	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
	scenes   chan *Scene
	errors   chan error
}

// NewWatcher watches the directory holding path, since most editors save by
// replacing the file rather than writing it in place.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		fsnotify: fsWatch,
		scenes:   make(chan *Scene, 1),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.start()
	return w, nil
}

func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) Scenes() <-chan *Scene {
	return w.scenes
}

func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops watching. Both channels are closed once the watch loop exits.
func (w *Watcher) Close() error {
	w.mutex.Lock()
	if w.isClosed {
		w.mutex.Unlock()
		return core.ErrWatcherClosed
	}
	w.isClosed = true
	close(w.done)
	w.mutex.Unlock()

	w.wg.Wait()
	return nil
}

func (w *Watcher) start() {
	defer w.wg.Done()
	defer func() {
		w.fsnotify.Close()
		close(w.scenes)
		close(w.errors)
	}()

	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			// Handle create or modify events
			if !e.Has(fsnotify.Create) && !e.Has(fsnotify.Write) {
				continue
			}
			core.LogDebug("scene file %s changed (%s)", e.Name, e.Op)
			s, err := Load(w.path)
			if err != nil {
				if !w.sendError(err) {
					return
				}
				continue
			}
			if !w.sendScene(s) {
				return
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			logWatchError(err)
			if !w.sendError(err) {
				return
			}

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) sendScene(s *Scene) bool {
	select {
	case w.scenes <- s:
		return true
	case <-w.done:
		return false
	}
}

func (w *Watcher) sendError(err error) bool {
	select {
	case w.errors <- err:
		return true
	case <-w.done:
		return false
	}
}

// logWatchError keeps the error text out of the format string, paths may
// contain verbs.
func logWatchError(err error) {
	core.LogError("scene watcher: %v", err)
}
