package content

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to the portfolio file so the running app can
// hot-reload it. Events are debounced to one signal per change burst by the
// buffered channel; droppable since the reader reloads the whole file.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	changes chan struct{}
}

// Watch starts watching the portfolio file's directory. Watching the
// directory instead of the file survives editors that rename-and-replace
// on save.
func Watch(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    path,
		watcher: fsw,
		changes: make(chan struct{}, 1),
	}
	go w.loop()
	return w, nil
}

// Changes returns the channel that receives a signal after each change to
// the watched file. The channel closes when the watcher is closed.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops the watcher and closes the change channel.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	defer close(w.changes)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
