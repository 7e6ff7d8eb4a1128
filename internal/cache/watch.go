package cache

import (
	"github.com/fsnotify/fsnotify"
)

// Watcher invalidates a Cache whenever the watched data directory
// changes. Invalidation is best-effort: missed events only mean the next
// fingerprint check does the work instead.
type Watcher struct {
	fw     *fsnotify.Watcher
	cache  *Cache
	doneCh chan struct{}
}

// Watch starts watching dir and invalidating cache on any event.
func Watch(dir string, cache *Cache) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{fw: fw, cache: cache, doneCh: make(chan struct{})}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.doneCh)
	for {
		select {
		case _, ok := <-w.fw.Events:
			if !ok {
				return
			}
			w.cache.Invalidate()
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// Watch errors degrade to fingerprint-based invalidation.
			w.cache.Invalidate()
		}
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	err := w.fw.Close()
	<-w.doneCh
	return err
}
