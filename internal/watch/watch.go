// Package watch notices edits to a game directory while the editor runs.
package watch

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Extensions that count as game content.
var Extensions = []string{".lua", ".qoi", ".png", ".jpg", ".obj", ".glb", ".gltf", ".yaml"}

// Watcher raises a flag when content under a directory changes. Bursts
// of events within the debounce window raise it once.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	changed  atomic.Bool

	mu    sync.Mutex
	timer *time.Timer
	last  string
	done  chan struct{}
}

// New watches dir and every directory below it.
func New(dir string, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fw.Add(path)
		}
		return nil
	})
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &Watcher{
		watcher:  fw,
		debounce: debounce,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.watcher.Add(event.Name); err != nil {
						log.Printf("watch: %v", err)
					}
				}
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				if Relevant(event.Name) {
					w.touch(event.Name)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watch: %v", err)
		}
	}
}

func (w *Watcher) touch(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.last = path
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.changed.Store(true)
	})
}

// Changed reports whether anything changed since the last call.
func (w *Watcher) Changed() bool {
	return w.changed.Swap(false)
}

// Last is the most recently changed path.
func (w *Watcher) Last() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}

func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	err := w.watcher.Close()
	<-w.done
	return err
}

// Relevant reports whether path has a content extension.
func Relevant(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
