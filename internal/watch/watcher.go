package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"procon/internal/domain"
)

// DefaultDebounce batches the events of one editor save or one delcase shift
const DefaultDebounce = 200 * time.Millisecond

// Syncer regenerates the registration file
type Syncer interface {
	Sync() error
}

// Watcher resyncs the registration file whenever input files appear,
// disappear or are renamed in the tests directory.
type Watcher struct {
	dir      string
	syncer   Syncer
	logger   *zap.Logger
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onSync   func(error)
}

// New starts watching dir. Run must be called to process events.
func New(dir string, syncer Syncer, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	return &Watcher{
		dir:      dir,
		syncer:   syncer,
		logger:   logger,
		watcher:  fw,
		debounce: DefaultDebounce,
	}, nil
}

// SetDebounce changes the quiet period between the last event and the sync
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// OnSync registers a callback invoked after every sync with its result
func (w *Watcher) OnSync(fn func(error)) {
	w.onSync = fn
}

// Run processes events until ctx is cancelled, then releases the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var timer *time.Timer
	var pending <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			w.logger.Debug("tests dir changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", zap.Error(err))

		case <-pending:
			pending = nil
			err := w.syncer.Sync()
			if err != nil {
				w.logger.Warn("sync failed", zap.Error(err))
			}
			if w.onSync != nil {
				w.onSync(err)
			}
		}
	}
}

// relevant reports whether event can change the set of registered ids
func relevant(event fsnotify.Event) bool {
	if !strings.HasSuffix(filepath.Base(event.Name), domain.InputSuffix) {
		return false
	}
	return event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename)
}
