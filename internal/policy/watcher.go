package policy

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Watcher reloads a Policy whenever its rules file changes. The file's rules
// are applied on top of a fixed base rule set.
type Watcher struct {
	watcher  *fsnotify.Watcher
	policy   *Policy
	path     string
	base     Rules
	logger   zerolog.Logger
	onReload func(err error)
	stopCh   chan struct{}
	doneCh   chan struct{}
	started  bool
	mu       sync.Mutex
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithReloadHook calls fn after every reload attempt with its result.
func WithReloadHook(fn func(err error)) WatcherOption {
	return func(w *Watcher) {
		w.onReload = fn
	}
}

// WithWatcherLogger sets the watcher logger.
func WithWatcherLogger(l zerolog.Logger) WatcherOption {
	return func(w *Watcher) {
		w.logger = l
	}
}

// NewWatcher creates a watcher for path. The file's directory is watched
// rather than the file itself, so editors that save by rename are seen.
func NewWatcher(path string, policy *Policy, base Rules, opts ...WatcherOption) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(absPath)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		policy:  policy,
		path:    absPath,
		base:    base,
		logger:  log.Logger.With().Str("component", "policy").Logger(),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start begins watching for changes.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return
	}
	w.started = true
	w.mu.Unlock()
	go w.run()
}

func (w *Watcher) run() {
	defer close(w.doneCh)

	for {
		select {
		case <-w.stopCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.Reload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error().Err(err).Msg("policy watcher error")
		}
	}
}

// Reload reads the file and swaps the policy's rules. A file that fails to
// load or validate leaves the current rules in place.
func (w *Watcher) Reload() error {
	rules, err := LoadFile(w.path)
	if err == nil {
		err = w.policy.Set(Merge(w.base, rules))
	}

	if err != nil {
		w.logger.Warn().Err(err).Str("file", w.path).Msg("policy reload failed, keeping previous rules")
	} else {
		w.logger.Info().Str("file", w.path).Int("rules", len(rules)).Msg("policy reloaded")
	}

	if w.onReload != nil {
		w.onReload(err)
	}
	return err
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	started := w.started
	w.mu.Unlock()

	// Signal stop
	select {
	case <-w.stopCh:
		// Already stopped
	default:
		close(w.stopCh)
	}

	// Wait for run() to finish if it was started
	if started {
		<-w.doneCh
	}

	return w.watcher.Close()
}
