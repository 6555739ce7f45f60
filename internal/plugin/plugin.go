// Package plugin manages the lifecycle of modules that subscribe to the
// event bus.
package plugin

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/exiled-team/exiled/pkg/event"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Plugin is a module that observes or vetoes events. Enable subscribes to
// the bus; every registration must use event.WithOwner(Name()) so Disable
// can detach whatever the plugin left behind.
type Plugin interface {
	Name() string
	Enable(ctx context.Context, bus *event.Bus) error
	Disable()
}

var (
	// ErrNotFound is returned for an unregistered plugin name.
	ErrNotFound = errors.New("plugin not found")
	// ErrAlreadyRegistered is returned when a name is registered twice.
	ErrAlreadyRegistered = errors.New("plugin already registered")
	// ErrAlreadyEnabled is returned when enabling an enabled plugin.
	ErrAlreadyEnabled = errors.New("plugin already enabled")
)

// Info describes a registered plugin.
type Info struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

type entry struct {
	plugin  Plugin
	enabled bool
	order   int
}

// Manager registers plugins and enables them against one bus.
type Manager struct {
	mu      sync.Mutex
	bus     *event.Bus
	plugins map[string]*entry
	logger  zerolog.Logger
}

// NewManager creates a manager for bus.
func NewManager(bus *event.Bus) *Manager {
	return &Manager{
		bus:     bus,
		plugins: make(map[string]*entry),
		logger:  log.Logger.With().Str("component", "plugin").Logger(),
	}
}

// Bus returns the bus plugins are enabled against.
func (m *Manager) Bus() *event.Bus {
	return m.bus
}

// Register adds a plugin without enabling it.
func (m *Manager) Register(p Plugin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := p.Name()
	if _, ok := m.plugins[name]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, name)
	}
	m.plugins[name] = &entry{plugin: p, order: len(m.plugins)}
	return nil
}

// Enable enables the named plugin. If the plugin fails to enable, any
// subscriptions it made are removed.
func (m *Manager) Enable(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.plugins[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if e.enabled {
		return fmt.Errorf("%w: %s", ErrAlreadyEnabled, name)
	}

	if err := e.plugin.Enable(ctx, m.bus); err != nil {
		removed := m.bus.UnsubscribeOwner(name)
		m.logger.Error().Err(err).Str("plugin", name).Int("removed", removed).Msg("plugin failed to enable")
		return fmt.Errorf("enable plugin %s: %w", name, err)
	}
	e.enabled = true
	m.logger.Info().Str("plugin", name).Msg("plugin enabled")
	return nil
}

// Disable disables the named plugin and removes all of its subscriptions.
// Disabling a disabled plugin is a no-op.
func (m *Manager) Disable(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.plugins[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	m.disable(name, e)
	return nil
}

func (m *Manager) disable(name string, e *entry) {
	if !e.enabled {
		return
	}
	e.plugin.Disable()
	removed := m.bus.UnsubscribeOwner(name)
	e.enabled = false
	m.logger.Info().Str("plugin", name).Int("removed", removed).Msg("plugin disabled")
}

// EnableAll enables every registered plugin accepted by filter, in
// registration order. A nil filter accepts all. It stops at the first error.
func (m *Manager) EnableAll(ctx context.Context, filter func(name string) bool) error {
	for _, info := range m.List() {
		if info.Enabled || (filter != nil && !filter(info.Name)) {
			continue
		}
		if err := m.Enable(ctx, info.Name); err != nil {
			return err
		}
	}
	return nil
}

// DisableAll disables every plugin in reverse registration order.
func (m *Manager) DisableAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := m.sorted()
	for i := len(entries) - 1; i >= 0; i-- {
		m.disable(entries[i].plugin.Name(), entries[i])
	}
}

// List returns registered plugins in registration order.
func (m *Manager) List() []Info {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := m.sorted()
	out := make([]Info, len(entries))
	for i, e := range entries {
		out[i] = Info{Name: e.plugin.Name(), Enabled: e.enabled}
	}
	return out
}

func (m *Manager) sorted() []*entry {
	entries := make([]*entry, 0, len(m.plugins))
	for _, e := range m.plugins {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].order < entries[j].order
	})
	return entries
}
