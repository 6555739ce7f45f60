package policy

import (
	"context"
	"fmt"

	"github.com/exiled-team/exiled/pkg/event"
	"github.com/rs/zerolog"
)

// PluginName is the name of the policy plugin.
const PluginName = "policy"

// Plugin applies a Policy to every vetoable kind.
type Plugin struct {
	policy  *Policy
	base    Rules
	file    string
	watch   bool
	logger  zerolog.Logger
	watcher *Watcher
}

// PluginOption configures a Plugin.
type PluginOption func(*Plugin)

// WithFile loads rules from path on enable, on top of the base rules. With
// watch set, the file is reloaded whenever it changes.
func WithFile(path string, watch bool) PluginOption {
	return func(p *Plugin) {
		p.file = path
		p.watch = watch
	}
}

// WithLogger sets the plugin logger.
func WithLogger(l zerolog.Logger) PluginOption {
	return func(p *Plugin) {
		p.logger = l
	}
}

// NewPlugin creates the policy plugin with base rules.
func NewPlugin(base Rules, opts ...PluginOption) (*Plugin, error) {
	policy, err := New(base)
	if err != nil {
		return nil, err
	}
	p := &Plugin{policy: policy, base: base, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Policy returns the live policy.
func (p *Plugin) Policy() *Policy {
	return p.policy
}

// Name implements plugin.Plugin.
func (p *Plugin) Name() string { return PluginName }

// Enable implements plugin.Plugin.
func (p *Plugin) Enable(_ context.Context, bus *event.Bus) error {
	if p.file != "" {
		rules, err := LoadFile(p.file)
		if err != nil {
			return err
		}
		if err := p.policy.Set(Merge(p.base, rules)); err != nil {
			return err
		}
	}

	for _, kind := range event.Kinds() {
		if !kind.Vetoable() {
			continue
		}
		if _, ok := event.SubscribeCancellable(bus, kind, p.policy.Apply, event.WithOwner(PluginName)); !ok {
			return fmt.Errorf("kind %s is not cancellable", kind)
		}
	}

	if p.file != "" && p.watch {
		w, err := NewWatcher(p.file, p.policy, p.base, WithWatcherLogger(p.logger))
		if err != nil {
			return fmt.Errorf("watch policy file: %w", err)
		}
		w.Start()
		p.watcher = w
	}

	p.logger.Info().Int("rules", len(p.policy.Rules())).Bool("watch", p.watcher != nil).Msg("policy enabled")
	return nil
}

// Disable implements plugin.Plugin. Subscriptions are removed by the
// plugin manager.
func (p *Plugin) Disable() {
	if p.watcher != nil {
		if err := p.watcher.Stop(); err != nil {
			p.logger.Warn().Err(err).Msg("failed to stop policy watcher")
		}
		p.watcher = nil
	}
}
