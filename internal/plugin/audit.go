package plugin

import (
	"context"

	"github.com/exiled-team/exiled/pkg/event"
	"github.com/rs/zerolog"
)

// AuditName is the name of the audit plugin.
const AuditName = "audit"

// Audit logs the final outcome of every dispatch.
type Audit struct {
	logger zerolog.Logger
	sub    event.Subscription
}

// NewAudit creates the audit plugin.
func NewAudit(logger zerolog.Logger) *Audit {
	return &Audit{logger: logger}
}

// Name implements Plugin.
func (a *Audit) Name() string { return AuditName }

// Enable implements Plugin.
func (a *Audit) Enable(_ context.Context, bus *event.Bus) error {
	a.sub = bus.Observe(a.record, event.WithOwner(AuditName))
	return nil
}

// Disable implements Plugin.
func (a *Audit) Disable() {
	a.sub.Unsubscribe()
	a.sub = event.Subscription{}
}

func (a *Audit) record(kind event.Kind, payload any) {
	e := a.logger.Debug().Str("kind", kind.String())
	if c, ok := payload.(event.Cancellable); ok {
		e = e.Bool("allowed", c.Allowed())
	}
	e.Msg("event dispatched")
}
