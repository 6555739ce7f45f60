// Package event provides the typed, cancellable event bus that plugins use to
// observe and veto host actions.
package event

import (
	"io"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// subscriberEntry is one registration in a kind's subscriber list.
type subscriberEntry struct {
	id    uint64
	owner string
	fn    any // Handler[T] for the kind's payload type
}

// observerEntry is one registration in the observe-all list.
type observerEntry struct {
	id    uint64
	owner string
	fn    ObserverFunc
}

// ObserverFunc receives every dispatched payload after the typed handlers of
// that dispatch have run. payload is the *T of the dispatched kind.
type ObserverFunc func(kind Kind, payload any)

// Stats holds bus counters.
type Stats struct {
	Dispatches  uint64 `json:"dispatches"`
	Invocations uint64 `json:"invocations"`
	Faults      uint64 `json:"faults"`
}

// Bus is the subscription registry and dispatcher.
//
// Subscriber lists are never mutated in place: every subscribe/unsubscribe
// installs a fresh slice, so the slice read at the start of a dispatch is a
// stable snapshot that handlers may freely (un)subscribe against.
type Bus struct {
	mu sync.RWMutex

	subscribers map[Kind][]subscriberEntry
	observers   []observerEntry

	reporter Reporter
	logger   zerolog.Logger

	nextID uint64
	closed bool

	dispatches  atomic.Uint64
	invocations atomic.Uint64
	faults      atomic.Uint64
}

// Option configures a Bus.
type Option func(*Bus)

// WithReporter sets where subscriber faults are reported. Defaults to a
// LogReporter on the bus logger.
func WithReporter(r Reporter) Option {
	return func(b *Bus) {
		b.reporter = r
	}
}

// WithLogger sets the bus logger.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Bus) {
		b.logger = l
	}
}

// NewBus creates an empty bus.
func NewBus(opts ...Option) *Bus {
	b := &Bus{
		subscribers: make(map[Kind][]subscriberEntry),
		logger:      log.Logger.With().Str("component", "event").Logger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.reporter == nil {
		b.reporter = NewLogReporter(b.logger)
	}
	return b
}

// newID generates a unique subscription ID.
func (b *Bus) newID() uint64 {
	return atomic.AddUint64(&b.nextID, 1)
}

// SubscribeOption configures a single registration.
type SubscribeOption func(*subscriberEntry)

// WithOwner labels a registration with the plugin that owns it. The owner is
// included in fault reports and used by UnsubscribeOwner.
func WithOwner(owner string) SubscribeOption {
	return func(e *subscriberEntry) {
		e.owner = owner
	}
}

func (b *Bus) subscribe(kind Kind, fn any, opts []SubscribeOption) Subscription {
	entry := subscriberEntry{fn: fn}
	for _, opt := range opts {
		opt(&entry)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return Subscription{}
	}

	entry.id = b.newID()
	old := b.subscribers[kind]
	next := make([]subscriberEntry, len(old), len(old)+1)
	copy(next, old)
	b.subscribers[kind] = append(next, entry)

	return Subscription{bus: b, kind: kind, id: entry.id}
}

// Observe registers fn for every kind. Observers run after the typed
// handlers of a dispatch and are fault-isolated the same way.
func (b *Bus) Observe(fn ObserverFunc, opts ...SubscribeOption) Subscription {
	var entry subscriberEntry
	for _, opt := range opts {
		opt(&entry)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return Subscription{}
	}

	id := b.newID()
	next := make([]observerEntry, len(b.observers), len(b.observers)+1)
	copy(next, b.observers)
	b.observers = append(next, observerEntry{id: id, owner: entry.owner, fn: fn})

	return Subscription{bus: b, id: id, observer: true}
}

// Unsubscribe removes the registration identified by sub. It is a no-op if
// the registration is already gone.
func (b *Bus) Unsubscribe(sub Subscription) {
	if sub.id == 0 {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if sub.observer {
		for i, entry := range b.observers {
			if entry.id == sub.id {
				b.observers = without(b.observers, i)
				return
			}
		}
		return
	}

	subs := b.subscribers[sub.kind]
	for i, entry := range subs {
		if entry.id == sub.id {
			if len(subs) == 1 {
				delete(b.subscribers, sub.kind)
			} else {
				b.subscribers[sub.kind] = without(subs, i)
			}
			return
		}
	}
}

// UnsubscribeOwner removes every registration labelled with owner and
// returns how many were removed.
func (b *Bus) UnsubscribeOwner(owner string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	removed := 0
	for kind, subs := range b.subscribers {
		kept := make([]subscriberEntry, 0, len(subs))
		for _, entry := range subs {
			if entry.owner == owner {
				removed++
				continue
			}
			kept = append(kept, entry)
		}
		switch {
		case len(kept) == 0:
			delete(b.subscribers, kind)
		case len(kept) != len(subs):
			b.subscribers[kind] = kept
		}
	}

	kept := make([]observerEntry, 0, len(b.observers))
	for _, entry := range b.observers {
		if entry.owner == owner {
			removed++
			continue
		}
		kept = append(kept, entry)
	}
	if len(kept) != len(b.observers) {
		b.observers = kept
	}

	return removed
}

// without returns a copy of s with element i removed.
func without[E any](s []E, i int) []E {
	out := make([]E, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

// snapshot returns the current subscriber and observer lists for kind.
// The returned slices are never modified afterwards.
func (b *Bus) snapshot(kind Kind) ([]subscriberEntry, []observerEntry) {
	b.mu.RLock()
	subs, observers := b.subscribers[kind], b.observers
	b.mu.RUnlock()
	return subs, observers
}

// Count returns the number of typed handlers registered for kind.
func (b *Bus) Count(kind Kind) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers[kind])
}

// Has reports whether a dispatch of kind would invoke anything.
func (b *Bus) Has(kind Kind) bool {
	subs, observers := b.snapshot(kind)
	return len(subs) > 0 || len(observers) > 0
}

// Stats returns a copy of the bus counters.
func (b *Bus) Stats() Stats {
	return Stats{
		Dispatches:  b.dispatches.Load(),
		Invocations: b.invocations.Load(),
		Faults:      b.faults.Load(),
	}
}

// Close drops every registration. Subscribing to a closed bus returns an
// inert Subscription. If the reporter is an io.Closer it is closed too.
func (b *Bus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	b.subscribers = make(map[Kind][]subscriberEntry)
	b.observers = nil
	b.mu.Unlock()

	if c, ok := b.reporter.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// observe runs the observers of one dispatch.
func (b *Bus) observe(kind Kind, observers []observerEntry, payload any) {
	for _, o := range observers {
		b.callObserver(kind, o, payload)
	}
}

func (b *Bus) callObserver(kind Kind, o observerEntry, payload any) {
	defer b.recoverFault(kind, o.id, o.owner)
	b.invocations.Add(1)
	o.fn(kind, payload)
}

// recoverFault must be deferred directly around a single invocation.
func (b *Bus) recoverFault(kind Kind, id uint64, owner string) {
	r := recover()
	if r == nil {
		return
	}
	b.faults.Add(1)
	b.reporter.Report(newSubscriberFault(kind, id, owner, r, debug.Stack()))
}

func newSubscriberFault(kind Kind, id uint64, owner string, value any, stack []byte) *SubscriberFault {
	return &SubscriberFault{
		ID:             ulid.Make().String(),
		Kind:           kind,
		SubscriptionID: id,
		Owner:          owner,
		Value:          value,
		Stack:          string(stack),
		Time:           time.Now(),
	}
}

// Subscription identifies one registration on a Bus. The zero value is inert.
type Subscription struct {
	bus      *Bus
	kind     Kind
	id       uint64
	observer bool
}

// ID returns the registration identity.
func (s Subscription) ID() uint64 {
	return s.id
}

// Kind returns the kind the registration is for; observers return an invalid kind.
func (s Subscription) Kind() Kind {
	return s.kind
}

// Unsubscribe removes the registration from its bus.
func (s Subscription) Unsubscribe() {
	if s.bus != nil {
		s.bus.Unsubscribe(s)
	}
}
