package event

import "reflect"

// Handler is a subscriber for payloads of type T.
type Handler[T any] func(ev *T)

// Topic binds a Kind to its payload type, so a handler can only be
// registered under the kind whose payload it understands.
type Topic[T any] struct {
	kind Kind
}

// payloadTypes records the payload type name of every topic.
var payloadTypes = map[Kind]string{}

func newTopic[T any](kind Kind) Topic[T] {
	payloadTypes[kind] = reflect.TypeOf((*T)(nil)).Elem().Name()
	return Topic[T]{kind: kind}
}

// Kind returns the kind this topic dispatches.
func (t Topic[T]) Kind() Kind {
	return t.kind
}

// Subscribe appends fn to the topic's subscriber list on b. Registering the
// same function twice yields two registrations, each invoked per dispatch.
func (t Topic[T]) Subscribe(b *Bus, fn Handler[T], opts ...SubscribeOption) Subscription {
	return b.subscribe(t.kind, fn, opts)
}

// Dispatch invokes every handler registered for the topic, in registration
// order, with the same payload. A handler that panics is reported and
// skipped; the remaining handlers still run. With nothing registered,
// Dispatch returns without touching ev.
func (t Topic[T]) Dispatch(b *Bus, ev *T) {
	subs, observers := b.snapshot(t.kind)
	if len(subs) == 0 && len(observers) == 0 {
		return
	}

	b.dispatches.Add(1)
	for _, entry := range subs {
		fn, ok := entry.fn.(Handler[T])
		if !ok {
			b.logger.Error().
				Str("kind", t.kind.String()).
				Uint64("subscription", entry.id).
				Msg("handler registered with mismatched payload type")
			continue
		}
		callHandler(b, t.kind, entry, fn, ev)
	}
	if len(observers) > 0 {
		b.observe(t.kind, observers, ev)
	}
}

func callHandler[T any](b *Bus, kind Kind, entry subscriberEntry, fn Handler[T], ev *T) {
	defer b.recoverFault(kind, entry.id, entry.owner)
	b.invocations.Add(1)
	fn(ev)
}

// Cancellable is implemented by every payload that carries an allow/deny
// decision.
type Cancellable interface {
	Allowed() bool
	SetAllowed(allowed bool)
}

// CancellableHandler receives the allow/deny surface of any vetoable payload.
type CancellableHandler func(kind Kind, ev Cancellable)

type cancellableBinder func(b *Bus, fn CancellableHandler, opts []SubscribeOption) Subscription

func bindCancellable[T any, P interface {
	*T
	Cancellable
}](t Topic[T]) cancellableBinder {
	return func(b *Bus, fn CancellableHandler, opts []SubscribeOption) Subscription {
		return t.Subscribe(b, func(ev *T) { fn(t.kind, P(ev)) }, opts...)
	}
}

// SubscribeCancellable registers fn under kind through the payload's
// Cancellable surface. ok is false when kind is not vetoable.
func SubscribeCancellable(b *Bus, kind Kind, fn CancellableHandler, opts ...SubscribeOption) (sub Subscription, ok bool) {
	bind, ok := cancellables[kind]
	if !ok {
		return Subscription{}, false
	}
	return bind(b, fn, opts), true
}
