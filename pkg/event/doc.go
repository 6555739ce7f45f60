/*
Package event provides a typed, cancellable event bus for game-server plugins.

Call sites in the host (door interactions, generator state changes, SCP-079
abilities, damage and death...) build a payload, dispatch it, and then read
the payload back to decide whether and how the action proceeds. Plugins
subscribe to the payloads they care about and may veto or adjust them.

# Topics and payloads

Every observable action has a Kind and a Topic. The topic's type parameter
fixes the payload type, so a handler for door interactions cannot be
registered for generator events:

	bus := event.NewBus()

	sub := event.DoorInteract.Subscribe(bus, func(ev *event.DoorInteractEventArgs) {
	    if ev.Door().Name == "GATE_A" {
	        ev.IsAllowed = false
	    }
	}, event.WithOwner("gatekeeper"))
	defer sub.Unsubscribe()

Payloads expose the context of the action through getters (Player, Door,
Generator...). Decision and adjustment fields are exported (IsAllowed, Items,
ItemsToDrop...) or, when they validate writes, exposed through setters that
silently ignore invalid values (SpawningRagdollEventArgs.SetPlayerID).

# Dispatch

Dispatch is synchronous on the calling goroutine:

  - With nothing registered, Dispatch returns after a single map read.
  - Handlers run in registration order and share one payload, so later
    handlers see (and may overwrite) earlier handlers' changes.
  - Each handler runs behind its own recover. A panicking handler is
    reported through the bus Reporter and the next handler runs.
  - Handlers may subscribe or unsubscribe from inside a dispatch. The running
    dispatch keeps iterating the list it started with.

Registering the same function twice yields two registrations; the bus does
not deduplicate.

# Observers

Observe registers a function for every kind. Observers run after the typed
handlers and receive the final payload:

	bus.Observe(func(kind event.Kind, payload any) {
	    log.Debug().Str("kind", kind.String()).Msg("dispatched")
	})

# Cancellable

Every vetoable payload implements Cancellable. SubscribeCancellable lets
generic plugins (such as a rule-based policy) veto any vetoable kind without
knowing its payload type.

# Fault reporting

Faults go to the bus Reporter: LogReporter (zerolog, the default),
WatermillReporter (JSON messages on a watermill topic) or any combination via
MultiReporter.

# Thread Safety

Registry operations are safe from any goroutine. A dispatch and the payload
it carries belong to the goroutine that started it.
*/
package event
