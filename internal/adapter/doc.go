/*
Package adapter holds the host call sites of the event bus.

Each function corresponds to one engine action. It builds the payload from the
caller's current values, dispatches it, and copies every mutable field back
through the pointers it was given:

	allow := door.Permission == "" || player.HasKeycard()
	adapter.DoorInteract(bus, player, door, &allow)
	if !allow {
	    return
	}

Read-back happens whether or not anything is subscribed. Without subscribers
the payload keeps its initial values, so the caller's variables are left as
they were. The one exception is a value the payload validates on
construction: a ragdoll player id that resolves to no live player reads back
as 0.
*/
package adapter
