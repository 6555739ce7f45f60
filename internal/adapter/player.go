package adapter

import (
	"github.com/exiled-team/exiled/pkg/event"
	"github.com/exiled-team/exiled/pkg/types"
)

// Hurting is called before target takes hit. Subscribers may change the
// damage amount.
func Hurting(bus *event.Bus, attacker, target *types.Player, hit *types.HitInfo, allow *bool) {
	ev := event.NewHurtingEventArgs(attacker, target, *hit, *allow)
	event.Hurting.Dispatch(bus, ev)
	*hit = ev.HitInformation()
	*allow = ev.IsAllowed
}

// Dying is called before target dies. itemsToDrop receives the items that
// should be dropped; subscribers start from a copy of the target's inventory.
func Dying(bus *event.Bus, killer, target *types.Player, hit *types.HitInfo, itemsToDrop *[]types.Item, allow *bool) {
	ev := event.NewDyingEventArgs(killer, target, *hit, *allow)
	event.Dying.Dispatch(bus, ev)
	*hit = ev.HitInformation
	*itemsToDrop = ev.ItemsToDrop
	*allow = ev.IsAllowed
}

// SpawningRagdoll is called before owner's ragdoll is spawned. spawn carries
// the ragdoll attributes in and out; players validates player id changes.
func SpawningRagdoll(bus *event.Bus, killer, owner *types.Player, players types.PlayerLookup, spawn *event.RagdollSpawn, allow *bool) {
	ev := event.NewSpawningRagdollEventArgs(killer, owner, players, *spawn, *allow)
	event.SpawningRagdoll.Dispatch(bus, ev)
	*spawn = event.RagdollSpawn{
		Position:        ev.Position,
		Rotation:        ev.Rotation,
		Velocity:        ev.Velocity,
		RoleType:        ev.RoleType,
		HitInformation:  ev.HitInformation,
		IsRecallAllowed: ev.IsRecallAllowed,
		DissonanceID:    ev.DissonanceID,
		PlayerNickname:  ev.PlayerNickname,
		PlayerID:        ev.PlayerID(),
		Scp096Death:     ev.Scp096Death,
	}
	*allow = ev.IsAllowed
}
