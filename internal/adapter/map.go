package adapter

import (
	"github.com/exiled-team/exiled/pkg/event"
	"github.com/exiled-team/exiled/pkg/types"
)

// WarheadLever is called before player switches the warhead lever.
func WarheadLever(bus *event.Bus, player *types.Player, allow *bool) {
	ev := event.NewWarheadLeverEventArgs(player, *allow)
	event.WarheadLever.Dispatch(bus, ev)
	*allow = ev.IsAllowed
}

// DoorInteract is called before player operates door.
func DoorInteract(bus *event.Bus, player *types.Player, door *types.Door, allow *bool) {
	ev := event.NewDoorInteractEventArgs(player, door, *allow)
	event.DoorInteract.Dispatch(bus, ev)
	*allow = ev.IsAllowed
}

// TriggerTesla is called when player is near gate. triggerable decides
// whether the gate fires.
func TriggerTesla(bus *event.Bus, player *types.Player, gate *types.TeslaGate, inHurtingRange bool, triggerable *bool) {
	ev := event.NewTriggerTeslaEventArgs(player, gate, inHurtingRange, *triggerable)
	event.TriggerTesla.Dispatch(bus, ev)
	*triggerable = ev.IsTriggerable
}

// Scp914Upgrade is called before the machine refines items. Subscribers may
// replace the item list; the caller's slice is replaced with theirs.
func Scp914Upgrade(bus *event.Bus, machine *types.Scp914Machine, players []*types.Player, items *[]types.Pickup, knob types.Scp914Knob, allow *bool) {
	ev := event.NewScp914UpgradeEventArgs(machine, players, *items, knob, *allow)
	event.Scp914Upgrade.Dispatch(bus, ev)
	*items = ev.Items
	*allow = ev.IsAllowed
}

// GeneratorUnlock is called before player unlocks generator.
func GeneratorUnlock(bus *event.Bus, player *types.Player, generator *types.Generator, allow *bool) {
	ev := event.NewGeneratorUnlockEventArgs(player, generator, *allow)
	event.GeneratorUnlock.Dispatch(bus, ev)
	*allow = ev.IsAllowed
}

// GeneratorOpen is called before player opens generator.
func GeneratorOpen(bus *event.Bus, player *types.Player, generator *types.Generator, allow *bool) {
	ev := event.NewGeneratorOpenEventArgs(player, generator, *allow)
	event.GeneratorOpen.Dispatch(bus, ev)
	*allow = ev.IsAllowed
}

// GeneratorClose is called before player closes generator.
func GeneratorClose(bus *event.Bus, player *types.Player, generator *types.Generator, allow *bool) {
	ev := event.NewGeneratorCloseEventArgs(player, generator, *allow)
	event.GeneratorClose.Dispatch(bus, ev)
	*allow = ev.IsAllowed
}

// GeneratorInsert is called before player inserts a tablet into generator.
func GeneratorInsert(bus *event.Bus, player *types.Player, generator *types.Generator, allow *bool) {
	ev := event.NewGeneratorInsertEventArgs(player, generator, *allow)
	event.GeneratorInsert.Dispatch(bus, ev)
	*allow = ev.IsAllowed
}

// GeneratorEject is called before player ejects the tablet from generator.
func GeneratorEject(bus *event.Bus, player *types.Player, generator *types.Generator, allow *bool) {
	ev := event.NewGeneratorEjectEventArgs(player, generator, *allow)
	event.GeneratorEject.Dispatch(bus, ev)
	*allow = ev.IsAllowed
}

// GeneratorFinish is called after generator finishes charging.
func GeneratorFinish(bus *event.Bus, generator *types.Generator) {
	event.GeneratorFinish.Dispatch(bus, event.NewGeneratorFinishEventArgs(generator))
}

// PlayingRespawnEffect is called before a respawn effect is played.
func PlayingRespawnEffect(bus *event.Bus, effect *types.RespawnEffectType, allow *bool) {
	ev := event.NewPlayingRespawnEffectEventArgs(*effect, *allow)
	event.PlayingRespawnEffect.Dispatch(bus, ev)
	*effect = ev.Effect
	*allow = ev.IsAllowed
}
