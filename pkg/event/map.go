package event

import "github.com/exiled-team/exiled/pkg/types"

// WarheadLeverEventArgs contains all information before a player switches
// the warhead lever.
type WarheadLeverEventArgs struct {
	player *types.Player

	// IsAllowed is whether the lever may be switched.
	IsAllowed bool
}

// NewWarheadLeverEventArgs creates the payload for KindWarheadLever.
func NewWarheadLeverEventArgs(player *types.Player, isAllowed bool) *WarheadLeverEventArgs {
	return &WarheadLeverEventArgs{player: player, IsAllowed: isAllowed}
}

// Player returns the player switching the lever.
func (e *WarheadLeverEventArgs) Player() *types.Player { return e.player }

// Allowed implements Cancellable.
func (e *WarheadLeverEventArgs) Allowed() bool { return e.IsAllowed }

// SetAllowed implements Cancellable.
func (e *WarheadLeverEventArgs) SetAllowed(allowed bool) { e.IsAllowed = allowed }

// DoorInteractEventArgs contains all information before a player interacts
// with a door.
type DoorInteractEventArgs struct {
	player *types.Player
	door   *types.Door

	// IsAllowed is whether the door may be operated.
	IsAllowed bool
}

// NewDoorInteractEventArgs creates the payload for KindDoorInteract.
func NewDoorInteractEventArgs(player *types.Player, door *types.Door, isAllowed bool) *DoorInteractEventArgs {
	return &DoorInteractEventArgs{player: player, door: door, IsAllowed: isAllowed}
}

// Player returns the interacting player.
func (e *DoorInteractEventArgs) Player() *types.Player { return e.player }

// Door returns the door being interacted with.
func (e *DoorInteractEventArgs) Door() *types.Door { return e.door }

// Allowed implements Cancellable.
func (e *DoorInteractEventArgs) Allowed() bool { return e.IsAllowed }

// SetAllowed implements Cancellable.
func (e *DoorInteractEventArgs) SetAllowed(allowed bool) { e.IsAllowed = allowed }

// TriggerTeslaEventArgs contains all information before a player triggers a
// tesla gate.
type TriggerTeslaEventArgs struct {
	player         *types.Player
	gate           *types.TeslaGate
	inHurtingRange bool

	// IsTriggerable is whether the gate fires.
	IsTriggerable bool
}

// NewTriggerTeslaEventArgs creates the payload for KindTriggerTesla.
func NewTriggerTeslaEventArgs(player *types.Player, gate *types.TeslaGate, inHurtingRange, isTriggerable bool) *TriggerTeslaEventArgs {
	return &TriggerTeslaEventArgs{
		player:         player,
		gate:           gate,
		inHurtingRange: inHurtingRange,
		IsTriggerable:  isTriggerable,
	}
}

// Player returns the player near the gate.
func (e *TriggerTeslaEventArgs) Player() *types.Player { return e.player }

// Gate returns the tesla gate.
func (e *TriggerTeslaEventArgs) Gate() *types.TeslaGate { return e.gate }

// IsInHurtingRange reports whether the player is close enough to be shocked.
func (e *TriggerTeslaEventArgs) IsInHurtingRange() bool { return e.inHurtingRange }

// Allowed implements Cancellable.
func (e *TriggerTeslaEventArgs) Allowed() bool { return e.IsTriggerable }

// SetAllowed implements Cancellable.
func (e *TriggerTeslaEventArgs) SetAllowed(allowed bool) { e.IsTriggerable = allowed }

// Scp914UpgradeEventArgs contains all information before SCP-914 upgrades
// the items and players in its intake.
type Scp914UpgradeEventArgs struct {
	machine *types.Scp914Machine
	players []*types.Player
	knob    types.Scp914Knob

	// Items is the list of pickups that will be refined. Subscribers may edit
	// or replace it.
	Items []types.Pickup
	// IsAllowed is whether the upgrade runs.
	IsAllowed bool
}

// NewScp914UpgradeEventArgs creates the payload for KindScp914Upgrade.
func NewScp914UpgradeEventArgs(machine *types.Scp914Machine, players []*types.Player, items []types.Pickup, knob types.Scp914Knob, isAllowed bool) *Scp914UpgradeEventArgs {
	return &Scp914UpgradeEventArgs{
		machine:   machine,
		players:   players,
		knob:      knob,
		Items:     items,
		IsAllowed: isAllowed,
	}
}

// Machine returns the SCP-914 machine.
func (e *Scp914UpgradeEventArgs) Machine() *types.Scp914Machine { return e.machine }

// Players returns the players inside the intake chamber.
func (e *Scp914UpgradeEventArgs) Players() []*types.Player { return e.players }

// KnobSetting returns the knob setting the upgrade runs with.
func (e *Scp914UpgradeEventArgs) KnobSetting() types.Scp914Knob { return e.knob }

// Allowed implements Cancellable.
func (e *Scp914UpgradeEventArgs) Allowed() bool { return e.IsAllowed }

// SetAllowed implements Cancellable.
func (e *Scp914UpgradeEventArgs) SetAllowed(allowed bool) { e.IsAllowed = allowed }

// generatorEventArgs is shared by the player-to-generator interactions.
type generatorEventArgs struct {
	player    *types.Player
	generator *types.Generator

	// IsAllowed is whether the interaction goes ahead.
	IsAllowed bool
}

// Player returns the interacting player.
func (e *generatorEventArgs) Player() *types.Player { return e.player }

// Generator returns the generator.
func (e *generatorEventArgs) Generator() *types.Generator { return e.generator }

// Allowed implements Cancellable.
func (e *generatorEventArgs) Allowed() bool { return e.IsAllowed }

// SetAllowed implements Cancellable.
func (e *generatorEventArgs) SetAllowed(allowed bool) { e.IsAllowed = allowed }

// GeneratorUnlockEventArgs contains all information before a player unlocks
// a generator.
type GeneratorUnlockEventArgs struct{ generatorEventArgs }

// NewGeneratorUnlockEventArgs creates the payload for KindGeneratorUnlock.
func NewGeneratorUnlockEventArgs(player *types.Player, generator *types.Generator, isAllowed bool) *GeneratorUnlockEventArgs {
	return &GeneratorUnlockEventArgs{generatorEventArgs{player: player, generator: generator, IsAllowed: isAllowed}}
}

// GeneratorOpenEventArgs contains all information before a player opens a
// generator.
type GeneratorOpenEventArgs struct{ generatorEventArgs }

// NewGeneratorOpenEventArgs creates the payload for KindGeneratorOpen.
func NewGeneratorOpenEventArgs(player *types.Player, generator *types.Generator, isAllowed bool) *GeneratorOpenEventArgs {
	return &GeneratorOpenEventArgs{generatorEventArgs{player: player, generator: generator, IsAllowed: isAllowed}}
}

// GeneratorCloseEventArgs contains all information before a player closes a
// generator.
type GeneratorCloseEventArgs struct{ generatorEventArgs }

// NewGeneratorCloseEventArgs creates the payload for KindGeneratorClose.
func NewGeneratorCloseEventArgs(player *types.Player, generator *types.Generator, isAllowed bool) *GeneratorCloseEventArgs {
	return &GeneratorCloseEventArgs{generatorEventArgs{player: player, generator: generator, IsAllowed: isAllowed}}
}

// GeneratorInsertEventArgs contains all information before a player inserts
// a tablet into a generator.
type GeneratorInsertEventArgs struct{ generatorEventArgs }

// NewGeneratorInsertEventArgs creates the payload for KindGeneratorInsert.
func NewGeneratorInsertEventArgs(player *types.Player, generator *types.Generator, isAllowed bool) *GeneratorInsertEventArgs {
	return &GeneratorInsertEventArgs{generatorEventArgs{player: player, generator: generator, IsAllowed: isAllowed}}
}

// GeneratorEjectEventArgs contains all information before a player ejects
// the tablet from a generator.
type GeneratorEjectEventArgs struct{ generatorEventArgs }

// NewGeneratorEjectEventArgs creates the payload for KindGeneratorEject.
func NewGeneratorEjectEventArgs(player *types.Player, generator *types.Generator, isAllowed bool) *GeneratorEjectEventArgs {
	return &GeneratorEjectEventArgs{generatorEventArgs{player: player, generator: generator, IsAllowed: isAllowed}}
}

// GeneratorFinishEventArgs contains all information after a generator has
// finished charging. It cannot be vetoed.
type GeneratorFinishEventArgs struct {
	generator *types.Generator
}

// NewGeneratorFinishEventArgs creates the payload for KindGeneratorFinish.
func NewGeneratorFinishEventArgs(generator *types.Generator) *GeneratorFinishEventArgs {
	return &GeneratorFinishEventArgs{generator: generator}
}

// Generator returns the finished generator.
func (e *GeneratorFinishEventArgs) Generator() *types.Generator { return e.generator }

// PlayingRespawnEffectEventArgs contains all information before the server
// plays a respawn effect.
type PlayingRespawnEffectEventArgs struct {
	// Effect is the effect that will be played. Subscribers may swap it.
	Effect types.RespawnEffectType
	// IsAllowed is whether the effect is played at all.
	IsAllowed bool
}

// NewPlayingRespawnEffectEventArgs creates the payload for KindPlayingRespawnEffect.
func NewPlayingRespawnEffectEventArgs(effect types.RespawnEffectType, isAllowed bool) *PlayingRespawnEffectEventArgs {
	return &PlayingRespawnEffectEventArgs{Effect: effect, IsAllowed: isAllowed}
}

// Allowed implements Cancellable.
func (e *PlayingRespawnEffectEventArgs) Allowed() bool { return e.IsAllowed }

// SetAllowed implements Cancellable.
func (e *PlayingRespawnEffectEventArgs) SetAllowed(allowed bool) { e.IsAllowed = allowed }
