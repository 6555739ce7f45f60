package event

import "github.com/exiled-team/exiled/pkg/types"

// ChangingCameraEventArgs contains all information before SCP-079 switches
// cameras.
type ChangingCameraEventArgs struct {
	player *types.Player
	camera *types.Camera

	AuxiliaryPowerCost float32
	IsAllowed          bool
}

// NewChangingCameraEventArgs creates the payload for KindChangingCamera.
func NewChangingCameraEventArgs(player *types.Player, camera *types.Camera, cost float32, isAllowed bool) *ChangingCameraEventArgs {
	return &ChangingCameraEventArgs{player: player, camera: camera, AuxiliaryPowerCost: cost, IsAllowed: isAllowed}
}

// Player returns the SCP-079 player.
func (e *ChangingCameraEventArgs) Player() *types.Player { return e.player }

// Camera returns the camera being switched to.
func (e *ChangingCameraEventArgs) Camera() *types.Camera { return e.camera }

// Allowed implements Cancellable.
func (e *ChangingCameraEventArgs) Allowed() bool { return e.IsAllowed }

// SetAllowed implements Cancellable.
func (e *ChangingCameraEventArgs) SetAllowed(allowed bool) { e.IsAllowed = allowed }

// GainingExperienceEventArgs contains all information before SCP-079 gains
// experience.
type GainingExperienceEventArgs struct {
	player   *types.Player
	gainType types.ExperienceGainType

	Amount    float32
	IsAllowed bool
}

// NewGainingExperienceEventArgs creates the payload for KindGainingExperience.
func NewGainingExperienceEventArgs(player *types.Player, gainType types.ExperienceGainType, amount float32, isAllowed bool) *GainingExperienceEventArgs {
	return &GainingExperienceEventArgs{player: player, gainType: gainType, Amount: amount, IsAllowed: isAllowed}
}

// Player returns the SCP-079 player.
func (e *GainingExperienceEventArgs) Player() *types.Player { return e.player }

// GainType returns why experience is being gained.
func (e *GainingExperienceEventArgs) GainType() types.ExperienceGainType { return e.gainType }

// Allowed implements Cancellable.
func (e *GainingExperienceEventArgs) Allowed() bool { return e.IsAllowed }

// SetAllowed implements Cancellable.
func (e *GainingExperienceEventArgs) SetAllowed(allowed bool) { e.IsAllowed = allowed }

// GainingLevelEventArgs contains all information before SCP-079 levels up.
type GainingLevelEventArgs struct {
	player   *types.Player
	oldLevel int

	NewLevel  int
	IsAllowed bool
}

// NewGainingLevelEventArgs creates the payload for KindGainingLevel.
func NewGainingLevelEventArgs(player *types.Player, oldLevel, newLevel int, isAllowed bool) *GainingLevelEventArgs {
	return &GainingLevelEventArgs{player: player, oldLevel: oldLevel, NewLevel: newLevel, IsAllowed: isAllowed}
}

// Player returns the SCP-079 player.
func (e *GainingLevelEventArgs) Player() *types.Player { return e.player }

// OldLevel returns the level before the gain.
func (e *GainingLevelEventArgs) OldLevel() int { return e.oldLevel }

// Allowed implements Cancellable.
func (e *GainingLevelEventArgs) Allowed() bool { return e.IsAllowed }

// SetAllowed implements Cancellable.
func (e *GainingLevelEventArgs) SetAllowed(allowed bool) { e.IsAllowed = allowed }

// InteractingTeslaEventArgs contains all information before SCP-079
// triggers a tesla gate.
type InteractingTeslaEventArgs struct {
	player *types.Player
	gate   *types.TeslaGate

	AuxiliaryPowerCost float32
	IsAllowed          bool
}

// NewInteractingTeslaEventArgs creates the payload for KindInteractingTesla.
func NewInteractingTeslaEventArgs(player *types.Player, gate *types.TeslaGate, cost float32, isAllowed bool) *InteractingTeslaEventArgs {
	return &InteractingTeslaEventArgs{player: player, gate: gate, AuxiliaryPowerCost: cost, IsAllowed: isAllowed}
}

// Player returns the SCP-079 player.
func (e *InteractingTeslaEventArgs) Player() *types.Player { return e.player }

// Gate returns the tesla gate.
func (e *InteractingTeslaEventArgs) Gate() *types.TeslaGate { return e.gate }

// Allowed implements Cancellable.
func (e *InteractingTeslaEventArgs) Allowed() bool { return e.IsAllowed }

// SetAllowed implements Cancellable.
func (e *InteractingTeslaEventArgs) SetAllowed(allowed bool) { e.IsAllowed = allowed }

// TriggeringDoorEventArgs contains all information before SCP-079 operates a
// door.
type TriggeringDoorEventArgs struct {
	player *types.Player
	door   *types.Door

	AuxiliaryPowerCost float32
	IsAllowed          bool
}

// NewTriggeringDoorEventArgs creates the payload for KindTriggeringDoor.
func NewTriggeringDoorEventArgs(player *types.Player, door *types.Door, cost float32, isAllowed bool) *TriggeringDoorEventArgs {
	return &TriggeringDoorEventArgs{player: player, door: door, AuxiliaryPowerCost: cost, IsAllowed: isAllowed}
}

// Player returns the SCP-079 player.
func (e *TriggeringDoorEventArgs) Player() *types.Player { return e.player }

// Door returns the door.
func (e *TriggeringDoorEventArgs) Door() *types.Door { return e.door }

// Allowed implements Cancellable.
func (e *TriggeringDoorEventArgs) Allowed() bool { return e.IsAllowed }

// SetAllowed implements Cancellable.
func (e *TriggeringDoorEventArgs) SetAllowed(allowed bool) { e.IsAllowed = allowed }

// ElevatorTeleportingEventArgs contains all information before SCP-079
// teleports using an elevator.
type ElevatorTeleportingEventArgs struct {
	player *types.Player
	camera *types.Camera

	AuxiliaryPowerCost float32
	IsAllowed          bool
}

// NewElevatorTeleportingEventArgs creates the payload for KindElevatorTeleporting.
func NewElevatorTeleportingEventArgs(player *types.Player, camera *types.Camera, cost float32, isAllowed bool) *ElevatorTeleportingEventArgs {
	return &ElevatorTeleportingEventArgs{player: player, camera: camera, AuxiliaryPowerCost: cost, IsAllowed: isAllowed}
}

// Player returns the SCP-079 player.
func (e *ElevatorTeleportingEventArgs) Player() *types.Player { return e.player }

// Camera returns the destination camera.
func (e *ElevatorTeleportingEventArgs) Camera() *types.Camera { return e.camera }

// Allowed implements Cancellable.
func (e *ElevatorTeleportingEventArgs) Allowed() bool { return e.IsAllowed }

// SetAllowed implements Cancellable.
func (e *ElevatorTeleportingEventArgs) SetAllowed(allowed bool) { e.IsAllowed = allowed }

// roomEventArgs is shared by the SCP-079 room abilities.
type roomEventArgs struct {
	player *types.Player
	room   *types.Room

	IsAllowed bool
}

// Player returns the SCP-079 player.
func (e *roomEventArgs) Player() *types.Player { return e.player }

// Room returns the affected room.
func (e *roomEventArgs) Room() *types.Room { return e.room }

// Allowed implements Cancellable.
func (e *roomEventArgs) Allowed() bool { return e.IsAllowed }

// SetAllowed implements Cancellable.
func (e *roomEventArgs) SetAllowed(allowed bool) { e.IsAllowed = allowed }

// LockingDownEventArgs contains all information before SCP-079 locks down a
// room.
type LockingDownEventArgs struct {
	roomEventArgs

	AuxiliaryPowerCost float32
}

// NewLockingDownEventArgs creates the payload for KindLockingDown.
func NewLockingDownEventArgs(player *types.Player, room *types.Room, cost float32, isAllowed bool) *LockingDownEventArgs {
	return &LockingDownEventArgs{
		roomEventArgs:      roomEventArgs{player: player, room: room, IsAllowed: isAllowed},
		AuxiliaryPowerCost: cost,
	}
}

// StartingSpeakerEventArgs contains all information before SCP-079 uses a
// speaker.
type StartingSpeakerEventArgs struct {
	roomEventArgs

	AuxiliaryPowerCost float32
}

// NewStartingSpeakerEventArgs creates the payload for KindStartingSpeaker.
func NewStartingSpeakerEventArgs(player *types.Player, room *types.Room, cost float32, isAllowed bool) *StartingSpeakerEventArgs {
	return &StartingSpeakerEventArgs{
		roomEventArgs:      roomEventArgs{player: player, room: room, IsAllowed: isAllowed},
		AuxiliaryPowerCost: cost,
	}
}

// StoppingSpeakerEventArgs contains all information before SCP-079 stops
// using a speaker.
type StoppingSpeakerEventArgs struct{ roomEventArgs }

// NewStoppingSpeakerEventArgs creates the payload for KindStoppingSpeaker.
func NewStoppingSpeakerEventArgs(player *types.Player, room *types.Room, isAllowed bool) *StoppingSpeakerEventArgs {
	return &StoppingSpeakerEventArgs{roomEventArgs{player: player, room: room, IsAllowed: isAllowed}}
}

// RecontainedEventArgs contains all information after SCP-079 is
// recontained. It cannot be vetoed.
type RecontainedEventArgs struct {
	player *types.Player
}

// NewRecontainedEventArgs creates the payload for KindRecontained.
func NewRecontainedEventArgs(player *types.Player) *RecontainedEventArgs {
	return &RecontainedEventArgs{player: player}
}

// Player returns the recontained SCP-079 player.
func (e *RecontainedEventArgs) Player() *types.Player { return e.player }
