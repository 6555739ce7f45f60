package adapter

import (
	"github.com/exiled-team/exiled/pkg/event"
	"github.com/exiled-team/exiled/pkg/types"
)

// ChangingCamera is called before SCP-079 switches to camera.
func ChangingCamera(bus *event.Bus, player *types.Player, camera *types.Camera, cost *float32, allow *bool) {
	ev := event.NewChangingCameraEventArgs(player, camera, *cost, *allow)
	event.ChangingCamera.Dispatch(bus, ev)
	*cost = ev.AuxiliaryPowerCost
	*allow = ev.IsAllowed
}

// GainingExperience is called before SCP-079 gains amount experience.
func GainingExperience(bus *event.Bus, player *types.Player, gainType types.ExperienceGainType, amount *float32, allow *bool) {
	ev := event.NewGainingExperienceEventArgs(player, gainType, *amount, *allow)
	event.GainingExperience.Dispatch(bus, ev)
	*amount = ev.Amount
	*allow = ev.IsAllowed
}

// GainingLevel is called before SCP-079 goes from oldLevel to newLevel.
func GainingLevel(bus *event.Bus, player *types.Player, oldLevel int, newLevel *int, allow *bool) {
	ev := event.NewGainingLevelEventArgs(player, oldLevel, *newLevel, *allow)
	event.GainingLevel.Dispatch(bus, ev)
	*newLevel = ev.NewLevel
	*allow = ev.IsAllowed
}

// InteractingTesla is called before SCP-079 fires gate.
func InteractingTesla(bus *event.Bus, player *types.Player, gate *types.TeslaGate, cost *float32, allow *bool) {
	ev := event.NewInteractingTeslaEventArgs(player, gate, *cost, *allow)
	event.InteractingTesla.Dispatch(bus, ev)
	*cost = ev.AuxiliaryPowerCost
	*allow = ev.IsAllowed
}

// TriggeringDoor is called before SCP-079 operates door.
func TriggeringDoor(bus *event.Bus, player *types.Player, door *types.Door, cost *float32, allow *bool) {
	ev := event.NewTriggeringDoorEventArgs(player, door, *cost, *allow)
	event.TriggeringDoor.Dispatch(bus, ev)
	*cost = ev.AuxiliaryPowerCost
	*allow = ev.IsAllowed
}

// ElevatorTeleporting is called before SCP-079 moves to camera through an
// elevator.
func ElevatorTeleporting(bus *event.Bus, player *types.Player, camera *types.Camera, cost *float32, allow *bool) {
	ev := event.NewElevatorTeleportingEventArgs(player, camera, *cost, *allow)
	event.ElevatorTeleporting.Dispatch(bus, ev)
	*cost = ev.AuxiliaryPowerCost
	*allow = ev.IsAllowed
}

// LockingDown is called before SCP-079 locks down room.
func LockingDown(bus *event.Bus, player *types.Player, room *types.Room, cost *float32, allow *bool) {
	ev := event.NewLockingDownEventArgs(player, room, *cost, *allow)
	event.LockingDown.Dispatch(bus, ev)
	*cost = ev.AuxiliaryPowerCost
	*allow = ev.IsAllowed
}

// StartingSpeaker is called before SCP-079 speaks in room.
func StartingSpeaker(bus *event.Bus, player *types.Player, room *types.Room, cost *float32, allow *bool) {
	ev := event.NewStartingSpeakerEventArgs(player, room, *cost, *allow)
	event.StartingSpeaker.Dispatch(bus, ev)
	*cost = ev.AuxiliaryPowerCost
	*allow = ev.IsAllowed
}

// StoppingSpeaker is called before SCP-079 stops speaking in room.
func StoppingSpeaker(bus *event.Bus, player *types.Player, room *types.Room, allow *bool) {
	ev := event.NewStoppingSpeakerEventArgs(player, room, *allow)
	event.StoppingSpeaker.Dispatch(bus, ev)
	*allow = ev.IsAllowed
}

// Recontained is called after SCP-079 is recontained.
func Recontained(bus *event.Bus, player *types.Player) {
	event.Recontained.Dispatch(bus, event.NewRecontainedEventArgs(player))
}
