package engine

import (
	"errors"
	"fmt"

	"github.com/exiled-team/exiled/internal/adapter"
	"github.com/exiled-team/exiled/pkg/event"
	"github.com/exiled-team/exiled/pkg/types"
)

// ErrNoScp079 is returned by SCP-079 actions when nobody plays SCP-079.
var ErrNoScp079 = errors.New("no SCP-079 in the world")

// Auxiliary power costs of SCP-079 abilities.
const (
	CostCamera   float32 = 1
	CostTesla    float32 = 50
	CostDoor     float32 = 5
	CostElevator float32 = 10
	CostLockdown float32 = 60
	CostSpeaker  float32 = 10
)

// levelThresholds[i] is the experience needed to reach level i+1.
var levelThresholds = []float32{0, 100, 250, 500, 1000}

func levelFor(exp float32) int {
	level := 1
	for i, threshold := range levelThresholds {
		if exp >= threshold {
			level = i + 1
		}
	}
	return level
}

func (w *World) computer() (*types.Player, *Scp079State, error) {
	if w.scp079 == nil {
		return nil, nil, ErrNoScp079
	}
	p, err := w.player(w.scp079.PlayerID)
	if err != nil {
		return nil, nil, err
	}
	return p, w.scp079, nil
}

// spend runs an ability costing cost. The ability is allowed when the
// computer can afford it; subscribers may change both.
func (w *World) spend(action string, kind event.Kind, cost float32, detail string, call func(p *types.Player, cost *float32, allow *bool)) ([]Outcome, error) {
	p, state, err := w.computer()
	if err != nil {
		return nil, err
	}

	allow := state.Power >= cost
	call(p, &cost, &allow)
	if allow {
		state.Power -= cost
	}
	return one(w.record(Outcome{
		Action:  action,
		Kind:    kind,
		Allowed: allow,
		Detail:  fmt.Sprintf("%s cost=%.0f power=%.0f", detail, cost, state.Power),
	})), nil
}

// ChangeCamera switches SCP-079 to the named camera.
func (w *World) ChangeCamera(name string) ([]Outcome, error) {
	camera, ok := w.cameras[name]
	if !ok {
		return nil, fmt.Errorf("unknown camera %q", name)
	}
	out, err := w.spend("changing_camera", event.KindChangingCamera, CostCamera, camera.Name,
		func(p *types.Player, cost *float32, allow *bool) {
			adapter.ChangingCamera(w.bus, p, camera, cost, allow)
		})
	if err == nil && out[0].Allowed {
		w.scp079.Camera = camera.Name
	}
	return out, err
}

// InteractTesla fires a tesla gate remotely.
func (w *World) InteractTesla(gateID int) ([]Outcome, error) {
	gate, ok := w.teslas[gateID]
	if !ok {
		return nil, fmt.Errorf("unknown tesla gate %d", gateID)
	}
	return w.spend("interacting_tesla", event.KindInteractingTesla, CostTesla, fmt.Sprintf("gate %d", gate.ID),
		func(p *types.Player, cost *float32, allow *bool) {
			adapter.InteractingTesla(w.bus, p, gate, cost, allow)
		})
}

// TriggerDoor toggles a door remotely.
func (w *World) TriggerDoor(name string) ([]Outcome, error) {
	door, ok := w.doors[name]
	if !ok {
		return nil, fmt.Errorf("unknown door %q", name)
	}
	out, err := w.spend("triggering_door", event.KindTriggeringDoor, CostDoor, door.Name,
		func(p *types.Player, cost *float32, allow *bool) {
			*allow = *allow && !door.Locked
			adapter.TriggeringDoor(w.bus, p, door, cost, allow)
		})
	if err == nil && out[0].Allowed {
		door.Open = !door.Open
	}
	return out, err
}

// ElevatorTeleport moves SCP-079 to the named camera through an elevator.
func (w *World) ElevatorTeleport(name string) ([]Outcome, error) {
	camera, ok := w.cameras[name]
	if !ok {
		return nil, fmt.Errorf("unknown camera %q", name)
	}
	out, err := w.spend("elevator_teleporting", event.KindElevatorTeleporting, CostElevator, camera.Name,
		func(p *types.Player, cost *float32, allow *bool) {
			adapter.ElevatorTeleporting(w.bus, p, camera, cost, allow)
		})
	if err == nil && out[0].Allowed {
		w.scp079.Camera = camera.Name
	}
	return out, err
}

// Lockdown locks down the named room.
func (w *World) Lockdown(name string) ([]Outcome, error) {
	room, ok := w.rooms[name]
	if !ok {
		return nil, fmt.Errorf("unknown room %q", name)
	}
	out, err := w.spend("locking_down", event.KindLockingDown, CostLockdown, room.Name,
		func(p *types.Player, cost *float32, allow *bool) {
			adapter.LockingDown(w.bus, p, room, cost, allow)
		})
	if err == nil && out[0].Allowed {
		w.scp079.LockedDown = append(w.scp079.LockedDown, room.Name)
	}
	return out, err
}

// StartSpeaker starts speaking through the named room's speaker.
func (w *World) StartSpeaker(name string) ([]Outcome, error) {
	room, ok := w.rooms[name]
	if !ok {
		return nil, fmt.Errorf("unknown room %q", name)
	}
	out, err := w.spend("starting_speaker", event.KindStartingSpeaker, CostSpeaker, room.Name,
		func(p *types.Player, cost *float32, allow *bool) {
			adapter.StartingSpeaker(w.bus, p, room, cost, allow)
		})
	if err == nil && out[0].Allowed {
		w.scp079.Speaking = room.Name
	}
	return out, err
}

// StopSpeaker stops speaking.
func (w *World) StopSpeaker() ([]Outcome, error) {
	p, state, err := w.computer()
	if err != nil {
		return nil, err
	}
	room, ok := w.rooms[state.Speaking]
	if !ok {
		return nil, errors.New("SCP-079 is not speaking")
	}

	allow := true
	adapter.StoppingSpeaker(w.bus, p, room, &allow)
	if allow {
		state.Speaking = ""
	}
	return one(w.record(Outcome{
		Action:  "stopping_speaker",
		Kind:    event.KindStoppingSpeaker,
		Allowed: allow,
		Detail:  room.Name,
	})), nil
}

// GainExperience grants SCP-079 experience and levels it up when a
// threshold is crossed.
func (w *World) GainExperience(gainType types.ExperienceGainType, amount float32) ([]Outcome, error) {
	p, state, err := w.computer()
	if err != nil {
		return nil, err
	}

	allow := true
	adapter.GainingExperience(w.bus, p, gainType, &amount, &allow)
	if allow {
		state.Experience += amount
	}
	out := one(w.record(Outcome{
		Action:  "gaining_experience",
		Kind:    event.KindGainingExperience,
		Allowed: allow,
		Detail:  fmt.Sprintf("%s +%.0f exp=%.0f", gainType, amount, state.Experience),
	}))

	newLevel := levelFor(state.Experience)
	if newLevel <= state.Level {
		return out, nil
	}

	allow = true
	adapter.GainingLevel(w.bus, p, state.Level, &newLevel, &allow)
	oldLevel := state.Level
	if allow {
		state.Level = newLevel
	}
	return append(out, w.record(Outcome{
		Action:  "gaining_level",
		Kind:    event.KindGainingLevel,
		Allowed: allow,
		Detail:  fmt.Sprintf("level %d -> %d", oldLevel, state.Level),
	})), nil
}

// Recontain recontains SCP-079. The player becomes a spectator.
func (w *World) Recontain() ([]Outcome, error) {
	p, _, err := w.computer()
	if err != nil {
		return nil, err
	}

	adapter.Recontained(w.bus, p)
	p.Role = types.RoleSpectator
	w.scp079 = nil
	return one(w.record(Outcome{
		Action:  "recontained",
		Kind:    event.KindRecontained,
		Allowed: true,
		Detail:  p.Nickname,
	})), nil
}
