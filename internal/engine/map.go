package engine

import (
	"fmt"
	"sort"

	"github.com/exiled-team/exiled/internal/adapter"
	"github.com/exiled-team/exiled/pkg/event"
	"github.com/exiled-team/exiled/pkg/types"
)

// Door permissions and the keycards that satisfy them.
var permissionLevels = map[string]int{
	"":           0,
	"CONT_LVL_1": 1,
	"CONT_LVL_2": 2,
	"CONT_LVL_3": 3,
}

var keycardLevels = map[types.ItemType]int{
	types.ItemKeycardJanitor:   1,
	types.ItemKeycardScientist: 2,
	types.ItemKeycardO5:        3,
}

// TeslaDamage is the damage a fired tesla gate deals to players in range.
const TeslaDamage = 200

func hasAccess(p *types.Player, permission string) bool {
	required, ok := permissionLevels[permission]
	if !ok {
		return false
	}
	if required == 0 || p.Role == types.RoleScp079 {
		return true
	}
	for _, item := range p.Items {
		if keycardLevels[item.Type] >= required {
			return true
		}
	}
	return false
}

// SwitchWarheadLever flips the warhead lever.
func (w *World) SwitchWarheadLever(playerID int) ([]Outcome, error) {
	p, err := w.player(playerID)
	if err != nil {
		return nil, err
	}

	allow := true
	adapter.WarheadLever(w.bus, p, &allow)
	if allow {
		w.warheadArmed = !w.warheadArmed
	}
	return one(w.record(Outcome{
		Action:  "warhead_lever",
		Kind:    event.KindWarheadLever,
		Allowed: allow,
		Detail:  fmt.Sprintf("armed=%t", w.warheadArmed),
	})), nil
}

// InteractDoor toggles a door if the player may operate it.
func (w *World) InteractDoor(playerID int, doorName string) ([]Outcome, error) {
	p, err := w.player(playerID)
	if err != nil {
		return nil, err
	}
	door, ok := w.doors[doorName]
	if !ok {
		return nil, fmt.Errorf("unknown door %q", doorName)
	}

	allow := !door.Locked && hasAccess(p, door.Permission)
	adapter.DoorInteract(w.bus, p, door, &allow)
	if allow {
		door.Open = !door.Open
	}
	return one(w.record(Outcome{
		Action:  "door_interact",
		Kind:    event.KindDoorInteract,
		Allowed: allow,
		Detail:  fmt.Sprintf("%s open=%t", door.Name, door.Open),
	})), nil
}

// ApproachTesla moves a player near a tesla gate. A gate that fires hurts
// the player when inRange is set.
func (w *World) ApproachTesla(playerID, gateID int, inRange bool) ([]Outcome, error) {
	p, err := w.player(playerID)
	if err != nil {
		return nil, err
	}
	gate, ok := w.teslas[gateID]
	if !ok {
		return nil, fmt.Errorf("unknown tesla gate %d", gateID)
	}

	triggerable := p.Role != types.RoleScp079
	adapter.TriggerTesla(w.bus, p, gate, inRange, &triggerable)
	out := one(w.record(Outcome{
		Action:  "trigger_tesla",
		Kind:    event.KindTriggerTesla,
		Allowed: triggerable,
		Detail:  fmt.Sprintf("gate %d in_range=%t", gate.ID, inRange),
	}))
	if !triggerable || !inRange {
		return out, nil
	}

	hurt, err := w.damage(nil, p, types.HitInfo{Amount: TeslaDamage, Tool: types.DamageTesla})
	return append(out, hurt...), err
}

// LoadScp914 places pickups in the SCP-914 intake.
func (w *World) LoadScp914(items []types.ItemType) {
	for _, t := range items {
		w.scp914Intake = append(w.scp914Intake, types.Pickup{Serial: newSerial(), Type: t})
	}
}

// RunScp914 refines the intake at knob. Players listed are the ones standing
// in the intake booth.
func (w *World) RunScp914(knob types.Scp914Knob, playerIDs []int) ([]Outcome, error) {
	var players []*types.Player
	for _, id := range playerIDs {
		p, err := w.player(id)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}

	w.scp914.Knob = knob
	items := append([]types.Pickup(nil), w.scp914Intake...)
	allow := !w.scp914.Working
	adapter.Scp914Upgrade(w.bus, w.scp914, players, &items, knob, &allow)

	if allow {
		refined := make([]types.Pickup, 0, len(items))
		for _, item := range items {
			if t := refine(item.Type, knob); t != types.ItemNone {
				refined = append(refined, types.Pickup{Serial: newSerial(), Type: t, Position: item.Position})
			}
		}
		w.pickups = append(w.pickups, refined...)
		w.scp914Intake = nil
		items = refined
	}
	return one(w.record(Outcome{
		Action:  "scp914_upgrade",
		Kind:    event.KindScp914Upgrade,
		Allowed: allow,
		Detail:  fmt.Sprintf("knob=%s items=%d", knob, len(items)),
	})), nil
}

// keycardLadder is the SCP-914 refinement order for keycards.
var keycardLadder = []types.ItemType{types.ItemKeycardJanitor, types.ItemKeycardScientist, types.ItemKeycardO5}

// refine returns what SCP-914 turns t into. ItemNone means destroyed.
func refine(t types.ItemType, knob types.Scp914Knob) types.ItemType {
	idx := -1
	for i, k := range keycardLadder {
		if k == t {
			idx = i
		}
	}

	switch knob {
	case types.KnobRough:
		return types.ItemNone
	case types.KnobCoarse:
		if idx > 0 {
			return keycardLadder[idx-1]
		}
		if idx == 0 {
			return types.ItemNone
		}
	case types.KnobFine:
		if idx >= 0 && idx < len(keycardLadder)-1 {
			return keycardLadder[idx+1]
		}
		if t == types.ItemPainkillers {
			return types.ItemMedkit
		}
	case types.KnobVeryFine:
		if idx >= 0 {
			return types.ItemKeycardO5
		}
		if t == types.ItemMedkit || t == types.ItemPainkillers {
			return types.ItemAdrenaline
		}
	}
	return t
}

// GeneratorAction is one of the things a player can do to a generator.
type GeneratorAction string

const (
	GeneratorUnlock GeneratorAction = "unlock"
	GeneratorOpen   GeneratorAction = "open"
	GeneratorClose  GeneratorAction = "close"
	GeneratorInsert GeneratorAction = "insert"
	GeneratorEject  GeneratorAction = "eject"
)

// UseGenerator performs action on a generator.
func (w *World) UseGenerator(playerID, generatorID int, action GeneratorAction) ([]Outcome, error) {
	p, err := w.player(playerID)
	if err != nil {
		return nil, err
	}
	g, ok := w.generators[generatorID]
	if !ok {
		return nil, fmt.Errorf("unknown generator %d", generatorID)
	}

	o := Outcome{Action: "generator_" + string(action)}
	switch action {
	case GeneratorUnlock:
		o.Kind, o.Allowed = event.KindGeneratorUnlock, !g.Unlocked && hasAccess(p, "CONT_LVL_2")
		adapter.GeneratorUnlock(w.bus, p, g, &o.Allowed)
		if o.Allowed {
			g.Unlocked = true
		}
	case GeneratorOpen:
		o.Kind, o.Allowed = event.KindGeneratorOpen, g.Unlocked && !g.Open
		adapter.GeneratorOpen(w.bus, p, g, &o.Allowed)
		if o.Allowed {
			g.Open = true
		}
	case GeneratorClose:
		o.Kind, o.Allowed = event.KindGeneratorClose, g.Open
		adapter.GeneratorClose(w.bus, p, g, &o.Allowed)
		if o.Allowed {
			g.Open = false
		}
	case GeneratorInsert:
		o.Kind, o.Allowed = event.KindGeneratorInsert, g.Open && !g.TabletInserted && !g.Finished
		adapter.GeneratorInsert(w.bus, p, g, &o.Allowed)
		if o.Allowed {
			g.TabletInserted = true
		}
	case GeneratorEject:
		o.Kind, o.Allowed = event.KindGeneratorEject, g.Open && g.TabletInserted
		adapter.GeneratorEject(w.bus, p, g, &o.Allowed)
		if o.Allowed {
			g.TabletInserted = false
		}
	default:
		return nil, fmt.Errorf("unknown generator action %q", action)
	}

	o.Detail = fmt.Sprintf("generator %d unlocked=%t open=%t tablet=%t", g.ID, g.Unlocked, g.Open, g.TabletInserted)
	return one(w.record(o)), nil
}

// ChargeGenerators advances every generator with a tablet by progress
// (0..1). Generators reaching full charge finish.
func (w *World) ChargeGenerators(progress float32) []Outcome {
	ids := make([]int, 0, len(w.generators))
	for id := range w.generators {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var out []Outcome
	for _, id := range ids {
		g := w.generators[id]
		if !g.TabletInserted || g.Finished {
			continue
		}
		g.Progress += progress
		if g.Progress < 1 {
			continue
		}
		g.Progress, g.Finished = 1, true
		adapter.GeneratorFinish(w.bus, g)
		out = append(out, w.record(Outcome{
			Action:  "generator_finish",
			Kind:    event.KindGeneratorFinish,
			Allowed: true,
			Detail:  fmt.Sprintf("generator %d", g.ID),
		}))
	}
	return out
}

// PlayRespawnEffect plays a respawn effect.
func (w *World) PlayRespawnEffect(effect types.RespawnEffectType) ([]Outcome, error) {
	allow := true
	adapter.PlayingRespawnEffect(w.bus, &effect, &allow)
	if allow {
		w.respawns = append(w.respawns, effect)
	}
	return one(w.record(Outcome{
		Action:  "respawn_effect",
		Kind:    event.KindPlayingRespawnEffect,
		Allowed: allow,
		Detail:  effect.String(),
	})), nil
}

func one(o Outcome) []Outcome { return []Outcome{o} }
