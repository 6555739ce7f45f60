// Package engine is a small in-memory stand-in for the game server. Every
// world action goes through the matching call-site adapter and applies the
// decision the subscribers left behind.
package engine

import (
	"fmt"
	"sort"

	"github.com/exiled-team/exiled/pkg/event"
	"github.com/exiled-team/exiled/pkg/types"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Outcome is the result of one world action.
type Outcome struct {
	Step    int        `json:"step"`
	Action  string     `json:"action"`
	Kind    event.Kind `json:"-"`
	Allowed bool       `json:"allowed"`
	Detail  string     `json:"detail,omitempty"`
}

// Scp079State is the state of the SCP-079 player.
type Scp079State struct {
	PlayerID   int
	Level      int
	Experience float32
	Power      float32
	Camera     string
	Speaking   string
	LockedDown []string
}

// Ragdoll is a spawned corpse.
type Ragdoll struct {
	PlayerID        int
	Nickname        string
	Role            types.RoleType
	IsRecallAllowed bool
}

// World holds every entity the actions operate on.
type World struct {
	bus    *event.Bus
	logger zerolog.Logger

	players    map[int]*types.Player
	doors      map[string]*types.Door
	generators map[int]*types.Generator
	teslas     map[int]*types.TeslaGate
	cameras    map[string]*types.Camera
	rooms      map[string]*types.Room

	scp914       *types.Scp914Machine
	scp914Intake []types.Pickup
	scp079       *Scp079State

	warheadArmed bool
	respawns     []types.RespawnEffectType
	pickups      []types.Pickup
	ragdolls     []Ragdoll
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the world logger.
func WithLogger(l zerolog.Logger) Option {
	return func(w *World) {
		w.logger = l
	}
}

// NewWorld creates an empty world dispatching to bus.
func NewWorld(bus *event.Bus, opts ...Option) *World {
	w := &World{
		bus:        bus,
		logger:     log.Logger.With().Str("component", "engine").Logger(),
		players:    make(map[int]*types.Player),
		doors:      make(map[string]*types.Door),
		generators: make(map[int]*types.Generator),
		teslas:     make(map[int]*types.TeslaGate),
		cameras:    make(map[string]*types.Camera),
		rooms:      make(map[string]*types.Room),
		scp914:     &types.Scp914Machine{Knob: types.KnobOneToOne},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Get implements types.PlayerLookup. Spectators are not live players.
func (w *World) Get(id int) *types.Player {
	p := w.players[id]
	if p == nil || p.Role == types.RoleSpectator || p.Role == types.RoleNone {
		return nil
	}
	return p
}

// AddPlayer adds or replaces a player.
func (w *World) AddPlayer(p *types.Player) { w.players[p.ID] = p }

// AddDoor adds or replaces a door, keyed by name.
func (w *World) AddDoor(d *types.Door) { w.doors[d.Name] = d }

// AddGenerator adds or replaces a generator.
func (w *World) AddGenerator(g *types.Generator) { w.generators[g.ID] = g }

// AddTesla adds or replaces a tesla gate.
func (w *World) AddTesla(t *types.TeslaGate) { w.teslas[t.ID] = t }

// AddCamera adds or replaces a camera, keyed by name.
func (w *World) AddCamera(c *types.Camera) { w.cameras[c.Name] = c }

// AddRoom adds or replaces a room, keyed by name.
func (w *World) AddRoom(r *types.Room) { w.rooms[r.Name] = r }

// SetScp079 makes playerID SCP-079 with the given level and power.
func (w *World) SetScp079(playerID, level int, power float32) error {
	p := w.players[playerID]
	if p == nil {
		return fmt.Errorf("scp079: unknown player %d", playerID)
	}
	p.Role = types.RoleScp079
	w.scp079 = &Scp079State{PlayerID: playerID, Level: level, Power: power}
	return nil
}

// Player returns a player by id, live or not.
func (w *World) Player(id int) (*types.Player, bool) {
	p, ok := w.players[id]
	return p, ok
}

// Door returns a door by name.
func (w *World) Door(name string) (*types.Door, bool) {
	d, ok := w.doors[name]
	return d, ok
}

// Generator returns a generator by id.
func (w *World) Generator(id int) (*types.Generator, bool) {
	g, ok := w.generators[id]
	return g, ok
}

// Scp079 returns the SCP-079 state, or nil when nobody is SCP-079.
func (w *World) Scp079() *Scp079State { return w.scp079 }

// Scp914 returns the SCP-914 machine.
func (w *World) Scp914() *types.Scp914Machine { return w.scp914 }

// WarheadArmed reports the warhead lever position.
func (w *World) WarheadArmed() bool { return w.warheadArmed }

// Pickups returns the items lying in the world, sorted by serial.
func (w *World) Pickups() []types.Pickup {
	out := append([]types.Pickup(nil), w.pickups...)
	sort.Slice(out, func(i, j int) bool { return out[i].Serial < out[j].Serial })
	return out
}

// Ragdolls returns the spawned ragdolls in spawn order.
func (w *World) Ragdolls() []Ragdoll { return append([]Ragdoll(nil), w.ragdolls...) }

// RespawnEffects returns the respawn effects played so far.
func (w *World) RespawnEffects() []types.RespawnEffectType {
	return append([]types.RespawnEffectType(nil), w.respawns...)
}

// newSerial returns a fresh item serial.
func newSerial() string {
	return ulid.Make().String()
}

func (w *World) player(id int) (*types.Player, error) {
	p := w.Get(id)
	if p == nil {
		return nil, fmt.Errorf("no live player %d", id)
	}
	return p, nil
}

func (w *World) record(o Outcome) Outcome {
	w.logger.Debug().
		Str("action", o.Action).
		Str("kind", o.Kind.String()).
		Bool("allowed", o.Allowed).
		Str("detail", o.Detail).
		Msg("world action")
	return o
}
