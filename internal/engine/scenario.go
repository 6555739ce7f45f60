package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/exiled-team/exiled/pkg/types"
	"gopkg.in/yaml.v3"
)

// Scenario defines the YAML schema for a simulated round.
type Scenario struct {
	Name       string            `yaml:"name"`
	Players    []PlayerSpec      `yaml:"players"`
	Doors      []types.Door      `yaml:"doors"`
	Generators []types.Generator `yaml:"generators"`
	Teslas     []types.TeslaGate `yaml:"teslas"`
	Cameras    []types.Camera    `yaml:"cameras"`
	Rooms      []types.Room      `yaml:"rooms"`
	Scp079     *Scp079Spec       `yaml:"scp079"`
	Steps      []Step            `yaml:"steps"`
}

// PlayerSpec describes a player at the start of the round.
type PlayerSpec struct {
	ID       int      `yaml:"id"`
	Nickname string   `yaml:"nickname"`
	Role     string   `yaml:"role"`   // role name, e.g. ClassD
	Health   float32  `yaml:"health"` // defaults to 100
	Items    []string `yaml:"items"`  // item type names
}

// Scp079Spec picks the SCP-079 player.
type Scp079Spec struct {
	Player int     `yaml:"player"`
	Level  int     `yaml:"level"` // defaults to 1
	Power  float32 `yaml:"power"`
}

// Step is one world action. Only the fields the action uses are read.
type Step struct {
	Action    string   `yaml:"action"`
	Player    int      `yaml:"player"`
	Players   []int    `yaml:"players"`
	Attacker  int      `yaml:"attacker"`
	Target    int      `yaml:"target"`
	Door      string   `yaml:"door"`
	Camera    string   `yaml:"camera"`
	Room      string   `yaml:"room"`
	Generator int      `yaml:"generator"`
	Gate      int      `yaml:"gate"`
	InRange   bool     `yaml:"in_range"`
	Amount    float32  `yaml:"amount"`
	Tool      string   `yaml:"tool"`
	Knob      string   `yaml:"knob"`
	Items     []string `yaml:"items"`
	Effect    string   `yaml:"effect"`
	Gain      string   `yaml:"gain"`
}

type stepFunc func(w *World, s Step) ([]Outcome, error)

var actions = map[string]stepFunc{
	"warhead_lever": func(w *World, s Step) ([]Outcome, error) { return w.SwitchWarheadLever(s.Player) },
	"door_interact": func(w *World, s Step) ([]Outcome, error) { return w.InteractDoor(s.Player, s.Door) },
	"tesla":         func(w *World, s Step) ([]Outcome, error) { return w.ApproachTesla(s.Player, s.Gate, s.InRange) },
	"scp914_load": func(w *World, s Step) ([]Outcome, error) {
		items, err := parseItems(s.Items)
		if err != nil {
			return nil, err
		}
		w.LoadScp914(items)
		return nil, nil
	},
	"scp914_upgrade": func(w *World, s Step) ([]Outcome, error) {
		return w.RunScp914(types.ParseKnob(s.Knob), s.Players)
	},
	"generator_unlock": generatorStep(GeneratorUnlock),
	"generator_open":   generatorStep(GeneratorOpen),
	"generator_close":  generatorStep(GeneratorClose),
	"generator_insert": generatorStep(GeneratorInsert),
	"generator_eject":  generatorStep(GeneratorEject),
	"generator_charge": func(w *World, s Step) ([]Outcome, error) { return w.ChargeGenerators(s.Amount), nil },
	"respawn_effect": func(w *World, s Step) ([]Outcome, error) {
		effect, ok := types.ParseRespawnEffect(s.Effect)
		if !ok {
			return nil, fmt.Errorf("unknown respawn effect %q", s.Effect)
		}
		return w.PlayRespawnEffect(effect)
	},
	"damage": func(w *World, s Step) ([]Outcome, error) {
		return w.Damage(s.Attacker, s.Target, s.Amount, types.DamageType(s.Tool))
	},
	"scp079_camera":   func(w *World, s Step) ([]Outcome, error) { return w.ChangeCamera(s.Camera) },
	"scp079_tesla":    func(w *World, s Step) ([]Outcome, error) { return w.InteractTesla(s.Gate) },
	"scp079_door":     func(w *World, s Step) ([]Outcome, error) { return w.TriggerDoor(s.Door) },
	"scp079_elevator": func(w *World, s Step) ([]Outcome, error) { return w.ElevatorTeleport(s.Camera) },
	"scp079_lockdown": func(w *World, s Step) ([]Outcome, error) { return w.Lockdown(s.Room) },
	"scp079_speaker":  func(w *World, s Step) ([]Outcome, error) { return w.StartSpeaker(s.Room) },
	"scp079_speaker_stop": func(w *World, s Step) ([]Outcome, error) {
		return w.StopSpeaker()
	},
	"scp079_experience": func(w *World, s Step) ([]Outcome, error) {
		gain := types.ExperienceGainType(s.Gain)
		if gain == "" {
			gain = types.GainGeneralInteractions
		}
		return w.GainExperience(gain, s.Amount)
	},
	"scp079_recontain": func(w *World, s Step) ([]Outcome, error) { return w.Recontain() },
}

func generatorStep(action GeneratorAction) stepFunc {
	return func(w *World, s Step) ([]Outcome, error) {
		return w.UseGenerator(s.Player, s.Generator, action)
	}
}

// Actions returns the step action names in sorted order.
func Actions() []string {
	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnknownActionError is returned for a step whose action does not exist.
type UnknownActionError struct {
	Action     string
	Suggestion string
}

func (e *UnknownActionError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown action %q (did you mean %q?)", e.Action, e.Suggestion)
	}
	return fmt.Sprintf("unknown action %q", e.Action)
}

func unknownAction(name string) *UnknownActionError {
	best, bestDist := "", 4
	for _, candidate := range Actions() {
		if d := levenshtein.ComputeDistance(name, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return &UnknownActionError{Action: name, Suggestion: best}
}

func parseItems(names []string) ([]types.ItemType, error) {
	items := make([]types.ItemType, 0, len(names))
	for _, name := range names {
		t := types.ParseItemType(name)
		if t == types.ItemNone {
			return nil, fmt.Errorf("unknown item %q", name)
		}
		items = append(items, t)
	}
	return items, nil
}

// LoadScenario reads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// ParseScenario parses and validates a YAML scenario.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	for i, step := range s.Steps {
		if _, ok := actions[step.Action]; !ok {
			return nil, fmt.Errorf("step %d: %w", i+1, unknownAction(step.Action))
		}
	}
	return &s, nil
}

// Build populates w with the scenario's starting state.
func (s *Scenario) Build(w *World) error {
	for _, spec := range s.Players {
		role := types.ParseRole(spec.Role)
		if role == types.RoleNone {
			return fmt.Errorf("player %d: unknown role %q", spec.ID, spec.Role)
		}
		items, err := parseItems(spec.Items)
		if err != nil {
			return fmt.Errorf("player %d: %w", spec.ID, err)
		}
		p := &types.Player{ID: spec.ID, Nickname: spec.Nickname, Role: role, Health: spec.Health}
		if p.Health == 0 {
			p.Health = 100
		}
		for _, t := range items {
			p.Items = append(p.Items, types.Item{Serial: newSerial(), Type: t})
		}
		w.AddPlayer(p)
	}
	for i := range s.Doors {
		d := s.Doors[i]
		w.AddDoor(&d)
	}
	for i := range s.Generators {
		g := s.Generators[i]
		w.AddGenerator(&g)
	}
	for i := range s.Teslas {
		t := s.Teslas[i]
		w.AddTesla(&t)
	}
	for i := range s.Cameras {
		c := s.Cameras[i]
		w.AddCamera(&c)
	}
	for i := range s.Rooms {
		r := s.Rooms[i]
		w.AddRoom(&r)
	}
	if s.Scp079 != nil {
		level := s.Scp079.Level
		if level == 0 {
			level = 1
		}
		if err := w.SetScp079(s.Scp079.Player, level, s.Scp079.Power); err != nil {
			return err
		}
	}
	return nil
}

// Run executes every step against w in order. It stops at the first step
// that fails or when ctx is cancelled.
func (s *Scenario) Run(ctx context.Context, w *World) ([]Outcome, error) {
	var outcomes []Outcome
	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		fn, ok := actions[step.Action]
		if !ok {
			return outcomes, fmt.Errorf("step %d: %w", i+1, unknownAction(step.Action))
		}
		out, err := fn(w, step)
		if err != nil {
			return outcomes, fmt.Errorf("step %d (%s): %w", i+1, step.Action, err)
		}
		for _, o := range out {
			o.Step = i + 1
			outcomes = append(outcomes, o)
		}
	}
	return outcomes, nil
}

// RunScenario populates w from s and runs its steps.
func RunScenario(ctx context.Context, w *World, s *Scenario) ([]Outcome, error) {
	if err := s.Build(w); err != nil {
		return nil, err
	}
	return s.Run(ctx, w)
}
