package engine

import (
	"context"
	"testing"

	"github.com/exiled-team/exiled/pkg/event"
	"github.com/exiled-team/exiled/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld(t *testing.T) (*World, *event.Bus) {
	t.Helper()
	bus := event.NewBus(event.WithLogger(zerolog.Nop()))
	t.Cleanup(func() { bus.Close() })
	return NewWorld(bus, WithLogger(zerolog.Nop())), bus
}

func TestRunScenarioFile(t *testing.T) {
	w, bus := newTestWorld(t)
	event.Dying.Subscribe(bus, func(ev *event.DyingEventArgs) {
		// Keycards never drop.
		var kept []types.Item
		for _, item := range ev.ItemsToDrop {
			if item.Type != types.ItemKeycardJanitor {
				kept = append(kept, item)
			}
		}
		ev.ItemsToDrop = kept
	})

	s, err := LoadScenario("testdata/round.yaml")
	require.NoError(t, err)
	assert.Equal(t, "facility round", s.Name)

	outcomes, err := RunScenario(context.Background(), w, s)
	require.NoError(t, err)

	var got []string
	for _, o := range outcomes {
		got = append(got, o.Action)
	}
	assert.Equal(t, []string{
		"door_interact",
		"door_interact",
		"generator_unlock",
		"generator_open",
		"generator_insert",
		"generator_finish",
		"scp914_upgrade",
		"changing_camera",
		"gaining_experience",
		"gaining_level",
		"hurting",
		"dying",
		"spawning_ragdoll",
	}, got)

	assert.False(t, outcomes[0].Allowed, "janitor keycard cannot open GATE_A")
	assert.True(t, outcomes[1].Allowed)
	assert.Equal(t, 2, outcomes[1].Step)

	door, _ := w.Door("GATE_A")
	assert.True(t, door.Open)

	g, _ := w.Generator(1)
	assert.True(t, g.Finished)

	assert.Equal(t, "HCZ_079_HALL", w.Scp079().Camera)
	assert.Equal(t, float32(99), w.Scp079().Power)
	assert.Equal(t, 2, w.Scp079().Level)

	var pickupTypes []types.ItemType
	for _, p := range w.Pickups() {
		pickupTypes = append(pickupTypes, p.Type)
	}
	assert.ElementsMatch(t, []types.ItemType{types.ItemKeycardScientist, types.ItemMedkit, types.ItemCoin}, pickupTypes)

	d, _ := w.Player(1)
	assert.Equal(t, types.RoleSpectator, d.Role)
	assert.Nil(t, w.Get(1))
	require.Len(t, w.Ragdolls(), 1)
	assert.Equal(t, 1, w.Ragdolls()[0].PlayerID)
	assert.Equal(t, types.RoleClassD, w.Ragdolls()[0].Role)
}

func TestParseScenarioUnknownAction(t *testing.T) {
	_, err := ParseScenario([]byte("steps:\n  - action: door_interac\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "door_interact"`)
}

func TestScenarioRunHonoursContext(t *testing.T) {
	w, _ := newTestWorld(t)
	s, err := ParseScenario([]byte("steps:\n  - action: generator_charge\n    amount: 1\n"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = RunScenario(ctx, w, s)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScenarioBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown role", "players:\n  - id: 1\n    role: Wizard\n"},
		{"unknown item", "players:\n  - id: 1\n    role: ClassD\n    items: [Lightsaber]\n"},
		{"unknown scp079 player", "scp079:\n  player: 9\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newTestWorld(t)
			s, err := ParseScenario([]byte(tt.yaml))
			require.NoError(t, err)
			assert.Error(t, s.Build(w))
		})
	}
}

func TestDoorVetoedBySubscriber(t *testing.T) {
	w, bus := newTestWorld(t)
	w.AddPlayer(&types.Player{ID: 1, Nickname: "guard", Role: types.RoleFacilityGuard, Health: 100})
	w.AddDoor(&types.Door{ID: 1, Name: "LCZ_CAFE"})

	event.DoorInteract.Subscribe(bus, func(ev *event.DoorInteractEventArgs) { ev.IsAllowed = false })

	out, err := w.InteractDoor(1, "LCZ_CAFE")
	require.NoError(t, err)
	assert.False(t, out[0].Allowed)
	door, _ := w.Door("LCZ_CAFE")
	assert.False(t, door.Open)
}

func TestTeslaChainsIntoDamage(t *testing.T) {
	w, bus := newTestWorld(t)
	w.AddPlayer(&types.Player{ID: 1, Nickname: "D-1", Role: types.RoleClassD, Health: 100})
	w.AddTesla(&types.TeslaGate{ID: 1})

	out, err := w.ApproachTesla(1, 1, true)
	require.NoError(t, err)
	require.Len(t, out, 4)
	assert.Equal(t, "spawning_ragdoll", out[3].Action)

	// A vetoed trigger causes no damage.
	w.AddPlayer(&types.Player{ID: 2, Nickname: "D-2", Role: types.RoleClassD, Health: 100})
	event.TriggerTesla.Subscribe(bus, func(ev *event.TriggerTeslaEventArgs) { ev.IsTriggerable = false })
	out, err = w.ApproachTesla(2, 1, true)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.False(t, out[0].Allowed)
}

func TestDyingVetoKeepsPlayerAlive(t *testing.T) {
	w, bus := newTestWorld(t)
	w.AddPlayer(&types.Player{ID: 1, Nickname: "D-1", Role: types.RoleClassD, Health: 10})
	event.Dying.Subscribe(bus, func(ev *event.DyingEventArgs) { ev.IsAllowed = false })

	out, err := w.Damage(0, 1, 50, types.DamageFalldown)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.False(t, out[1].Allowed)

	p, _ := w.Player(1)
	assert.Equal(t, float32(1), p.Health)
	assert.Equal(t, types.RoleClassD, p.Role)
}

func TestRagdollPlayerIDValidation(t *testing.T) {
	w, bus := newTestWorld(t)
	w.AddPlayer(&types.Player{ID: 1, Nickname: "victim", Role: types.RoleClassD, Health: 10})
	w.AddPlayer(&types.Player{ID: 2, Nickname: "bystander", Role: types.RoleScientist, Health: 100})

	event.SpawningRagdoll.Subscribe(bus, func(ev *event.SpawningRagdollEventArgs) {
		ev.SetPlayerID(42)
	})
	_, err := w.Damage(0, 1, 100, types.DamageWall)
	require.NoError(t, err)
	assert.Equal(t, 1, w.Ragdolls()[0].PlayerID)

	event.SpawningRagdoll.Subscribe(bus, func(ev *event.SpawningRagdollEventArgs) {
		ev.SetPlayerID(2)
	})
	w.AddPlayer(&types.Player{ID: 3, Nickname: "second", Role: types.RoleClassD, Health: 10})
	_, err = w.Damage(0, 3, 100, types.DamageWall)
	require.NoError(t, err)
	assert.Equal(t, 2, w.Ragdolls()[1].PlayerID)
}

func TestScp914Refine(t *testing.T) {
	tests := []struct {
		in   types.ItemType
		knob types.Scp914Knob
		out  types.ItemType
	}{
		{types.ItemKeycardJanitor, types.KnobFine, types.ItemKeycardScientist},
		{types.ItemKeycardO5, types.KnobFine, types.ItemKeycardO5},
		{types.ItemKeycardScientist, types.KnobCoarse, types.ItemKeycardJanitor},
		{types.ItemKeycardJanitor, types.KnobCoarse, types.ItemNone},
		{types.ItemKeycardJanitor, types.KnobVeryFine, types.ItemKeycardO5},
		{types.ItemCoin, types.KnobRough, types.ItemNone},
		{types.ItemCoin, types.KnobOneToOne, types.ItemCoin},
		{types.ItemMedkit, types.KnobVeryFine, types.ItemAdrenaline},
	}

	for _, tt := range tests {
		t.Run(tt.in.String()+"/"+tt.knob.String(), func(t *testing.T) {
			assert.Equal(t, tt.out, refine(tt.in, tt.knob))
		})
	}
}

func TestScp914ItemListReplacedBySubscriber(t *testing.T) {
	w, bus := newTestWorld(t)
	w.LoadScp914([]types.ItemType{types.ItemCoin, types.ItemKeycardJanitor})

	event.Scp914Upgrade.Subscribe(bus, func(ev *event.Scp914UpgradeEventArgs) {
		var keep []types.Pickup
		for _, item := range ev.Items {
			if item.Type == types.ItemKeycardJanitor {
				keep = append(keep, item)
			}
		}
		ev.Items = keep
	})

	out, err := w.RunScp914(types.KnobFine, nil)
	require.NoError(t, err)
	assert.True(t, out[0].Allowed)
	require.Len(t, w.Pickups(), 1)
	assert.Equal(t, types.ItemKeycardScientist, w.Pickups()[0].Type)
}

func TestScp079PowerAndCostOverride(t *testing.T) {
	w, bus := newTestWorld(t)
	w.AddPlayer(&types.Player{ID: 1, Nickname: "computer", Role: types.RoleSpectator})
	w.AddRoom(&types.Room{Name: "LCZ_914", Zone: "light"})
	require.NoError(t, w.SetScp079(1, 1, 30))

	out, err := w.Lockdown("LCZ_914")
	require.NoError(t, err)
	assert.False(t, out[0].Allowed, "not enough power")

	event.LockingDown.Subscribe(bus, func(ev *event.LockingDownEventArgs) {
		ev.AuxiliaryPowerCost = 10
		ev.IsAllowed = true
	})
	out, err = w.Lockdown("LCZ_914")
	require.NoError(t, err)
	assert.True(t, out[0].Allowed)
	assert.Equal(t, float32(20), w.Scp079().Power)
	assert.Equal(t, []string{"LCZ_914"}, w.Scp079().LockedDown)

	_, err = w.StartSpeaker("LCZ_914")
	require.NoError(t, err)
	assert.Equal(t, "LCZ_914", w.Scp079().Speaking)
	_, err = w.StopSpeaker()
	require.NoError(t, err)
	assert.Empty(t, w.Scp079().Speaking)

	_, err = w.Recontain()
	require.NoError(t, err)
	assert.Nil(t, w.Scp079())
	_, err = w.Lockdown("LCZ_914")
	assert.ErrorIs(t, err, ErrNoScp079)
}

func TestRespawnEffectSwap(t *testing.T) {
	w, bus := newTestWorld(t)
	event.PlayingRespawnEffect.Subscribe(bus, func(ev *event.PlayingRespawnEffectEventArgs) {
		if ev.Effect == types.SummonChaosInsurgencyVan {
			ev.Effect = types.SummonNtfChopper
		}
	})

	_, err := w.PlayRespawnEffect(types.SummonChaosInsurgencyVan)
	require.NoError(t, err)
	assert.Equal(t, []types.RespawnEffectType{types.SummonNtfChopper}, w.RespawnEffects())
}

func TestWarheadLever(t *testing.T) {
	w, _ := newTestWorld(t)
	w.AddPlayer(&types.Player{ID: 1, Role: types.RoleNtfCadet, Health: 100})

	_, err := w.SwitchWarheadLever(1)
	require.NoError(t, err)
	assert.True(t, w.WarheadArmed())

	_, err = w.SwitchWarheadLever(99)
	assert.Error(t, err)
}
