package adapter_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/exiled-team/exiled/internal/adapter"
	"github.com/exiled-team/exiled/pkg/event"
	"github.com/exiled-team/exiled/pkg/types"
)

var _ = Describe("Call-site adapters", func() {
	var (
		bus    *event.Bus
		faults []*event.SubscriberFault
		player *types.Player
	)

	BeforeEach(func() {
		faults = nil
		bus = event.NewBus(
			event.WithLogger(zerolog.Nop()),
			event.WithReporter(event.ReporterFunc(func(f *event.SubscriberFault) {
				faults = append(faults, f)
			})),
		)
		player = &types.Player{ID: 2, Nickname: "D-9341", Role: types.RoleClassD, Health: 100}
	})

	AfterEach(func() {
		Expect(bus.Close()).To(Succeed())
	})

	Describe("DoorInteract", func() {
		var door *types.Door

		BeforeEach(func() {
			door = &types.Door{ID: 7, Name: "GATE_A", Permission: "CONT_LVL_3"}
		})

		It("leaves the decision alone without subscribers", func() {
			allow := true
			adapter.DoorInteract(bus, player, door, &allow)
			Expect(allow).To(BeTrue())
			Expect(bus.Stats().Dispatches).To(BeZero())

			allow = false
			adapter.DoorInteract(bus, player, door, &allow)
			Expect(allow).To(BeFalse())
		})

		It("applies a veto", func() {
			event.DoorInteract.Subscribe(bus, func(ev *event.DoorInteractEventArgs) {
				if ev.Door().Name == "GATE_A" {
					ev.IsAllowed = false
				}
			})

			allow := true
			adapter.DoorInteract(bus, player, door, &allow)
			Expect(allow).To(BeFalse())
		})

		It("lets the last writer win", func() {
			event.DoorInteract.Subscribe(bus, func(ev *event.DoorInteractEventArgs) { ev.IsAllowed = false })
			event.DoorInteract.Subscribe(bus, func(ev *event.DoorInteractEventArgs) { ev.IsAllowed = true })

			allow := true
			adapter.DoorInteract(bus, player, door, &allow)
			Expect(allow).To(BeTrue())
		})

		It("keeps earlier writes when a later subscriber panics", func() {
			event.DoorInteract.Subscribe(bus, func(ev *event.DoorInteractEventArgs) { ev.IsAllowed = false })
			event.DoorInteract.Subscribe(bus, func(*event.DoorInteractEventArgs) { panic("door broke") }, event.WithOwner("broken"))

			allow := true
			Expect(func() { adapter.DoorInteract(bus, player, door, &allow) }).NotTo(Panic())
			Expect(allow).To(BeFalse())
			Expect(faults).To(HaveLen(1))
			Expect(faults[0].Owner).To(Equal("broken"))
			Expect(faults[0].Kind).To(Equal(event.KindDoorInteract))
		})
	})

	Describe("Scp914Upgrade", func() {
		var machine *types.Scp914Machine

		BeforeEach(func() {
			machine = &types.Scp914Machine{Knob: types.KnobFine}
		})

		It("replaces the caller's item list", func() {
			coin := types.Pickup{Serial: "01", Type: types.ItemCoin}
			medkit := types.Pickup{Serial: "02", Type: types.ItemMedkit}
			items := []types.Pickup{coin, medkit}

			event.Scp914Upgrade.Subscribe(bus, func(ev *event.Scp914UpgradeEventArgs) {
				Expect(ev.KnobSetting()).To(Equal(types.KnobFine))
				ev.Items = ev.Items[:1]
			})

			allow := true
			adapter.Scp914Upgrade(bus, machine, []*types.Player{player}, &items, machine.Knob, &allow)
			Expect(allow).To(BeTrue())
			Expect(items).To(Equal([]types.Pickup{coin}))
		})

		It("can empty the list and cancel", func() {
			items := []types.Pickup{{Serial: "01", Type: types.ItemCoin}}
			event.Scp914Upgrade.Subscribe(bus, func(ev *event.Scp914UpgradeEventArgs) {
				ev.Items = nil
				ev.IsAllowed = false
			})

			allow := true
			adapter.Scp914Upgrade(bus, machine, nil, &items, machine.Knob, &allow)
			Expect(allow).To(BeFalse())
			Expect(items).To(BeEmpty())
		})
	})

	Describe("SpawningRagdoll", func() {
		var (
			owner   *types.Player
			players types.PlayerLookup
		)

		BeforeEach(func() {
			owner = &types.Player{ID: 5, Nickname: "Scientist", Role: types.RoleScientist}
			live := map[int]*types.Player{player.ID: player, owner.ID: owner}
			players = types.PlayerLookupFunc(func(id int) *types.Player { return live[id] })
		})

		It("ignores player ids that resolve to nobody", func() {
			event.SpawningRagdoll.Subscribe(bus, func(ev *event.SpawningRagdollEventArgs) {
				ev.SetPlayerID(999)
			})

			spawn := event.RagdollSpawn{PlayerID: owner.ID, PlayerNickname: owner.Nickname, RoleType: owner.Role}
			allow := true
			adapter.SpawningRagdoll(bus, player, owner, players, &spawn, &allow)
			Expect(spawn.PlayerID).To(Equal(owner.ID))
			Expect(faults).To(BeEmpty())
		})

		It("accepts player ids of live players", func() {
			event.SpawningRagdoll.Subscribe(bus, func(ev *event.SpawningRagdollEventArgs) {
				ev.SetPlayerID(player.ID)
				ev.PlayerNickname = "someone else"
				ev.IsRecallAllowed = false
			})

			spawn := event.RagdollSpawn{PlayerID: owner.ID, IsRecallAllowed: true}
			allow := true
			adapter.SpawningRagdoll(bus, player, owner, players, &spawn, &allow)
			Expect(spawn.PlayerID).To(Equal(player.ID))
			Expect(spawn.PlayerNickname).To(Equal("someone else"))
			Expect(spawn.IsRecallAllowed).To(BeFalse())
		})
	})

	Describe("Player damage", func() {
		It("lets subscribers adjust damage", func() {
			event.Hurting.Subscribe(bus, func(ev *event.HurtingEventArgs) {
				if ev.DamageType() == types.DamageFalldown {
					ev.SetAmount(ev.Amount() / 2)
				}
			})

			hit := types.HitInfo{Amount: 40, Tool: types.DamageFalldown}
			allow := true
			adapter.Hurting(bus, nil, player, &hit, &allow)
			Expect(hit.Amount).To(BeNumerically("==", 20))
			Expect(hit.Tool).To(Equal(types.DamageFalldown))
		})

		It("lets subscribers keep items from dropping", func() {
			player.Items = []types.Item{{Serial: "a", Type: types.ItemKeycardO5}, {Serial: "b", Type: types.ItemCoin}}
			event.Dying.Subscribe(bus, func(ev *event.DyingEventArgs) {
				var kept []types.Item
				for _, item := range ev.ItemsToDrop {
					if item.Type != types.ItemKeycardO5 {
						kept = append(kept, item)
					}
				}
				ev.ItemsToDrop = kept
			})

			hit := types.HitInfo{Amount: 100, Tool: types.DamageTesla}
			var drops []types.Item
			allow := true
			adapter.Dying(bus, nil, player, &hit, &drops, &allow)
			Expect(drops).To(Equal([]types.Item{{Serial: "b", Type: types.ItemCoin}}))
			Expect(player.Items).To(HaveLen(2))
		})
	})

	Describe("SCP-079", func() {
		It("reads back costs and levels", func() {
			event.LockingDown.Subscribe(bus, func(ev *event.LockingDownEventArgs) { ev.AuxiliaryPowerCost = 0 })
			event.GainingLevel.Subscribe(bus, func(ev *event.GainingLevelEventArgs) {
				if ev.NewLevel > ev.OldLevel()+1 {
					ev.NewLevel = ev.OldLevel() + 1
				}
			})

			cost := float32(60)
			allow := true
			adapter.LockingDown(bus, player, &types.Room{Name: "HCZ_079", Zone: "heavy"}, &cost, &allow)
			Expect(cost).To(BeZero())

			level := 4
			adapter.GainingLevel(bus, player, 1, &level, &allow)
			Expect(level).To(Equal(2))
		})

		It("notifies recontainment", func() {
			var seen *types.Player
			event.Recontained.Subscribe(bus, func(ev *event.RecontainedEventArgs) { seen = ev.Player() })
			adapter.Recontained(bus, player)
			Expect(seen).To(BeIdenticalTo(player))
		})
	})

	Describe("Duplicate registration", func() {
		It("invokes the same handler once per registration", func() {
			calls := 0
			fn := func(*event.GeneratorFinishEventArgs) { calls++ }
			event.GeneratorFinish.Subscribe(bus, fn)
			event.GeneratorFinish.Subscribe(bus, fn)

			adapter.GeneratorFinish(bus, &types.Generator{ID: 1})
			Expect(calls).To(Equal(2))
		})
	})
})
