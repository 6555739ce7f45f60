package engine

import (
	"fmt"

	"github.com/exiled-team/exiled/internal/adapter"
	"github.com/exiled-team/exiled/pkg/event"
	"github.com/exiled-team/exiled/pkg/types"
)

// Damage hits target. attackerID 0 means the world (falls, teslas...).
func (w *World) Damage(attackerID, targetID int, amount float32, tool types.DamageType) ([]Outcome, error) {
	var attacker *types.Player
	if attackerID != 0 {
		var err error
		if attacker, err = w.player(attackerID); err != nil {
			return nil, err
		}
	}
	target, err := w.player(targetID)
	if err != nil {
		return nil, err
	}

	hit := types.HitInfo{Amount: amount, Tool: tool}
	if attacker != nil {
		hit.Attacker = attacker.Nickname
	}
	return w.damage(attacker, target, hit)
}

// damage runs the hurting, dying and ragdoll call sites in order.
func (w *World) damage(attacker, target *types.Player, hit types.HitInfo) ([]Outcome, error) {
	allow := target.Role != types.RoleTutorial
	adapter.Hurting(w.bus, attacker, target, &hit, &allow)
	if allow {
		target.Health -= hit.Amount
	}
	out := one(w.record(Outcome{
		Action:  "hurting",
		Kind:    event.KindHurting,
		Allowed: allow,
		Detail:  fmt.Sprintf("%s took %.0f (%s) health=%.0f", target.Nickname, hit.Amount, hit.Tool, target.Health),
	}))
	if !allow || target.Health > 0 {
		return out, nil
	}

	var drops []types.Item
	allow = true
	adapter.Dying(w.bus, attacker, target, &hit, &drops, &allow)
	if !allow {
		// A vetoed death leaves the player alive on 1 health.
		target.Health = 1
		return append(out, w.record(Outcome{
			Action:  "dying",
			Kind:    event.KindDying,
			Allowed: false,
			Detail:  fmt.Sprintf("%s survived", target.Nickname),
		})), nil
	}

	role := target.Role
	for _, item := range drops {
		w.pickups = append(w.pickups, types.Pickup{Serial: item.Serial, Type: item.Type})
	}
	target.Items = nil
	target.Health = 0
	out = append(out, w.record(Outcome{
		Action:  "dying",
		Kind:    event.KindDying,
		Allowed: true,
		Detail:  fmt.Sprintf("%s died, dropped %d", target.Nickname, len(drops)),
	}))

	spawn := event.RagdollSpawn{
		RoleType:        role,
		HitInformation:  hit,
		IsRecallAllowed: role != types.RoleScp096 && role != types.RoleScp173,
		PlayerNickname:  target.Nickname,
		PlayerID:        target.ID,
		Scp096Death:     hit.Tool == types.DamageScp096,
	}
	allow = true
	adapter.SpawningRagdoll(w.bus, attacker, target, w, &spawn, &allow)
	target.Role = types.RoleSpectator
	if allow {
		w.ragdolls = append(w.ragdolls, Ragdoll{
			PlayerID:        spawn.PlayerID,
			Nickname:        spawn.PlayerNickname,
			Role:            spawn.RoleType,
			IsRecallAllowed: spawn.IsRecallAllowed,
		})
	}
	return append(out, w.record(Outcome{
		Action:  "spawning_ragdoll",
		Kind:    event.KindSpawningRagdoll,
		Allowed: allow,
		Detail:  fmt.Sprintf("ragdoll of %s (player %d)", spawn.PlayerNickname, spawn.PlayerID),
	})), nil
}
