package event

import "github.com/exiled-team/exiled/pkg/types"

// HurtingEventArgs contains all information before a player gets damaged.
type HurtingEventArgs struct {
	attacker *types.Player
	target   *types.Player
	hit      types.HitInfo

	// IsAllowed is whether the target is dealt damage.
	IsAllowed bool
}

// NewHurtingEventArgs creates the payload for KindHurting.
func NewHurtingEventArgs(attacker, target *types.Player, hit types.HitInfo, isAllowed bool) *HurtingEventArgs {
	return &HurtingEventArgs{attacker: attacker, target: target, hit: hit, IsAllowed: isAllowed}
}

// Attacker returns the attacking player.
func (e *HurtingEventArgs) Attacker() *types.Player { return e.attacker }

// Target returns the player who is going to be hurt.
func (e *HurtingEventArgs) Target() *types.Player { return e.target }

// HitInformation returns the hit, including any adjusted amount.
func (e *HurtingEventArgs) HitInformation() types.HitInfo { return e.hit }

// Time returns the time at which the player was hurt.
func (e *HurtingEventArgs) Time() int { return e.hit.Time }

// DamageType returns the tool that dealt the damage.
func (e *HurtingEventArgs) DamageType() types.DamageType { return e.hit.Tool }

// Amount returns the amount of damage to inflict.
func (e *HurtingEventArgs) Amount() float32 { return e.hit.Amount }

// SetAmount changes the amount of damage to inflict.
func (e *HurtingEventArgs) SetAmount(amount float32) { e.hit.Amount = amount }

// Allowed implements Cancellable.
func (e *HurtingEventArgs) Allowed() bool { return e.IsAllowed }

// SetAllowed implements Cancellable.
func (e *HurtingEventArgs) SetAllowed(allowed bool) { e.IsAllowed = allowed }

// DyingEventArgs contains all information before a player dies.
type DyingEventArgs struct {
	killer *types.Player
	target *types.Player

	// ItemsToDrop starts as a copy of the target's inventory.
	ItemsToDrop []types.Item
	// HitInformation is the killing hit.
	HitInformation types.HitInfo
	// IsAllowed is whether the player can be killed.
	IsAllowed bool
}

// NewDyingEventArgs creates the payload for KindDying.
func NewDyingEventArgs(killer, target *types.Player, hit types.HitInfo, isAllowed bool) *DyingEventArgs {
	var items []types.Item
	if target != nil {
		items = append([]types.Item(nil), target.Items...)
	}
	return &DyingEventArgs{
		killer:         killer,
		target:         target,
		ItemsToDrop:    items,
		HitInformation: hit,
		IsAllowed:      isAllowed,
	}
}

// Killer returns the killing player.
func (e *DyingEventArgs) Killer() *types.Player { return e.killer }

// Target returns the dying player.
func (e *DyingEventArgs) Target() *types.Player { return e.target }

// Allowed implements Cancellable.
func (e *DyingEventArgs) Allowed() bool { return e.IsAllowed }

// SetAllowed implements Cancellable.
func (e *DyingEventArgs) SetAllowed(allowed bool) { e.IsAllowed = allowed }

// SpawningRagdollEventArgs contains all information before a player's
// ragdoll is spawned.
type SpawningRagdollEventArgs struct {
	killer   *types.Player
	owner    *types.Player
	players  types.PlayerLookup
	playerID int

	Position        types.Vector3
	Rotation        types.Quaternion
	Velocity        types.Vector3
	RoleType        types.RoleType
	HitInformation  types.HitInfo
	IsRecallAllowed bool // whether SCP-049 can revive the player
	DissonanceID    string
	PlayerNickname  string
	Scp096Death     bool
	IsAllowed       bool
}

// RagdollSpawn holds the mutable ragdoll attributes at construction.
type RagdollSpawn struct {
	Position        types.Vector3
	Rotation        types.Quaternion
	Velocity        types.Vector3
	RoleType        types.RoleType
	HitInformation  types.HitInfo
	IsRecallAllowed bool
	DissonanceID    string
	PlayerNickname  string
	PlayerID        int
	Scp096Death     bool
}

// NewSpawningRagdollEventArgs creates the payload for KindSpawningRagdoll.
// players validates PlayerID assignments, including the initial one.
func NewSpawningRagdollEventArgs(killer, owner *types.Player, players types.PlayerLookup, spawn RagdollSpawn, isAllowed bool) *SpawningRagdollEventArgs {
	e := &SpawningRagdollEventArgs{
		killer:          killer,
		owner:           owner,
		players:         players,
		Position:        spawn.Position,
		Rotation:        spawn.Rotation,
		Velocity:        spawn.Velocity,
		RoleType:        spawn.RoleType,
		HitInformation:  spawn.HitInformation,
		IsRecallAllowed: spawn.IsRecallAllowed,
		DissonanceID:    spawn.DissonanceID,
		PlayerNickname:  spawn.PlayerNickname,
		Scp096Death:     spawn.Scp096Death,
		IsAllowed:       isAllowed,
	}
	e.SetPlayerID(spawn.PlayerID)
	return e
}

// Killer returns the player who killed the ragdoll's owner.
func (e *SpawningRagdollEventArgs) Killer() *types.Player { return e.killer }

// Owner returns the owner of the ragdoll, typically the player who died.
func (e *SpawningRagdollEventArgs) Owner() *types.Player { return e.owner }

// PlayerID returns the id of the player the ragdoll belongs to.
func (e *SpawningRagdollEventArgs) PlayerID() int { return e.playerID }

// SetPlayerID changes the ragdoll's player id. Ids that do not resolve to a
// live player are ignored and the previous id is kept.
func (e *SpawningRagdollEventArgs) SetPlayerID(id int) {
	if e.players == nil || e.players.Get(id) == nil {
		return
	}
	e.playerID = id
}

// Allowed implements Cancellable.
func (e *SpawningRagdollEventArgs) Allowed() bool { return e.IsAllowed }

// SetAllowed implements Cancellable.
func (e *SpawningRagdollEventArgs) SetAllowed(allowed bool) { e.IsAllowed = allowed }
