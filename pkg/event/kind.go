package event

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Kind identifies one category of observable host action.
type Kind uint8

const (
	kindNone Kind = iota

	// Map
	KindWarheadLever
	KindDoorInteract
	KindTriggerTesla
	KindScp914Upgrade
	KindGeneratorUnlock
	KindGeneratorOpen
	KindGeneratorClose
	KindGeneratorInsert
	KindGeneratorEject
	KindGeneratorFinish
	KindPlayingRespawnEffect

	// Scp079
	KindChangingCamera
	KindGainingExperience
	KindGainingLevel
	KindInteractingTesla
	KindTriggeringDoor
	KindElevatorTeleporting
	KindLockingDown
	KindStartingSpeaker
	KindStoppingSpeaker
	KindRecontained

	// Player
	KindHurting
	KindDying
	KindSpawningRagdoll

	kindCount
)

type kindInfo struct {
	name     string
	vetoable bool
}

var kinds = [kindCount]kindInfo{
	kindNone: {name: "none"},

	KindWarheadLever:         {name: "map.warhead_lever", vetoable: true},
	KindDoorInteract:         {name: "map.door_interact", vetoable: true},
	KindTriggerTesla:         {name: "map.trigger_tesla", vetoable: true},
	KindScp914Upgrade:        {name: "map.scp914_upgrade", vetoable: true},
	KindGeneratorUnlock:      {name: "map.generator_unlock", vetoable: true},
	KindGeneratorOpen:        {name: "map.generator_open", vetoable: true},
	KindGeneratorClose:       {name: "map.generator_close", vetoable: true},
	KindGeneratorInsert:      {name: "map.generator_insert", vetoable: true},
	KindGeneratorEject:       {name: "map.generator_eject", vetoable: true},
	KindGeneratorFinish:      {name: "map.generator_finish"},
	KindPlayingRespawnEffect: {name: "map.playing_respawn_effect", vetoable: true},

	KindChangingCamera:      {name: "scp079.changing_camera", vetoable: true},
	KindGainingExperience:   {name: "scp079.gaining_experience", vetoable: true},
	KindGainingLevel:        {name: "scp079.gaining_level", vetoable: true},
	KindInteractingTesla:    {name: "scp079.interacting_tesla", vetoable: true},
	KindTriggeringDoor:      {name: "scp079.triggering_door", vetoable: true},
	KindElevatorTeleporting: {name: "scp079.elevator_teleporting", vetoable: true},
	KindLockingDown:         {name: "scp079.locking_down", vetoable: true},
	KindStartingSpeaker:     {name: "scp079.starting_speaker", vetoable: true},
	KindStoppingSpeaker:     {name: "scp079.stopping_speaker", vetoable: true},
	KindRecontained:         {name: "scp079.recontained"},

	KindHurting:         {name: "player.hurting", vetoable: true},
	KindDying:           {name: "player.dying", vetoable: true},
	KindSpawningRagdoll: {name: "player.spawning_ragdoll", vetoable: true},
}

// String returns the dotted name of the kind, e.g. "map.door_interact".
func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kinds[k].name
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k > kindNone && k < kindCount
}

// Vetoable reports whether payloads of this kind carry an allow/deny decision.
func (k Kind) Vetoable() bool {
	return k.Valid() && kinds[k].vetoable
}

// PayloadType returns the name of the payload type dispatched under k, e.g.
// "DoorInteractEventArgs".
func (k Kind) PayloadType() string {
	return payloadTypes[k]
}

// Group returns the handler group of the kind ("map", "scp079" or "player").
func (k Kind) Group() string {
	name := k.String()
	if i := strings.IndexByte(name, '.'); i > 0 {
		return name[:i]
	}
	return ""
}

// Kinds returns every defined kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := kindNone + 1; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// UnknownKindError is returned by ParseKind for names that match no kind.
type UnknownKindError struct {
	Name string
	// Suggestion is the closest known kind name, empty when nothing is close.
	Suggestion string
}

func (e *UnknownKindError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown event kind %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown event kind %q", e.Name)
}

// maxSuggestionDistance bounds how far a typo may be from a suggestion.
const maxSuggestionDistance = 4

// ParseKind resolves a dotted kind name (case-insensitive).
func ParseKind(name string) (Kind, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for k := kindNone + 1; k < kindCount; k++ {
		if kinds[k].name == needle {
			return k, nil
		}
	}

	best, bestDist := "", maxSuggestionDistance+1
	for k := kindNone + 1; k < kindCount; k++ {
		if d := levenshtein.ComputeDistance(needle, kinds[k].name); d < bestDist {
			best, bestDist = kinds[k].name, d
		}
	}
	return kindNone, &UnknownKindError{Name: name, Suggestion: best}
}
