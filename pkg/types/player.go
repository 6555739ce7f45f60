// Package types provides the engine-facing data types shared by the event
// core, the call-site adapters and plugins.
package types

// RoleType is the class a player is currently playing.
type RoleType int8

const (
	RoleNone          RoleType = -1
	RoleScp173        RoleType = 0
	RoleClassD        RoleType = 1
	RoleSpectator     RoleType = 2
	RoleScp106        RoleType = 3
	RoleNtfCadet      RoleType = 4
	RoleScp049        RoleType = 5
	RoleScientist     RoleType = 6
	RoleScp079        RoleType = 7
	RoleChaos         RoleType = 8
	RoleScp096        RoleType = 9
	RoleTutorial      RoleType = 14
	RoleFacilityGuard RoleType = 15
)

var roleNames = map[RoleType]string{
	RoleNone:          "None",
	RoleScp173:        "Scp173",
	RoleClassD:        "ClassD",
	RoleSpectator:     "Spectator",
	RoleScp106:        "Scp106",
	RoleNtfCadet:      "NtfCadet",
	RoleScp049:        "Scp049",
	RoleScientist:     "Scientist",
	RoleScp079:        "Scp079",
	RoleChaos:         "ChaosInsurgency",
	RoleScp096:        "Scp096",
	RoleTutorial:      "Tutorial",
	RoleFacilityGuard: "FacilityGuard",
}

func (r RoleType) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "Unknown"
}

// ParseRole resolves a role by its display name. Unknown names map to RoleNone.
func ParseRole(name string) RoleType {
	for role, n := range roleNames {
		if n == name {
			return role
		}
	}
	return RoleNone
}

// Player is a stable identity for a connected player, detached from the
// engine's raw object handles.
type Player struct {
	ID       int      `json:"id" yaml:"id"`
	UserID   string   `json:"userID" yaml:"user_id"`
	Nickname string   `json:"nickname" yaml:"nickname"`
	Role     RoleType `json:"role" yaml:"-"`
	Health   float32  `json:"health" yaml:"health"`
	Items    []Item   `json:"items,omitempty" yaml:"-"`
}

// PlayerLookup resolves player ids to live players. Get returns nil when no
// live player has the id.
type PlayerLookup interface {
	Get(id int) *Player
}

// PlayerLookupFunc adapts a function to PlayerLookup.
type PlayerLookupFunc func(id int) *Player

// Get implements PlayerLookup.
func (f PlayerLookupFunc) Get(id int) *Player {
	return f(id)
}

// ExperienceGainType is the reason SCP-079 gains experience.
type ExperienceGainType string

const (
	GainKillAssist          ExperienceGainType = "KillAssist"
	GainDirectKill          ExperienceGainType = "DirectKill"
	GainPocketAssist        ExperienceGainType = "PocketAssist"
	GainGeneralInteractions ExperienceGainType = "GeneralInteractions"
	GainAdminCheat          ExperienceGainType = "AdminCheat"
)
