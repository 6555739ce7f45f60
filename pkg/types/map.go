package types

// Vector3 is a position or velocity in world space.
type Vector3 struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
	Z float32 `json:"z" yaml:"z"`
}

// Quaternion is a rotation in world space.
type Quaternion struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
	Z float32 `json:"z" yaml:"z"`
	W float32 `json:"w" yaml:"w"`
}

// Room is a facility room.
type Room struct {
	Name string `json:"name" yaml:"name"`
	Zone string `json:"zone" yaml:"zone"`
}

// Door is an interactable facility door.
type Door struct {
	ID         int    `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Permission string `json:"permission,omitempty" yaml:"permission"`
	Open       bool   `json:"open" yaml:"open"`
	Locked     bool   `json:"locked" yaml:"locked"`
}

// Generator is one of the SCP-079 recontainment generators.
type Generator struct {
	ID             int     `json:"id" yaml:"id"`
	Room           string  `json:"room" yaml:"room"`
	Unlocked       bool    `json:"unlocked" yaml:"unlocked"`
	Open           bool    `json:"open" yaml:"open"`
	TabletInserted bool    `json:"tabletInserted" yaml:"tablet_inserted"`
	Progress       float32 `json:"progress" yaml:"progress"`
	Finished       bool    `json:"finished" yaml:"finished"`
}

// TeslaGate is a tesla gate that shocks players in range.
type TeslaGate struct {
	ID   int    `json:"id" yaml:"id"`
	Room string `json:"room" yaml:"room"`
}

// Camera is an SCP-079 camera.
type Camera struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Room string `json:"room" yaml:"room"`
}

// RespawnEffectType enumerates the respawn effects the server can play.
type RespawnEffectType byte

const (
	// PlayChaosInsurgencyMusic plays the Chaos Insurgency music to ClassD and Chaos players.
	PlayChaosInsurgencyMusic RespawnEffectType = 0
	// SummonChaosInsurgencyVan summons the Chaos Insurgency van.
	SummonChaosInsurgencyVan RespawnEffectType = 128
	// SummonNtfChopper summons the NTF chopper.
	SummonNtfChopper RespawnEffectType = 129
)

func (e RespawnEffectType) String() string {
	switch e {
	case PlayChaosInsurgencyMusic:
		return "PlayChaosInsurgencyMusic"
	case SummonChaosInsurgencyVan:
		return "SummonChaosInsurgencyVan"
	case SummonNtfChopper:
		return "SummonNtfChopper"
	default:
		return "Unknown"
	}
}

// ParseRespawnEffect resolves a respawn effect by name.
func ParseRespawnEffect(name string) (RespawnEffectType, bool) {
	for _, e := range []RespawnEffectType{PlayChaosInsurgencyMusic, SummonChaosInsurgencyVan, SummonNtfChopper} {
		if e.String() == name {
			return e, true
		}
	}
	return 0, false
}
