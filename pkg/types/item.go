package types

// ItemType identifies an item kind.
type ItemType int

const (
	ItemNone ItemType = iota - 1
	ItemKeycardJanitor
	ItemKeycardScientist
	ItemKeycardO5
	ItemRadio
	ItemMedkit
	ItemFlashlight
	ItemCoin
	ItemGunCOM15
	ItemAdrenaline
	ItemPainkillers
)

var itemNames = map[ItemType]string{
	ItemNone:             "None",
	ItemKeycardJanitor:   "KeycardJanitor",
	ItemKeycardScientist: "KeycardScientist",
	ItemKeycardO5:        "KeycardO5",
	ItemRadio:            "Radio",
	ItemMedkit:           "Medkit",
	ItemFlashlight:       "Flashlight",
	ItemCoin:             "Coin",
	ItemGunCOM15:         "GunCOM15",
	ItemAdrenaline:       "Adrenaline",
	ItemPainkillers:      "Painkillers",
}

func (t ItemType) String() string {
	if name, ok := itemNames[t]; ok {
		return name
	}
	return "Unknown"
}

// ParseItemType resolves an item type by name. Unknown names map to ItemNone.
func ParseItemType(name string) ItemType {
	for t, n := range itemNames {
		if n == name {
			return t
		}
	}
	return ItemNone
}

// Item is an item held in a player's inventory.
type Item struct {
	Serial string   `json:"serial"`
	Type   ItemType `json:"type"`
}

// Pickup is an item lying in the world.
type Pickup struct {
	Serial   string   `json:"serial"`
	Type     ItemType `json:"type"`
	Position Vector3  `json:"position"`
}

// Scp914Knob is the SCP-914 refinement setting.
type Scp914Knob int

const (
	KnobRough Scp914Knob = iota
	KnobCoarse
	KnobOneToOne
	KnobFine
	KnobVeryFine
)

func (k Scp914Knob) String() string {
	switch k {
	case KnobRough:
		return "Rough"
	case KnobCoarse:
		return "Coarse"
	case KnobOneToOne:
		return "OneToOne"
	case KnobFine:
		return "Fine"
	case KnobVeryFine:
		return "VeryFine"
	default:
		return "Unknown"
	}
}

// ParseKnob resolves a knob setting by name, defaulting to KnobOneToOne.
func ParseKnob(name string) Scp914Knob {
	for k := KnobRough; k <= KnobVeryFine; k++ {
		if k.String() == name {
			return k
		}
	}
	return KnobOneToOne
}

// Scp914Machine is the SCP-914 refinement machine.
type Scp914Machine struct {
	Knob    Scp914Knob `json:"knob"`
	Working bool       `json:"working"`
}

// DamageType is the tool that dealt damage.
type DamageType string

const (
	DamageNone     DamageType = "None"
	DamageFalldown DamageType = "Falldown"
	DamageTesla    DamageType = "Tesla"
	DamageCom15    DamageType = "Com15"
	DamageScp049   DamageType = "Scp049"
	DamageScp096   DamageType = "Scp096"
	DamageScp173   DamageType = "Scp173"
	DamageWall     DamageType = "Wall"
	DamageNuke     DamageType = "Nuke"
)

// HitInfo describes a single hit.
type HitInfo struct {
	Amount   float32    `json:"amount"`
	Tool     DamageType `json:"tool"`
	Time     int        `json:"time"`
	Attacker string     `json:"attacker,omitempty"`
}
