// Package sim is the tick-driven simulation core of Slicer: thrown fruit and
// bombs fly on ballistic arcs while the player's gesture trail cuts them.
//
// The package is pure. It never schedules itself, touches the terminal or
// reads the clock; a host advances it with Tick and feeds pointer samples
// through AddTrailPoint.
//
// Coordinates use "simulation space": X is the terminal column and Y is twice
// the terminal row, so that a cell is roughly square. Y grows downward.
package sim

import (
	"github.com/vovakirdan/tui-slicer/internal/config"
	"github.com/vovakirdan/tui-slicer/internal/core"
)

// Kind distinguishes throwables that score from throwables that end the round.
type Kind uint8

const (
	KindProjectile Kind = iota
	KindHazard
)

func (k Kind) String() string {
	switch k {
	case KindProjectile:
		return "projectile"
	case KindHazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// Subtype is the fruit variety of a projectile. Hazards always carry SubtypeNone.
type Subtype uint8

const (
	SubtypeNone Subtype = iota
	SubtypeApple
	SubtypeOrange
	SubtypeWatermelon
	SubtypeKiwi
	SubtypeGolden
	SubtypeFrost
)

// Rarity groups subtypes by how the spawner weights them.
type Rarity uint8

const (
	RarityCommon Rarity = iota
	RarityGolden
	RarityFrost
)

// SubtypeInfo is the static description of a subtype.
type SubtypeInfo struct {
	Name   string
	Glyph  rune
	Skin   core.Color
	Flesh  core.Color
	Seed   rune // Drawn on the cut face of debris
	Rarity Rarity
	Freeze bool // Slicing it triggers the freeze effect
}

var subtypeTable = [...]SubtypeInfo{
	SubtypeNone:       {Name: "bomb", Glyph: '●', Skin: core.ColorGray, Flesh: core.ColorRed, Seed: '*'},
	SubtypeApple:      {Name: "apple", Glyph: '●', Skin: core.ColorRed, Flesh: core.ColorBrightYellow, Seed: '.'},
	SubtypeOrange:     {Name: "orange", Glyph: '●', Skin: core.ColorOrange, Flesh: core.ColorYellow, Seed: '.'},
	SubtypeWatermelon: {Name: "watermelon", Glyph: '⬤', Skin: core.ColorGreen, Flesh: core.ColorPink, Seed: ':'},
	SubtypeKiwi:       {Name: "kiwi", Glyph: '●', Skin: core.ColorYellow, Flesh: core.ColorBrightGreen, Seed: ':'},
	SubtypeGolden:     {Name: "golden", Glyph: '◆', Skin: core.ColorGold, Flesh: core.ColorBrightYellow, Seed: '+', Rarity: RarityGolden},
	SubtypeFrost:      {Name: "frost", Glyph: '❄', Skin: core.ColorIce, Flesh: core.ColorBrightWhite, Seed: '·', Rarity: RarityFrost, Freeze: true},
}

// commonSubtypes share whatever probability the rare subtypes leave over.
var commonSubtypes = []Subtype{SubtypeApple, SubtypeOrange, SubtypeWatermelon, SubtypeKiwi}

// Info returns the lookup-table entry for s.
func (s Subtype) Info() SubtypeInfo {
	if int(s) >= len(subtypeTable) {
		return subtypeTable[SubtypeNone]
	}
	return subtypeTable[s]
}

func (s Subtype) String() string {
	return s.Info().Name
}

// Bonus returns the flat score bonus for slicing s under cfg.
func (s Subtype) Bonus(cfg config.SlicerScoring) int {
	if s.Info().Rarity == RarityGolden {
		return cfg.GoldenBonus
	}
	return 0
}

// pickSubtype maps a uniform sample in [0, 1) onto the weighted subtype table.
func pickSubtype(u float64, spawn config.SlicerSpawn) Subtype {
	if u < spawn.GoldenWeight {
		return SubtypeGolden
	}
	u -= spawn.GoldenWeight
	if u < spawn.FrostWeight {
		return SubtypeFrost
	}
	u -= spawn.FrostWeight

	rest := 1 - spawn.GoldenWeight - spawn.FrostWeight
	if rest <= 0 {
		return commonSubtypes[0]
	}
	i := int(u / rest * float64(len(commonSubtypes)))
	if i >= len(commonSubtypes) {
		i = len(commonSubtypes) - 1
	}
	return commonSubtypes[i]
}

// Entity is a live throwable.
type Entity struct {
	ID           uint64
	Kind         Kind
	Subtype      Subtype
	Pos          core.Vec2
	Vel          core.Vec2
	Radius       float64
	Rotation     float64
	RotationRate float64
	Sliced       bool
}

// Side tells which half of a cut projectile a piece of debris is.
type Side int8

const (
	SideLeft  Side = -1
	SideRight Side = 1
)

// Debris is one half of a sliced projectile. It is never collision-tested.
type Debris struct {
	Pos          core.Vec2
	Vel          core.Vec2
	Radius       float64
	Subtype      Subtype
	Rotation     float64
	RotationRate float64
	Life         int
	Side         Side
}

// Particle is a short-lived spark from a slice or a detonation.
type Particle struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Life    int
	MaxLife int
	Color   core.Color
	Glyph   rune
}

// FloatingText is a popup such as "+10" or "COMBO x3" that drifts upward.
type FloatingText struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Text  string
	Life  int
	Color core.Color
}
