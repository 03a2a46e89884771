// internal/defs/towers.go
package defs

import (
	"image/color"
	"time"
)

// TowerKind identifies a kind of defender the player can buy.
type TowerKind string

const (
	TowerNormal TowerKind = "NORMAL"
	TowerArea   TowerKind = "AREA"
	TowerSlow   TowerKind = "SLOW"
)

// TowerKinds lists the purchasable kinds in the order the shop shows them.
var TowerKinds = []TowerKind{TowerNormal, TowerArea, TowerSlow}

// TowerDefinition holds all the static data for a specific kind of tower.
type TowerDefinition struct {
	Kind         TowerKind
	Name         string
	Cost         int
	Range        float64 // pixels, measured from the tower centre
	FireInterval time.Duration
	Targeting    TargetingType
	Attack       AttackType
	Visuals      Visuals
}

// Visuals contains parameters for rendering a tower and its projectiles.
type Visuals struct {
	Color           color.RGBA
	ProjectileColor color.RGBA
	Glyph           rune // символ для терминального рендера
}

// TowerLibrary is a map to hold all tower definitions, keyed by their kind.
var TowerLibrary = map[TowerKind]TowerDefinition{
	TowerNormal: {
		Kind:         TowerNormal,
		Name:         "Normal",
		Cost:         50,
		Range:        200,
		FireInterval: 300 * time.Millisecond,
		Targeting:    TargetSingleClosest,
		Attack:       AttackSingle,
		Visuals: Visuals{
			Color:           color.RGBA{0, 255, 255, 255},
			ProjectileColor: color.RGBA{103, 18, 108, 255},
			Glyph:           'N',
		},
	},
	TowerArea: {
		Kind:         TowerArea,
		Name:         "AoE",
		Cost:         60,
		Range:        300,
		FireInterval: 1000 * time.Millisecond,
		Targeting:    TargetSingleClosest,
		Attack:       AttackArea,
		Visuals: Visuals{
			Color:           color.RGBA{255, 200, 0, 255},
			ProjectileColor: color.RGBA{200, 40, 0, 255},
			Glyph:           'A',
		},
	},
	TowerSlow: {
		Kind:         TowerSlow,
		Name:         "Slow",
		Cost:         70,
		Range:        150,
		FireInterval: 1000 * time.Millisecond,
		Targeting:    TargetAllInRange,
		Attack:       AttackSlow,
		Visuals: Visuals{
			Color:           color.RGBA{0, 0, 255, 255},
			ProjectileColor: color.RGBA{28, 62, 163, 255},
			Glyph:           'S',
		},
	},
}
