// internal/defs/enemies.go
package defs

import "image/color"

// EnemyKind identifies a kind of mobile unit.
type EnemyKind string

const (
	EnemyNormal EnemyKind = "NORMAL"
	EnemyFast   EnemyKind = "FAST"
	EnemyBoss   EnemyKind = "BOSS"
)

// EnemyDefinition holds all the static data for a specific kind of enemy.
type EnemyDefinition struct {
	Kind   EnemyKind
	Health int
	Speed  float64 // pixels per second
	Score  int     // очки за убийство
	Color  color.RGBA
}

// EnemyLibrary is the library of all enemy definitions, keyed by kind.
var EnemyLibrary = map[EnemyKind]EnemyDefinition{
	EnemyNormal: {Kind: EnemyNormal, Health: 400, Speed: 150, Score: 1, Color: color.RGBA{255, 200, 0, 255}},
	EnemyFast:   {Kind: EnemyFast, Health: 300, Speed: 200, Score: 1, Color: color.RGBA{0, 0, 255, 255}},
	EnemyBoss:   {Kind: EnemyBoss, Health: 600, Speed: 100, Score: 2, Color: color.RGBA{0, 0, 0, 255}},
}
