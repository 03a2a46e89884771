// internal/utils/math.go
package utils

import (
	"math"

	"grid-tower-defense/internal/component"
)

// Distance возвращает евклидово расстояние между точками
func Distance(a, b component.Position) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// StepTowards двигает from в сторону to на step пикселей.
// Нулевое расстояние возвращает from без изменений (нет направления).
func StepTowards(from, to component.Position, step float64) component.Position {
	dx := to.X - from.X
	dy := to.Y - from.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return from
	}
	return component.Position{
		X: from.X + dx/dist*step,
		Y: from.Y + dy/dist*step,
	}
}
