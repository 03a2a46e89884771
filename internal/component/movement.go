// component/movement.go
package component

// Position — компонент позиции (пиксели, верхний левый угол сущности)
type Position struct {
	X, Y float64
}

// Velocity — базовая скорость в пикселях в секунду
type Velocity struct {
	Speed float64
}

// PathFollower — текущая целевая точка маршрута; -1 означает, что маршрут пройден
type PathFollower struct {
	Target int
}
