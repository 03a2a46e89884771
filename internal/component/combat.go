package component

import "time"

// Health — компонент здоровья
type Health struct {
	Value int
	Max   int
}

// Percent returns the remaining health in whole percent.
func (h Health) Percent() int {
	if h.Max <= 0 {
		return 0
	}
	return h.Value * 100 / h.Max
}

// Combat — компонент для башен, управляющий атакой
type Combat struct {
	Range        float64       // Радиус действия в пикселях от центра башни
	FireInterval time.Duration // Пауза между залпами
	Cooldown     time.Duration // Оставшееся время до следующего залпа
}
