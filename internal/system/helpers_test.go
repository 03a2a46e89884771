package system

import (
	"time"

	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/entity"
	"grid-tower-defense/internal/event"
	"grid-tower-defense/pkg/gridmap"
)

const tick = config.TickInterval

// straightPath: (0,0) -> (300,0) -> (300,300)
func straightPath() *gridmap.Path {
	return &gridmap.Path{Waypoints: []gridmap.Waypoint{
		{Cell: gridmap.Point{X: 0, Y: 0}, X: 0, Y: 0},
		{Cell: gridmap.Point{X: 6, Y: 0}, X: 300, Y: 0},
		{Cell: gridmap.Point{X: 6, Y: 6}, X: 300, Y: 300},
	}}
}

func newEnemy(w *entity.World, kind defs.EnemyKind, x, y float64) *component.Enemy {
	def := defs.EnemyLibrary[kind]
	e := &component.Enemy{
		ID:       w.NewEntity(),
		Kind:     kind,
		Position: component.Position{X: x, Y: y},
		Size:     config.BlockSize,
		Velocity: component.Velocity{Speed: def.Speed},
		Health:   component.Health{Value: def.Health, Max: def.Health},
		Alive:    true,
	}
	w.AddEnemy(e)
	return e
}

func newTower(w *entity.World, kind defs.TowerKind, x, y float64) *component.Tower {
	def := defs.TowerLibrary[kind]
	t := &component.Tower{
		ID:       w.NewEntity(),
		Kind:     kind,
		Position: component.Position{X: x, Y: y},
		Size:     config.BlockSize,
		Combat: component.Combat{
			Range:        def.Range,
			FireInterval: def.FireInterval,
			Cooldown:     def.FireInterval,
		},
		Targeting: def.Targeting,
		Attack:    def.Attack,
	}
	w.AddTower(t)
	return t
}

// recorder collects dispatched events of the subscribed types.
type recorder struct {
	events []event.Event
}

func record(d *event.Dispatcher, types ...event.EventType) *recorder {
	r := &recorder{}
	for _, t := range types {
		d.Subscribe(t, r)
	}
	return r
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func ticks(n int) time.Duration {
	return time.Duration(n) * tick
}
