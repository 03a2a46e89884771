package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(EnemyKilled, ListenerFunc(func(Event) { order = append(order, "first") }))
	d.Subscribe(EnemyKilled, ListenerFunc(func(Event) { order = append(order, "second") }))

	d.Dispatch(Event{Type: EnemyKilled})
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestDispatchOnlyMatchingType(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(EnemyReachedEnd, r)

	d.Dispatch(Event{Type: EnemyKilled})
	d.Dispatch(Event{Type: EnemyReachedEnd, Data: EnemyPayload{ID: 3}})

	if assert.Len(t, r.got, 1) {
		assert.Equal(t, EnemyPayload{ID: 3}, r.got[0].Data)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(TowerPlaced, r)
	d.Unsubscribe(TowerPlaced, r)

	d.Dispatch(Event{Type: TowerPlaced})
	assert.Empty(t, r.got)
}
