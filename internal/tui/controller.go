package tui

import (
	"github.com/gdamore/tcell/v2"

	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/interfaces"
	"grid-tower-defense/pkg/gridmap"
)

// Controller переводит события терминала в команды матча.
type Controller struct {
	game   interfaces.MatchController
	grid   *gridmap.Grid
	Cursor gridmap.Point
}

func NewController(game interfaces.MatchController, grid *gridmap.Grid) *Controller {
	c := &Controller{game: game, grid: grid}
	if slots := grid.OpenSlots(); len(slots) > 0 {
		c.Cursor = slots[0]
	}
	return c
}

// HandleEvent applies one terminal event. It returns false when the player quits.
func (c *Controller) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return c.handleKey(ev)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			col, row := ev.Position()
			c.placeAt(ScreenToCell(col, row))
		}
	}
	return true
}

func (c *Controller) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		c.game.CancelPlacement()
	case tcell.KeyUp:
		c.move(0, -1)
	case tcell.KeyDown:
		c.move(0, 1)
	case tcell.KeyLeft:
		c.move(-1, 0)
	case tcell.KeyRight:
		c.move(1, 0)
	case tcell.KeyEnter:
		c.placeAt(c.Cursor)
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 && (r == 'c' || r == 'C') {
			return false
		}
		switch r {
		case 'q':
			return false
		case 'r':
			c.game.Restart()
		case ' ':
			c.placeAt(c.Cursor)
		case '1', '2', '3':
			idx := int(r - '1')
			if idx < len(defs.TowerKinds) {
				c.game.SelectTower(defs.TowerKinds[idx])
			}
		}
	}
	return true
}

func (c *Controller) move(dx, dy int) {
	next := gridmap.Point{X: c.Cursor.X + dx, Y: c.Cursor.Y + dy}
	if _, ok := c.grid.Cell(next.X, next.Y); ok {
		c.Cursor = next
	}
}

// placeAt builds the pending tower in the middle of the cell.
func (c *Controller) placeAt(p gridmap.Point) bool {
	if c.game.Phase() != component.PhasePlacing {
		return false
	}
	c.Cursor = p
	x, y := c.grid.CellOrigin(p)
	half := c.grid.BlockSize / 2
	return c.game.PlacePending(x+half, y+half)
}
