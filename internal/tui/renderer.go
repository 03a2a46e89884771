// internal/tui/renderer.go
package tui

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"grid-tower-defense/internal/app"
	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/pkg/gridmap"
)

const (
	mapTop    = 2 // строки 0-1 заняты статусом
	cellWidth = 2 // клетка карты занимает две колонки терминала
	panelGap  = 4
)

// Renderer рисует снимок матча в терминал.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// CellToScreen returns the terminal column and row of a map cell.
func CellToScreen(p gridmap.Point) (int, int) {
	return p.X * cellWidth, mapTop + p.Y
}

// ScreenToCell maps a terminal position back to a map cell.
func ScreenToCell(col, row int) gridmap.Point {
	return gridmap.Point{X: col / cellWidth, Y: row - mapTop}
}

// Draw renders the whole frame and shows it.
func (r *Renderer) Draw(s app.Snapshot, cursor gridmap.Point) {
	r.screen.Clear()
	r.drawStatus(s)
	r.drawMap(s, cursor)
	r.drawPanel(s)
	r.screen.Show()
}

func (r *Renderer) drawStatus(s app.Snapshot) {
	status := fmt.Sprintf("Cash $%d  Score %d  Base %d  Spawned %d  Queue %d",
		s.Cash, s.Score, s.BaseHealth, s.Spawned, s.PendingInstructions)
	r.text(0, 0, status, tcell.StyleDefault.Foreground(rgb(config.TextLightColor)))

	hint := ""
	style := tcell.StyleDefault.Foreground(rgb(config.SlotColor))
	switch s.Phase {
	case component.PhasePlacing:
		hint = fmt.Sprintf("Placing %s: arrows + Enter, Esc cancels", s.PendingKind)
	case component.PhaseOver:
		hint = s.Message + "  (r to restart)"
		style = style.Bold(true).Reverse(true)
	}
	r.text(0, 1, hint, style)
}

func (r *Renderer) drawMap(s app.Snapshot, cursor gridmap.Point) {
	floor := tcell.StyleDefault.Background(rgb(config.BackgroundColor))

	for _, cell := range s.Cells {
		col, row := CellToScreen(gridmap.Point{X: cell.X, Y: cell.Y})
		glyph, style := ' ', floor
		switch cell.Kind {
		case gridmap.Wall:
			glyph, style = '▒', floor.Foreground(rgb(config.WallColor))
		case gridmap.BuildSlot:
			glyph, style = 'T', floor.Foreground(rgb(config.SlotColor))
			if s.Phase == component.PhasePlacing && !cell.Occupied() {
				style = style.Foreground(rgb(config.SlotActiveColor)).Bold(true)
			}
		}
		r.cell(col, row, glyph, style)
	}

	for i, wp := range s.Path {
		glyph := 'W'
		switch i {
		case 0:
			glyph = 'S'
		case len(s.Path) - 1:
			glyph = 'E'
		}
		col, row := CellToScreen(wp.Cell)
		r.cell(col, row, glyph, floor.Foreground(rgb(config.WaypointColor)).Bold(true))
	}

	for _, t := range s.Towers {
		def := defs.TowerLibrary[t.Kind]
		col, row := CellToScreen(t.Cell)
		r.cell(col, row, def.Visuals.Glyph, floor.Foreground(rgb(def.Visuals.Color)).Bold(true))
	}

	for _, e := range s.Enemies {
		col, row := CellToScreen(r.cellOf(s, e.X+e.Size/2, e.Y+e.Size/2))
		glyph := '●'
		if e.Kind == defs.EnemyBoss {
			glyph = '◆'
		}
		style := floor.Foreground(rgb(defs.EnemyLibrary[e.Kind].Color))
		if e.Slowed {
			style = style.Underline(true)
		}
		r.cell(col, row, glyph, style)
	}

	for _, p := range s.Projectiles {
		col, row := CellToScreen(r.cellOf(s, p.X, p.Y))
		r.screen.SetContent(col+1, row, '*', nil, floor.Foreground(rgb(p.Color)))
	}

	if s.Phase == component.PhasePlacing {
		col, row := CellToScreen(cursor)
		mainc, _, style, _ := r.screen.GetContent(col, row)
		r.screen.SetContent(col, row, mainc, nil, style.Reverse(true))
	}
}

func (r *Renderer) drawPanel(s app.Snapshot) {
	col := (s.Width+1)*cellWidth + panelGap
	row := mapTop
	for i, kind := range defs.TowerKinds {
		def := defs.TowerLibrary[kind]
		style := tcell.StyleDefault.Foreground(rgb(def.Visuals.Color))
		if s.Phase == component.PhaseOver || s.Cash < def.Cost {
			style = tcell.StyleDefault.Foreground(rgb(config.ButtonDisabled))
		}
		if s.Phase == component.PhasePlacing && s.PendingKind == kind {
			style = style.Reverse(true)
		}
		r.text(col, row+i, fmt.Sprintf("%d %c %-6s $%d", i+1, def.Visuals.Glyph, def.Name, def.Cost), style)
	}
	help := tcell.StyleDefault.Foreground(rgb(config.TextLightColor))
	r.text(col, row+len(defs.TowerKinds)+1, "Esc cancel  r restart  q quit", help)
}

// cellOf maps a map pixel to its cell, allowing the entry column past the edge.
func (r *Renderer) cellOf(s app.Snapshot, px, py float64) gridmap.Point {
	return gridmap.Point{X: int(px / s.BlockSize), Y: int(py / s.BlockSize)}
}

func (r *Renderer) cell(col, row int, glyph rune, style tcell.Style) {
	r.screen.SetContent(col, row, glyph, nil, style)
	r.screen.SetContent(col+1, row, ' ', nil, style)
}

func (r *Renderer) text(col, row int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(col, row, ch, nil, style)
		col++
	}
}
