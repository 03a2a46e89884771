// pkg/gridmap/grid.go
package gridmap

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"grid-tower-defense/internal/types"
)

// Коды клеток текстовой карты.
const (
	CodeExit     = 'E'
	CodeEntry    = 'S'
	CodeWaypoint = 'W'
	CodeWall     = '.'
	CodeSlot     = 'T'
	CodeOpen     = ' '
)

// CellKind classifies one grid square.
type CellKind int

const (
	Empty CellKind = iota
	Wall
	BuildSlot
)

var (
	ErrEmptyGrid  = errors.New("grid has no rows")
	ErrRaggedGrid = errors.New("grid rows have inconsistent widths")
)

// Cell is one square of the map. Tower is set only on occupied build slots.
type Cell struct {
	X, Y  int
	Kind  CellKind
	Tower types.EntityID
}

// Occupied reports whether a tower stands on the cell.
func (c Cell) Occupied() bool {
	return c.Tower != 0
}

// Grid is the parsed map: typed cells, the enemy path and the pool of
// build slots still open for placement.
type Grid struct {
	Width, Height int
	BlockSize     float64
	Entry         Point // клетка S
	Exit          Point // клетка E
	Path          *Path

	rows  []string
	cells [][]Cell // [y][x]
	open  []Point
}

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Parse builds a Grid from text rows. The nominal width is the shortest row;
// a row may be one character longer only when that character is the entry
// marker S, which is allowed to sit just past the right edge.
func Parse(rows []string, blockSize float64) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	width := len(rows[0])
	for _, row := range rows {
		if len(row) < width {
			width = len(row)
		}
	}
	if width == 0 {
		return nil, ErrEmptyGrid
	}
	for y, row := range rows {
		switch {
		case len(row) == width:
		case len(row) == width+1 && row[width] == CodeEntry:
		default:
			return nil, fmt.Errorf("%w: row %d is %d wide, expected %d", ErrRaggedGrid, y, len(row), width)
		}
	}

	g := &Grid{
		Width:     width,
		Height:    len(rows),
		BlockSize: blockSize,
		rows:      rows,
		cells:     make([][]Cell, len(rows)),
	}
	for y := 0; y < g.Height; y++ {
		g.cells[y] = make([]Cell, width)
		for x := 0; x < width; x++ {
			g.cells[y][x] = Cell{X: x, Y: y, Kind: kindOf(rows[y][x])}
		}
	}

	path, err := BuildPath(rows, width, blockSize)
	if err != nil {
		return nil, fmt.Errorf("failed to build path: %w", err)
	}
	g.Path = path
	g.Exit = path.Waypoints[len(path.Waypoints)-1].Cell
	g.Entry = path.Waypoints[0].Cell
	g.Reset()
	return g, nil
}

func kindOf(code byte) CellKind {
	switch code {
	case CodeWall:
		return Wall
	case CodeSlot:
		return BuildSlot
	default:
		return Empty
	}
}

// Cell returns the cell at cell coordinates.
func (g *Grid) Cell(x, y int) (Cell, bool) {
	if !g.inBounds(x, y) {
		return Cell{}, false
	}
	return g.cells[y][x], true
}

// Cells returns a copy of every cell in row-major order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, 0, g.Width*g.Height)
	for y := range g.cells {
		out = append(out, g.cells[y]...)
	}
	return out
}

// CellAt maps a pixel point to the cell containing it.
func (g *Grid) CellAt(px, py float64) (Cell, bool) {
	if px < 0 || py < 0 {
		return Cell{}, false
	}
	x := int(math.Floor(px / g.BlockSize))
	y := int(math.Floor(py / g.BlockSize))
	return g.Cell(x, y)
}

// CellOrigin returns the pixel position of a cell's top-left corner.
func (g *Grid) CellOrigin(p Point) (float64, float64) {
	return float64(p.X) * g.BlockSize, float64(p.Y) * g.BlockSize
}

// OpenSlots returns the build slots that can still take a tower.
func (g *Grid) OpenSlots() []Point {
	out := make([]Point, len(g.open))
	copy(out, g.open)
	return out
}

// SlotAt finds the open build slot containing the pixel point.
func (g *Grid) SlotAt(px, py float64) (Point, bool) {
	for _, p := range g.open {
		ox, oy := g.CellOrigin(p)
		if px >= ox && px < ox+g.BlockSize && py >= oy && py < oy+g.BlockSize {
			return p, true
		}
	}
	return Point{}, false
}

// Occupy records the tower on an open slot and removes the slot from the
// open pool. It returns false if the slot is not open.
func (g *Grid) Occupy(p Point, tower types.EntityID) bool {
	for i, slot := range g.open {
		if slot != p {
			continue
		}
		g.cells[p.Y][p.X].Tower = tower
		g.open = append(g.open[:i], g.open[i+1:]...)
		return true
	}
	return false
}

// Reset empties every build slot and rebuilds the open pool in row-major order.
func (g *Grid) Reset() {
	g.open = g.open[:0]
	for y := range g.cells {
		for x := range g.cells[y] {
			cell := &g.cells[y][x]
			if cell.Kind != BuildSlot {
				continue
			}
			cell.Tower = 0
			g.open = append(g.open, Point{X: x, Y: y})
		}
	}
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// String renders the grid back to text with occupied slots marked by '#'.
func (g *Grid) String() string {
	var b strings.Builder
	for y, row := range g.cells {
		for _, c := range row {
			if c.Occupied() {
				b.WriteByte('#')
				continue
			}
			b.WriteByte(g.rows[y][c.X])
		}
		if y < len(g.cells)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
