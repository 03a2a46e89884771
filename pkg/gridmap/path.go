// pkg/gridmap/path.go
package gridmap

import (
	"errors"
	"fmt"

	"grid-tower-defense/pkg/utils"
)

var (
	ErrMissingMarker    = errors.New("grid is missing an entry or exit marker")
	ErrNoPath           = errors.New("no waypoint reachable from cursor")
	ErrPathNotConverged = errors.New("path search did not reach the entry")
)

// Waypoint is one fixed point of the enemy route.
type Waypoint struct {
	Cell Point
	X, Y float64 // пиксельная позиция верхнего левого угла клетки
}

// Path is the enemy route in travel order: the entry S first, the exit E last.
type Path struct {
	Waypoints []Waypoint
}

// Len returns the number of waypoints.
func (p *Path) Len() int {
	return len(p.Waypoints)
}

// Next returns the index of the waypoint following i, or -1 when i is terminal.
func (p *Path) Next(i int) int {
	if i < 0 || i+1 >= len(p.Waypoints) {
		return -1
	}
	return i + 1
}

// At returns the waypoint with index i.
func (p *Path) At(i int) Waypoint {
	return p.Waypoints[i]
}

// Start returns the first waypoint units walk to (the entry cell).
func (p *Path) Start() Waypoint {
	return p.Waypoints[0]
}

// Discovery returns the waypoints in the order the builder found them:
// starting at the exit E and ending at the entry S.
func (p *Path) Discovery() []Waypoint {
	out := make([]Waypoint, len(p.Waypoints))
	for i, wp := range p.Waypoints {
		out[len(out)-1-i] = wp
	}
	return out
}

// Направления поиска в порядке приоритета. Порядок важен для воспроизводимости пути.
var searchDirections = []Point{
	{X: 1, Y: 0},  // right
	{X: -1, Y: 0}, // left
	{X: 0, Y: -1}, // up
	{X: 0, Y: 1},  // down
}

// BuildPath walks the corridors of the text map from the exit E towards the
// entry S. From the cursor it looks in each direction (never straight back)
// along open cells for the first waypoint marker W; the first direction that
// hits one wins. The search stops once the cursor is next to S.
func BuildPath(rows []string, width int, blockSize float64) (*Path, error) {
	exit, entry, err := findMarkers(rows)
	if err != nil {
		return nil, err
	}

	at := func(p Point) (byte, bool) {
		if p.X < 0 || p.Y < 0 || p.Y >= len(rows) || p.X >= width || p.X >= len(rows[p.Y]) {
			return 0, false
		}
		return rows[p.Y][p.X], true
	}

	discovered := []Point{exit}
	cursor := exit
	last := Point{}
	limit := width * len(rows)

	for steps := 0; manhattan(cursor, entry) != 1; steps++ {
		if steps >= limit {
			return nil, fmt.Errorf("%w after %d steps", ErrPathNotConverged, steps)
		}

		found := false
		for _, dir := range searchDirections {
			if dir.X == -last.X && dir.Y == -last.Y && (last.X != 0 || last.Y != 0) {
				continue
			}
			probe := Point{X: cursor.X + dir.X, Y: cursor.Y + dir.Y}
			for {
				code, ok := at(probe)
				if !ok || code != CodeOpen {
					break
				}
				probe = Point{X: probe.X + dir.X, Y: probe.Y + dir.Y}
			}
			if code, ok := at(probe); ok && code == CodeWaypoint {
				cursor = probe
				last = dir
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w at (%d,%d)", ErrNoPath, cursor.X, cursor.Y)
		}
		discovered = append(discovered, cursor)
	}
	discovered = append(discovered, entry)

	// Разворачиваем: враги идут от S к E
	path := &Path{Waypoints: make([]Waypoint, len(discovered))}
	for i, cell := range discovered {
		path.Waypoints[len(discovered)-1-i] = Waypoint{
			Cell: cell,
			X:    float64(cell.X) * blockSize,
			Y:    float64(cell.Y) * blockSize,
		}
	}
	return path, nil
}

func findMarkers(rows []string) (exit, entry Point, err error) {
	var haveExit, haveEntry bool
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case CodeExit:
				exit, haveExit = Point{X: x, Y: y}, true
			case CodeEntry:
				entry, haveEntry = Point{X: x, Y: y}, true
			}
		}
	}
	if !haveExit || !haveEntry {
		return exit, entry, fmt.Errorf("%w (exit %t, entry %t)", ErrMissingMarker, haveExit, haveEntry)
	}
	return exit, entry, nil
}

func manhattan(a, b Point) int {
	return utils.Abs(a.X-b.X) + utils.Abs(a.Y-b.Y)
}
