package gridmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleRows = []string{
	"ETTW  WTTWS",
	" .. TT .. ",
	" TT .. TT ",
	" .. TT .. ",
	" TT .. TT ",
	" .. TT .. ",
	" TT .. TT ",
	" .. TT .. ",
	" TT .. TT ",
	"W  WTTW  W",
}

func cellsOf(wps []Waypoint) []Point {
	out := make([]Point, len(wps))
	for i, wp := range wps {
		out[i] = wp.Cell
	}
	return out
}

func TestBuildPathSampleMap(t *testing.T) {
	path, err := BuildPath(sampleRows, 10, 50)
	require.NoError(t, err)

	expected := []Point{
		{10, 0}, {9, 0}, {9, 9}, {6, 9}, {6, 0}, {3, 0}, {3, 9}, {0, 9}, {0, 0},
	}
	assert.Equal(t, expected, cellsOf(path.Waypoints))

	discovery := path.Discovery()
	assert.Equal(t, Point{0, 0}, discovery[0].Cell, "discovery starts at E")
	assert.Equal(t, Point{10, 0}, discovery[len(discovery)-1].Cell, "discovery ends at S")
}

func TestPathNextChainTerminates(t *testing.T) {
	path, err := BuildPath(sampleRows, 10, 50)
	require.NoError(t, err)

	steps := 0
	i := 0
	for path.Next(i) != -1 {
		i = path.Next(i)
		steps++
		require.LessOrEqual(t, steps, path.Len())
	}
	assert.Equal(t, path.Len()-1, steps)
	assert.Equal(t, Point{0, 0}, path.At(i).Cell)
	assert.Equal(t, -1, path.Next(-1))
}

func TestBuildPathPixelPositions(t *testing.T) {
	path, err := BuildPath(sampleRows, 10, 50)
	require.NoError(t, err)

	start := path.Start()
	assert.Equal(t, 500.0, start.X)
	assert.Equal(t, 0.0, start.Y)
	assert.Equal(t, 450.0, path.At(2).X)
	assert.Equal(t, 450.0, path.At(2).Y)
}

func TestBuildPathEntryNextToExit(t *testing.T) {
	path, err := BuildPath([]string{"ES"}, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, []Point{{1, 0}, {0, 0}}, cellsOf(path.Waypoints))
}

func TestBuildPathErrors(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		width int
		want  error
	}{
		{"no exit", []string{"  S"}, 3, ErrMissingMarker},
		{"no entry", []string{"E  "}, 3, ErrMissingMarker},
		{"blocked", []string{"E.S"}, 3, ErrNoPath},
		{
			"cycle",
			[]string{
				"E W W",
				"..   ",
				"..W W",
				".....",
				"S....",
			},
			5,
			ErrPathNotConverged,
		},
		{"short row", []string{"E  W", "", "S  W"}, 4, ErrNoPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := BuildPath(tt.rows, tt.width, 50)
			assert.Nil(t, path)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
