package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevelDefaults(t *testing.T) {
	level, err := ParseLevel([]byte("name: Tiny\nstarting_cash: 80\n"))
	require.NoError(t, err)
	assert.Equal(t, "Tiny", level.Name)
	assert.Equal(t, 80, level.StartingCash)
	assert.Equal(t, DefaultMap, level.Map)
	assert.Equal(t, DefaultSpawnScript, level.Spawns)
}

func TestParseLevelRejectsBadScript(t *testing.T) {
	_, err := ParseLevel([]byte("spawns: \"T,100,N\"\n"))
	assert.ErrorIs(t, err, ErrMalformedScript)
}

func TestParseLevelRejectsBadEconomy(t *testing.T) {
	for _, doc := range []string{
		"base_health: -1\n",
		"base_health: 500\n",
		"starting_cash: -10\n",
	} {
		_, err := ParseLevel([]byte(doc))
		assert.ErrorIs(t, err, ErrInvalidEconomy, doc)
	}

	level, err := ParseLevel([]byte("base_health: 100\n"))
	require.NoError(t, err)
	assert.Equal(t, 100, level.BaseHealth)
}

func TestLoadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.yaml")
	doc := "name: Corridor\n" +
		"map:\n" +
		"  - \"E  S\"\n" +
		"spawns: \"T,500,N,2\"\n" +
		"base_health: 20\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	level, err := LoadLevel(path)
	require.NoError(t, err)
	assert.Equal(t, "Corridor", level.Name)
	assert.Equal(t, []string{"E  S"}, level.Map)
	assert.Equal(t, "T,500,N,2", level.Spawns)
	assert.Equal(t, 20, level.BaseHealth)
}

func TestLoadLevelMissingFile(t *testing.T) {
	_, err := LoadLevel(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultLevelCopiesMap(t *testing.T) {
	level := DefaultLevel()
	level.Map[0] = "changed"
	assert.NotEqual(t, "changed", DefaultMap[0])
}
