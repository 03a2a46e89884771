// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"grid-tower-defense/internal/config"
)

// ErrInvalidEconomy is returned for levels whose cash or base health is out of range.
var ErrInvalidEconomy = errors.New("invalid level economy")

// Level describes one playable map: its grid rows, spawn script and economy.
type Level struct {
	Name         string   `yaml:"name"`
	Map          []string `yaml:"map"`
	Spawns       string   `yaml:"spawns"`
	StartingCash int      `yaml:"starting_cash"`
	BaseHealth   int      `yaml:"base_health"`
}

// DefaultMap is the built-in ten row map. S lies one column past the grid.
var DefaultMap = []string{
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

// DefaultLevel returns the built-in level.
func DefaultLevel() Level {
	rows := make([]string, len(DefaultMap))
	copy(rows, DefaultMap)
	return Level{
		Name:   "Default",
		Map:    rows,
		Spawns: DefaultSpawnScript,
	}
}

// LoadLevel reads a YAML level file. Missing optional fields fall back to
// the defaults of DefaultLevel.
func LoadLevel(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("failed to read level file: %w", err)
	}
	level, err := ParseLevel(data)
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", path, err)
	}
	return level, nil
}

// ParseLevel decodes a YAML level document.
func ParseLevel(data []byte) (Level, error) {
	var level Level
	if err := yaml.Unmarshal(data, &level); err != nil {
		return Level{}, fmt.Errorf("failed to unmarshal level: %w", err)
	}

	def := DefaultLevel()
	if level.Name == "" {
		level.Name = def.Name
	}
	if len(level.Map) == 0 {
		level.Map = def.Map
	}
	if level.Spawns == "" {
		level.Spawns = def.Spawns
	}
	if err := ValidateEconomy(level.StartingCash, level.BaseHealth); err != nil {
		return Level{}, err
	}
	// Проверяем скрипт сразу, чтобы ошибка была видна при загрузке
	if _, err := ParseSpawnScript(level.Spawns); err != nil {
		return Level{}, err
	}
	return level, nil
}

// ValidateEconomy checks level overrides. Zero means "use the default";
// base health is shown as a percent, so it may not exceed config.BaseHealth.
func ValidateEconomy(startingCash, baseHealth int) error {
	if startingCash < 0 {
		return fmt.Errorf("%w: starting cash %d is negative", ErrInvalidEconomy, startingCash)
	}
	if baseHealth < 0 || baseHealth > config.BaseHealth {
		return fmt.Errorf("%w: base health %d outside [0,%d]", ErrInvalidEconomy, baseHealth, config.BaseHealth)
	}
	return nil
}
