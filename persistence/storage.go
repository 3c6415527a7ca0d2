package persistence

import (
	"errors"

	"tilepath/server/models"
)

// ErrPresetNotFound is returned when no preset is stored under a name
var ErrPresetNotFound = errors.New("preset not found")

// Storage defines the interface for level preset persistence
type Storage interface {
	SavePreset(name string, cfg *models.LevelConfig) error
	LoadPreset(name string) (*models.LevelConfig, error)
	ListPresets() ([]string, error)
	Close() error
}
