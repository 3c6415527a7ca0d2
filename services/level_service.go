package services

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"tilepath/server/generation"
	"tilepath/server/messages"
	"tilepath/server/models"
	"tilepath/server/persistence"
)

// ErrNoLevel is returned when a level is requested before any was generated
var ErrNoLevel = errors.New("no level generated yet")

// LevelService owns the current level and regenerates it on request
type LevelService struct {
	grid       *TileGrid
	generator  *generation.LevelGenerator
	config     models.LevelConfig
	preset     string
	seed       int64
	result     *generation.Result
	db         persistence.Storage
	levelMutex sync.RWMutex
}

// NewLevelService creates a level service using cfg until a preset is chosen.
// No level exists until Regenerate is called.
func NewLevelService(db persistence.Storage, cfg models.LevelConfig) *LevelService {
	return &LevelService{
		generator: generation.NewRandomLevelGenerator(),
		config:    cfg,
		db:        db,
	}
}

// Config returns the config the next level will be generated from
func (ls *LevelService) Config() models.LevelConfig {
	ls.levelMutex.RLock()
	defer ls.levelMutex.RUnlock()

	return ls.config
}

// Regenerate replaces the current level with one generated from seed.
// On failure the previous level stays in place.
func (ls *LevelService) Regenerate(seed int64) error {
	ls.levelMutex.Lock()
	defer ls.levelMutex.Unlock()

	return ls.regenerateLocked(ls.config, ls.preset, seed)
}

// NewSeed returns a clock-derived seed for an unseeded regenerate
func NewSeed() int64 {
	return time.Now().UnixNano()
}

// RegenerateRandom regenerates with a fresh seed and returns it
func (ls *LevelService) RegenerateRandom() (int64, error) {
	seed := NewSeed()
	return seed, ls.Regenerate(seed)
}

// UsePreset loads a stored config and regenerates the level from it. The
// service keeps its current config if the preset cannot be loaded or generated.
func (ls *LevelService) UsePreset(name string, seed int64) error {
	if ls.db == nil {
		return errors.New("no preset storage configured")
	}

	cfg, err := ls.db.LoadPreset(name)
	if err != nil {
		return fmt.Errorf("failed to load preset %s: %w", name, err)
	}

	ls.levelMutex.Lock()
	defer ls.levelMutex.Unlock()

	return ls.regenerateLocked(*cfg, name, seed)
}

// ListPresets returns the stored preset names
func (ls *LevelService) ListPresets() ([]string, error) {
	if ls.db == nil {
		return nil, nil
	}
	return ls.db.ListPresets()
}

func (ls *LevelService) regenerateLocked(cfg models.LevelConfig, preset string, seed int64) error {
	// Draw into a fresh grid so readers never see a half-built level
	grid := NewTileGrid()
	ls.generator.SetSeed(seed)

	result, err := ls.generator.Generate(grid, cfg)
	if err != nil {
		return fmt.Errorf("failed to generate level: %w", err)
	}

	ls.grid = grid
	ls.result = result
	ls.config = cfg
	ls.preset = preset
	ls.seed = seed

	log.Printf("Generated level seed=%d preset=%q waypoints=%d cells=%d",
		seed, preset, len(result.Waypoints), grid.Len())
	return nil
}

// Snapshot returns the current level for sending to viewers
func (ls *LevelService) Snapshot() (*messages.LevelMessage, error) {
	ls.levelMutex.RLock()
	defer ls.levelMutex.RUnlock()

	if ls.grid == nil {
		return nil, ErrNoLevel
	}

	tiles := make(map[string][]models.Position)
	for kind, cells := range ls.grid.CellsByKind() {
		positions := make([]models.Position, 0, cells.Size())
		cells.Each(func(pos models.Position) {
			positions = append(positions, pos)
		})
		slices.SortFunc(positions, comparePositions)
		tiles[kind.String()] = positions
	}

	return &messages.LevelMessage{
		Seed:      ls.seed,
		Preset:    ls.preset,
		Config:    ls.config,
		Min:       ls.result.Min,
		Max:       ls.result.Max,
		Waypoints: slices.Clone(ls.result.Waypoints),
		Tiles:     tiles,
	}, nil
}

// comparePositions orders cells row by row, bottom to top
func comparePositions(a, b models.Position) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}
