package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"tilepath/server/models"
)

// FileStore keeps level presets in a local YAML file, or JSON when the
// file name ends in .json
type FileStore struct {
	filePath string
	mutex    sync.RWMutex
	data     *FileData
}

// FileData represents the structure of the presets file
type FileData struct {
	Presets map[string]*models.LevelConfig `json:"presets" yaml:"presets"`
}

// NewFileStore opens the presets file, creating it if it doesn't exist
func NewFileStore(filePath string) (*FileStore, error) {
	store := &FileStore{
		filePath: filePath,
		data: &FileData{
			Presets: make(map[string]*models.LevelConfig),
		},
	}

	if _, err := os.Stat(filePath); err == nil {
		if err := store.loadFromFile(); err != nil {
			return nil, fmt.Errorf("failed to load preset file: %w", err)
		}
	} else {
		if err := store.saveToFile(); err != nil {
			return nil, fmt.Errorf("failed to create preset file: %w", err)
		}
	}

	return store, nil
}

func (fs *FileStore) isJSON() bool {
	return strings.EqualFold(filepath.Ext(fs.filePath), ".json")
}

// loadFromFile loads presets from disk
func (fs *FileStore) loadFromFile() error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	file, err := os.ReadFile(fs.filePath)
	if err != nil {
		return err
	}

	if fs.isJSON() {
		err = json.Unmarshal(file, fs.data)
	} else {
		err = yaml.Unmarshal(file, fs.data)
	}
	if err != nil {
		return err
	}
	if fs.data.Presets == nil {
		fs.data.Presets = make(map[string]*models.LevelConfig)
	}
	return nil
}

// saveToFile writes all presets to disk
func (fs *FileStore) saveToFile() error {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	var data []byte
	var err error
	if fs.isJSON() {
		data, err = json.MarshalIndent(fs.data, "", "  ")
	} else {
		data, err = yaml.Marshal(fs.data)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(fs.filePath, data, 0644)
}

// SavePreset stores cfg under name, replacing any existing preset
func (fs *FileStore) SavePreset(name string, cfg *models.LevelConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("refusing to save preset %s: %w", name, err)
	}

	stored := *cfg
	fs.mutex.Lock()
	fs.data.Presets[name] = &stored
	fs.mutex.Unlock()

	return fs.saveToFile()
}

// LoadPreset loads a preset by name
func (fs *FileStore) LoadPreset(name string) (*models.LevelConfig, error) {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	cfg, exists := fs.data.Presets[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}

	loaded := *cfg
	return &loaded, nil
}

// ListPresets returns the preset names in alphabetical order
func (fs *FileStore) ListPresets() ([]string, error) {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	names := make([]string, 0, len(fs.data.Presets))
	for name := range fs.data.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Close closes the store (no-op for file store)
func (fs *FileStore) Close() error {
	return nil
}
