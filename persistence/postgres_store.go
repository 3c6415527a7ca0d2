package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"tilepath/server/models"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// PostgresStore keeps level presets in PostgreSQL
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new PostgreSQL preset store
func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema initializes the database schema
func (ps *PostgresStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS level_presets (
		name TEXT PRIMARY KEY,
		config JSONB NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`

	_, err := ps.db.Exec(schema)
	return err
}

// SavePreset stores cfg under name, replacing any existing preset
func (ps *PostgresStore) SavePreset(name string, cfg *models.LevelConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("refusing to save preset %s: %w", name, err)
	}

	configJSON, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal preset: %w", err)
	}

	query := `
	INSERT INTO level_presets (name, config)
	VALUES ($1, $2)
	ON CONFLICT (name)
	DO UPDATE SET config = $2, updated_at = NOW()
	`

	if _, err := ps.db.Exec(query, name, string(configJSON)); err != nil {
		return fmt.Errorf("failed to save preset: %w", err)
	}

	return nil
}

// LoadPreset loads a preset by name
func (ps *PostgresStore) LoadPreset(name string) (*models.LevelConfig, error) {
	var configJSON string
	err := ps.db.QueryRow(`SELECT config FROM level_presets WHERE name = $1`, name).Scan(&configJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
		}
		return nil, fmt.Errorf("failed to load preset: %w", err)
	}

	var cfg models.LevelConfig
	if err := json.Unmarshal([]byte(configJSON), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preset: %w", err)
	}

	return &cfg, nil
}

// ListPresets returns the preset names in alphabetical order
func (ps *PostgresStore) ListPresets() ([]string, error) {
	rows, err := ps.db.Query(`SELECT name FROM level_presets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan preset name: %w", err)
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// Close closes the database connection
func (ps *PostgresStore) Close() error {
	log.Println("Closing database connection...")
	return ps.db.Close()
}
