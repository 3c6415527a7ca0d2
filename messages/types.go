package messages

import (
	"encoding/json"

	"tilepath/server/models"
)

// MessageType defines the type of message being sent
type MessageType string

const (
	MessageTypeGenerate    MessageType = "generate"
	MessageTypeGetLevel    MessageType = "get_level"
	MessageTypeListPresets MessageType = "list_presets"
	MessageTypeLevel       MessageType = "level"
	MessageTypePresets     MessageType = "presets"
	MessageTypeError       MessageType = "error"
)

// BaseMessage is the base structure for all messages
type BaseMessage struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// IncomingMessage is a client message with its payload left undecoded until
// the type is known
type IncomingMessage struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// GenerateMessage asks the server to regenerate the level. Without a seed a
// fresh one is drawn; a preset switches the level config first.
type GenerateMessage struct {
	Seed   *int64 `json:"seed,omitempty"`
	Preset string `json:"preset,omitempty"`
}

// LevelMessage is a full snapshot of the current level
type LevelMessage struct {
	Seed      int64                        `json:"seed"`
	Preset    string                       `json:"preset"`
	Config    models.LevelConfig           `json:"config"`
	Min       models.Position              `json:"min"`
	Max       models.Position              `json:"max"`
	Waypoints []models.Position            `json:"waypoints"`
	Tiles     map[string][]models.Position `json:"tiles"` // cells keyed by tile name
}

// PresetsMessage lists the stored level presets
type PresetsMessage struct {
	Names []string `json:"names"`
}

// ErrorMessage represents an error response
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
