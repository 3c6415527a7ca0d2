package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"tilepath/server/messages"
	"tilepath/server/network"
	"tilepath/server/persistence"
	"tilepath/server/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Level viewers may be served from anywhere during development
		return true
	},
}

var nextClientID atomic.Int64

// ClientHandler manages a single viewer connection
type ClientHandler struct {
	id            string
	conn          *network.Connection
	levelService  *services.LevelService
	clientManager *ClientManager
}

// NewWebSocketHandler returns the HTTP handler that upgrades viewers to WebSocket
func NewWebSocketHandler(levelService *services.LevelService, clientManager *ClientManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("Failed to upgrade connection: %v", err)
			return
		}
		defer conn.Close()

		HandleClientConnection(conn, levelService, clientManager)
	}
}

// HandleClientConnection serves a viewer until it disconnects
func HandleClientConnection(wsConn *websocket.Conn, levelService *services.LevelService, clientManager *ClientManager) {
	conn := network.NewConnection(wsConn)
	handler := &ClientHandler{
		id:            fmt.Sprintf("client_%d", nextClientID.Add(1)),
		conn:          conn,
		levelService:  levelService,
		clientManager: clientManager,
	}

	clientManager.AddClient(handler.id, handler)
	log.Printf("Viewer %s connected from %s (%d viewing)", handler.id, conn.RemoteAddr(), clientManager.Count())

	// Start the write pump in a goroutine
	go conn.WritePump()

	// New viewers get the current level straight away
	handler.sendLevel()

	// Handle the read pump in the current goroutine
	conn.ReadPump(handler)

	clientManager.RemoveClient(handler.id)
	log.Printf("Viewer %s disconnected (%d viewing)", handler.id, clientManager.Count())
}

// HandleMessage handles incoming messages from the client
func (h *ClientHandler) HandleMessage(conn *network.Connection, message []byte) {
	var baseMsg messages.IncomingMessage
	if err := json.Unmarshal(message, &baseMsg); err != nil {
		log.Printf("Error unmarshaling message: %v", err)
		h.sendError("BAD_MESSAGE", "Message is not valid JSON")
		return
	}

	switch baseMsg.Type {
	case messages.MessageTypeGenerate:
		h.handleGenerate(baseMsg.Payload)
	case messages.MessageTypeGetLevel:
		h.sendLevel()
	case messages.MessageTypeListPresets:
		h.handleListPresets()
	default:
		log.Printf("Unknown message type: %s", baseMsg.Type)
		h.sendError("UNKNOWN_MESSAGE_TYPE", "Unknown message type received")
	}
}

// handleGenerate regenerates the level and pushes it to every viewer
func (h *ClientHandler) handleGenerate(payload json.RawMessage) {
	var generateMsg messages.GenerateMessage
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &generateMsg); err != nil {
			log.Printf("Error unmarshaling generate message: %v", err)
			h.sendError("BAD_MESSAGE", "Invalid generate request")
			return
		}
	}

	var err error
	switch {
	case generateMsg.Preset != "":
		seed := services.NewSeed()
		if generateMsg.Seed != nil {
			seed = *generateMsg.Seed
		}
		err = h.levelService.UsePreset(generateMsg.Preset, seed)
	case generateMsg.Seed != nil:
		err = h.levelService.Regenerate(*generateMsg.Seed)
	default:
		_, err = h.levelService.RegenerateRandom()
	}

	if err != nil {
		log.Printf("Error generating level: %v", err)
		code := "GENERATE_FAILED"
		if errors.Is(err, persistence.ErrPresetNotFound) {
			code = "PRESET_NOT_FOUND"
		}
		h.sendError(code, err.Error())
		return
	}

	h.broadcastLevel()
}

// handleListPresets sends the stored preset names
func (h *ClientHandler) handleListPresets() {
	names, err := h.levelService.ListPresets()
	if err != nil {
		log.Printf("Error listing presets: %v", err)
		h.sendError("LIST_PRESETS_FAILED", err.Error())
		return
	}

	msg := messages.BaseMessage{
		Type:    messages.MessageTypePresets,
		Payload: messages.PresetsMessage{Names: names},
	}
	if err := h.conn.SendMessage(msg); err != nil {
		log.Printf("Error sending presets: %v", err)
	}
}

// sendLevel sends the current level to this viewer
func (h *ClientHandler) sendLevel() {
	msg, err := levelMessage(h.levelService)
	if err != nil {
		h.sendError("NO_LEVEL", err.Error())
		return
	}

	if err := h.conn.SendMessage(msg); err != nil {
		log.Printf("Error sending level: %v", err)
	}
}

// broadcastLevel sends the current level to all viewers
func (h *ClientHandler) broadcastLevel() {
	msg, err := levelMessage(h.levelService)
	if err != nil {
		h.sendError("NO_LEVEL", err.Error())
		return
	}
	h.clientManager.BroadcastToAll(msg)
}

func (h *ClientHandler) sendError(code, message string) {
	errMsg := messages.BaseMessage{
		Type: messages.MessageTypeError,
		Payload: messages.ErrorMessage{
			Code:    code,
			Message: message,
		},
	}
	if err := h.conn.SendMessage(errMsg); err != nil {
		log.Printf("Error sending error message: %v", err)
	}
}

func levelMessage(levelService *services.LevelService) (messages.BaseMessage, error) {
	snapshot, err := levelService.Snapshot()
	if err != nil {
		return messages.BaseMessage{}, err
	}
	return messages.BaseMessage{
		Type:    messages.MessageTypeLevel,
		Payload: snapshot,
	}, nil
}
