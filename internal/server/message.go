package server

import (
	"encoding/json"
	"time"
)

// MessageType identifies a message on the wire.
type MessageType string

const (
	// Client → Server
	TypeValidate MessageType = "validate"
	TypePlay     MessageType = "play"
	TypeGetState MessageType = "get_state"
	TypeReset    MessageType = "reset"

	// Server → Client
	TypeValidation  MessageType = "validation"
	TypeRoundResult MessageType = "round_result"
	TypeState       MessageType = "state"
	TypeError       MessageType = "error"
)

// Message is the JSON envelope for all WebSocket traffic.
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage creates a message with the current timestamp.
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// Client → Server payloads

// ValidateData asks for a legality check on raw user input.
type ValidateData struct {
	Input string `json:"input"`
}

// PlayData submits an already-validated move for round resolution.
type PlayData struct {
	Move string `json:"move"`
}

// Server → Client payloads
//
// These deliberately mirror the engine's shapes as plain wire structs so
// the engine's own types never cross the boundary.

// ValidationData is the verdict on a submitted move string.
type ValidationData struct {
	Valid  bool   `json:"valid"`
	Move   string `json:"move"`
	Reason string `json:"reason"`
}

// StateData is a match state snapshot.
type StateData struct {
	MatchID           string `json:"match_id"`
	Round             int    `json:"round"`
	UserScore         int    `json:"user_score"`
	BotScore          int    `json:"bot_score"`
	UserBombAvailable bool   `json:"user_bomb_available"`
	BotBombAvailable  bool   `json:"bot_bomb_available"`
	GameOver          bool   `json:"game_over"`
}

// RoundResultData reports one resolved round plus the state after it.
// Result is set only once the match has ended.
type RoundResultData struct {
	StateData
	UserMove string `json:"user_move"`
	BotMove  string `json:"bot_move"`
	Winner   string `json:"winner"`
	Result   string `json:"result,omitempty"`
}

// ErrorData is a structured, recoverable error.
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes
const (
	CodeBadPayload     = "bad_payload"
	CodeInvalidMove    = "invalid_move"
	CodeMatchOver      = "match_over"
	CodeSessionExpired = "session_expired"
	CodeUnknownType    = "unknown_type"
)
