// Package ws defines the frames exchanged over a game socket.
package ws

import "encoding/json"

type MessageType string

// Clients send move and undo; the server answers with gameState or error.
const (
	MessageTypeMove      MessageType = "move"
	MessageTypeUndo      MessageType = "undo"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message is one frame. Payload is decoded according to Type.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// NewMessage encodes v as the payload of a frame of type t.
func NewMessage(t MessageType, v any) (Message, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: payload}, nil
}

// ErrorMessage wraps cause's text in an error frame.
func ErrorMessage(cause error) Message {
	payload, _ := json.Marshal(ErrorPayload{Error: cause.Error()})
	return Message{Type: MessageTypeError, Payload: payload}
}
