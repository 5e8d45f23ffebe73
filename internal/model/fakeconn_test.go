package model

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/benbeisheim/chess-backend/internal/ws"
)

type fakeConn struct {
	mu       sync.Mutex
	messages []ws.Message
	closed   bool
	fail     bool
	sent     chan ws.Message
}

func newFakeConn() *fakeConn {
	return &fakeConn{sent: make(chan ws.Message, 16)}
}

func (c *fakeConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("broken pipe")
	}
	msg, ok := v.(ws.Message)
	if !ok {
		raw, _ := json.Marshal(v)
		msg = ws.Message{Payload: raw}
	}
	c.messages = append(c.messages, msg)
	select {
	case c.sent <- msg:
	default:
	}
	return nil
}

func (c *fakeConn) WriteMessage(int, []byte) error { return nil }

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}
