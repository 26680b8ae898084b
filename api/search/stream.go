package searchapi

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

// streamClient wraps a WebSocket connection with serialized writes.
type streamClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *streamClient) send(frame StreamFrame) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteJSON(frame)
}

// close sends a normal closure frame and closes the connection.
func (c *streamClient) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
	_ = c.conn.Close()
}

// watch reads until the peer goes away, then calls gone. Control frames are
// handled by the reader; data frames from the client are ignored.
func (c *streamClient) watch(gone func()) {
	defer gone()
	for {
		if _, _, err := c.conn.NextReader(); err != nil {
			return
		}
	}
}
