package ws

import (
	"errors"
	"sync"
	"time"

	"checkers/internal/config"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var (
	errClientClosed  = errors.New("client is closed")
	errSendQueueFull = errors.New("send queue is full")
)

// client owns one websocket connection. Messages are queued by Send and
// written by writePump, so a slow peer never blocks its room.
type client struct {
	id   string
	conn *websocket.Conn
	cfg  config.WebSocket
	log  *zap.SugaredLogger

	send      chan any
	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

func newClient(id string, conn *websocket.Conn, cfg config.WebSocket, log *zap.SugaredLogger) *client {
	return &client{
		id:      id,
		conn:    conn,
		cfg:     cfg,
		log:     log,
		send:    make(chan any, cfg.SendBuffer),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

func (c *client) Send(msg any) error {
	select {
	case <-c.done:
		return errClientClosed
	default:
	}

	select {
	case c.send <- msg:
		return nil
	default:
		c.close()
		return errSendQueueFull
	}
}

// close asks writePump to flush and shut the connection down, which in turn
// ends the read loop. Safe to call more than once.
func (c *client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

func (c *client) writePump() {
	ticker := time.NewTicker(c.cfg.PingPeriod())
	defer func() {
		ticker.Stop()
		c.close()
		_ = c.conn.Close()
		close(c.stopped)
	}()

	for {
		select {
		case msg := <-c.send:
			if err := c.write(msg); err != nil {
				c.log.Debugw("write failed", "error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.Debugw("ping failed", "error", err)
				return
			}
		case <-c.done:
			c.drain()
			return
		}
	}
}

func (c *client) write(msg any) error {
	_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
	return c.conn.WriteJSON(msg)
}

// drain flushes whatever is still queued and sends a close frame.
func (c *client) drain() {
	for {
		select {
		case msg := <-c.send:
			if err := c.write(msg); err != nil {
				return
			}
		default:
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(c.cfg.WriteTimeout))
			return
		}
	}
}

func (c *client) prepareRead() {
	c.conn.SetReadLimit(c.cfg.MaxMessageBytes)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongTimeout))
	})
}
