package websocket

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/gameroom-backend/internal/config"
	"github.com/rocketscienceinc/gameroom-backend/internal/entity"
)

var (
	ErrSendQueueFull = errors.New("send queue is full")
	ErrClientClosed  = errors.New("client is closed")
)

// Client is one WebSocket connection. It implements entity.Conn.
type Client struct {
	id     string
	conn   *websocket.Conn
	logger *slog.Logger
	conf   config.WebSocket

	send chan []byte

	done      chan struct{}
	closeOnce sync.Once
}

var _ entity.Conn = (*Client)(nil)

func newClient(logger *slog.Logger, conn *websocket.Conn, conf config.WebSocket) *Client {
	id := uuid.NewString()

	return &Client{
		id:     id,
		conn:   conn,
		logger: logger.With("conn", id),
		conf:   conf,

		send: make(chan []byte, conf.SendBuffer),
		done: make(chan struct{}),
	}
}

func (that *Client) ID() string {
	return that.id
}

// Send queues the payload without blocking. A client that cannot keep up is closed.
func (that *Client) Send(payload []byte) error {
	select {
	case <-that.done:
		return ErrClientClosed
	default:
	}

	select {
	case that.send <- payload:
		return nil
	default:
		that.close()
		return ErrSendQueueFull
	}
}

func (that *Client) close() {
	that.closeOnce.Do(func() {
		close(that.done)
	})
}

// readPump decodes inbound frames and hands them to the gateway in arrival order.
func (that *Client) readPump(ctx context.Context, gateway gateway) {
	log := that.logger.With("method", "readPump")

	defer func() {
		gateway.Disconnect(ctx, that)
		that.close()
	}()

	that.conn.SetReadLimit(that.conf.MaxMessageSize)
	_ = that.conn.SetReadDeadline(time.Now().Add(that.conf.PongWait))
	that.conn.SetPongHandler(func(string) error {
		return that.conn.SetReadDeadline(time.Now().Add(that.conf.PongWait))
	})

	for {
		_, data, err := that.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("unexpected close", "error", err)
			}

			return
		}

		message, err := entity.DecodeMessage(data)
		if err != nil {
			log.Debug("failed to decode message", "error", err)
			gateway.Reject(that, err)

			continue
		}

		_ = gateway.Handle(ctx, that, message)
	}
}

// writePump is the only writer of the connection and owns closing it.
func (that *Client) writePump() {
	log := that.logger.With("method", "writePump")

	ticker := time.NewTicker(that.conf.PingPeriod())

	defer func() {
		ticker.Stop()
		_ = that.conn.Close()
	}()

	for {
		select {
		case payload := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(that.conf.WriteWait))

			if err := that.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				log.Debug("failed to write message", "error", err)
				that.close()

				return
			}
		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(that.conf.WriteWait))

			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				that.close()
				return
			}
		case <-that.done:
			_ = that.conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(that.conf.WriteWait),
			)

			return
		}
	}
}
