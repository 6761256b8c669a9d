package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"github.com/rocketscienceinc/gameroom-backend/internal/config"
	"github.com/rocketscienceinc/gameroom-backend/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type gateway interface {
	Handle(ctx context.Context, conn entity.Conn, message entity.Message) error
	Reject(conn entity.Conn, err error)
	Disconnect(ctx context.Context, conn entity.Conn)
}

type Server struct {
	logger   *slog.Logger
	gateway  gateway
	conf     config.WebSocket
	upgrader websocket.Upgrader
}

func New(logger *slog.Logger, gateway gateway, conf config.WebSocket) *Server {
	return &Server{
		logger:  logger.With("component", "websocket"),
		gateway: gateway,
		conf:    conf,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// pages that join rooms are served from the http port
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Router serves the WebSocket endpoint. Connections are closed when ctx is done.
func (that *Server) Router(ctx context.Context) *httprouter.Router {
	router := httprouter.New()
	router.GET("/ws", that.serveWS(ctx))

	return router
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Router(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) serveWS(ctx context.Context) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		log := that.logger.With("method", "serveWS")

		conn, err := that.upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warn("failed to upgrade connection", "error", err)
			return
		}

		client := newClient(that.logger, conn, that.conf)

		log.Info("WebSocket connection established", "conn", client.ID())

		go func() {
			select {
			case <-ctx.Done():
				client.close()
			case <-client.done:
			}
		}()

		go client.writePump()
		client.readPump(ctx, that.gateway)

		log.Info("WebSocket connection closed", "conn", client.ID())
	}
}
