package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/rocketscienceinc/gameroom-backend/internal/room"
)

const shutdownTimeout = 5 * time.Second

type roomDirectory interface {
	Create(name string) (*room.Room, error)
	Get(name string) (*room.Room, error)
	Names() []string
}

// Server creates rooms and serves their snapshots for page rendering.
type Server struct {
	logger    *slog.Logger
	rooms     roomDirectory
	publicURL string
}

func New(logger *slog.Logger, rooms roomDirectory, publicURL string) *Server {
	return &Server{
		logger:    logger.With("component", "rest"),
		rooms:     rooms,
		publicURL: publicURL,
	}
}

func (that *Server) Router() *httprouter.Router {
	router := httprouter.New()

	router.GET("/ping", that.ping)
	router.GET("/rooms", that.listRooms)
	router.POST("/rooms", that.createRoom)
	router.GET("/rooms/:name", that.getRoom)
	router.GET("/rooms/:name/qr", that.roomQR)

	return router
}

// Start - starts HTTP server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
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
