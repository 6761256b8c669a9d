package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/gameroom-backend/internal/config"
	"github.com/rocketscienceinc/gameroom-backend/internal/repository"
	"github.com/rocketscienceinc/gameroom-backend/internal/repository/storage"
	"github.com/rocketscienceinc/gameroom-backend/internal/room"
	"github.com/rocketscienceinc/gameroom-backend/internal/tictactoe"
	"github.com/rocketscienceinc/gameroom-backend/internal/usecase"
	"github.com/rocketscienceinc/gameroom-backend/transport/rest"
	"github.com/rocketscienceinc/gameroom-backend/transport/websocket"
)

// RunApp - runs the application until ctx is done, a signal arrives or a server fails.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	directory := room.NewDirectory(tictactoe.NewEngine)

	broadcaster := usecase.NewBroadcaster(logger, nil)

	if conf.Redis.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		snapshotRepo := repository.NewRoomSnapshotRepository(redisStorage.Connection, conf.Redis.SnapshotTTL)
		broadcaster = usecase.NewBroadcaster(logger, snapshotRepo)

		log.Info("Mirroring room snapshots to redis", "addr", conf.Redis.GetRedisAddr())
	}

	gateway := usecase.NewGateway(logger, directory, broadcaster)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.New(logger, directory, conf.PublicURL).Start(ctx, conf.HTTPPort); httpErr != nil {
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := websocket.New(logger, gateway, conf.WebSocket).Start(ctx, conf.SocketPort); wsErr != nil {
			wsErrCh <- wsErr
		}
	}()

	select {
	case err := <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err := <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
