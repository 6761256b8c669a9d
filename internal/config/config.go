package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string    `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string    `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	PublicURL  string    `yaml:"public-url" env:"PUBLIC_URL" env-default:"http://localhost:9090"`
	Redis      Redis     `yaml:"redis" env-prefix:"REDIS_"`
	WebSocket  WebSocket `yaml:"websocket" env-prefix:"WS_"`
}

// Redis is the optional snapshot mirror.
type Redis struct {
	Enabled     bool          `yaml:"enabled" env:"ENABLED" env-default:"false"`
	Host        string        `yaml:"host" env:"HOST" env-default:"localhost"`
	Port        string        `yaml:"port" env:"PORT" env-default:"6379"`
	SnapshotTTL time.Duration `yaml:"snapshot-ttl" env:"SNAPSHOT_TTL" env-default:"1h"`
}

type WebSocket struct {
	WriteWait      time.Duration `yaml:"write-wait" env:"WRITE_WAIT" env-default:"10s"`
	PongWait       time.Duration `yaml:"pong-wait" env:"PONG_WAIT" env-default:"60s"`
	MaxMessageSize int64         `yaml:"max-message-size" env:"MAX_MESSAGE_SIZE" env-default:"4096"`
	SendBuffer     int           `yaml:"send-buffer" env:"SEND_BUFFER" env-default:"16"`
}

// MustLoad - load all configurations from the yaml file at path, or from the environment when it is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return net.JoinHostPort(that.Host, that.Port)
}

// PingPeriod is how often the server pings a client; it must stay below PongWait.
func (that *WebSocket) PingPeriod() time.Duration {
	return that.PongWait * 9 / 10
}
