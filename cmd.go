package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	app "github.com/rocketscienceinc/gameroom-backend/internal"
	"github.com/rocketscienceinc/gameroom-backend/internal/config"
)

type flags struct {
	configPath string
	logLevel   string
}

func newCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "gameroom",
		Short: "Multiplayer game-room server: named rooms, WebSocket sessions and tic-tac-toe.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := config.MustLoad(f.configPath)
			if f.logLevel != "" {
				conf.LogLevel = f.logLevel
			}

			if err := app.RunApp(cmd.Context(), initLogger(conf), conf); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&f.configPath, "config", "c", defaultConfigPath(), "path to the yaml config file")
	fs.StringVarP(&f.logLevel, "log-level", "l", "", "log level override: debug, info, warn or error")

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}

func defaultConfigPath() string {
	baseDir, err := os.Getwd()
	if err != nil {
		return "config.yml"
	}

	return filepath.Join(baseDir, "config.yml")
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
