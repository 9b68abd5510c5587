package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/tictactoe-cli/internal"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var (
	size       = flag.Int("size", entity.DefaultBoardSize, "Size of board")
	configPath = flag.String("config", "./config.yml", "Path to the config file")
)

// main - is the entry point of the application. It parses flags, loads the configuration, builds the logger and plays one game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}()

	flag.Parse()

	conf := initConfig()
	logger := initLogger(conf)

	if err := app.Run(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config. An explicit --size wins over the config file.
func initConfig() *config.Config {
	conf := config.MustLoad(*configPath)

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "size" {
			conf.BoardSize = *size
		}
	})

	return conf
}

// initialize logger. Logs go to stderr, stdout belongs to the game.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
