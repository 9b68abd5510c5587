package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

// RunApp - plays one game on in/out and returns once it is won or drawn.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	board, err := entity.NewBoard(conf.BoardSize)
	if err != nil {
		return fmt.Errorf("could not create board: %w", err)
	}

	gameRepo, closeRepo, err := newGameRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	terminal := console.New(logger, in, out, console.NewStyler(out, !conf.NoColor))
	defer terminal.Close()

	session, err := usecase.NewGameSession(logger, board, entity.DefaultPlayers(), terminal, gameRepo)
	if err != nil {
		return fmt.Errorf("could not create game session: %w", err)
	}

	if _, err = session.Run(ctx); err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}

	return nil
}

// newGameRepository - picks redis when enabled, memory otherwise.
func newGameRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	if !conf.Redis.Enabled {
		log.Debug("redis disabled, keeping the session in memory")
		return repository.NewMemoryGameRepository(), func() {}, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeRepo := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	log.Info("mirroring the session to redis", "addr", conf.Redis.GetRedisAddr())

	return repository.NewGameRepository(redisStorage, conf.Redis.TTL), closeRepo, nil
}

// Run - entry point used by main with the process streams.
func Run(logger *slog.Logger, conf *config.Config) error {
	return RunApp(logger, conf, os.Stdin, os.Stdout)
}
