package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	DeleteByID(ctx context.Context, id string) error
}

type console interface {
	Prompt(ctx context.Context, text string) (string, error)
	Println(text string)
	PrintBoard(board *entity.Board)
}

// Result is how a finished session ended. Winner is nil for a draw.
type Result struct {
	Winner *entity.Player
	Draw   bool
	Moves  int
}

// GameSession runs one match from the first prompt to a win or a draw.
type GameSession struct {
	logger *slog.Logger

	id       string
	board    *entity.Board
	players  []*entity.Player
	game     *entity.Game
	console  console
	gameRepo gameRepo
}

// NewGameSession - players move in the given order, starting with the first.
// At least two players with distinct marks are required.
func NewGameSession(logger *slog.Logger, board *entity.Board, players []*entity.Player, console console, gameRepo gameRepo) (*GameSession, error) {
	if err := validatePlayers(players); err != nil {
		return nil, err
	}

	id := pkg.GenerateGameID()

	return &GameSession{
		logger: logger.With("component", "session", "gameID", id),

		id:       id,
		board:    board,
		players:  players,
		game:     entity.NewGame(id, board, players[0]),
		console:  console,
		gameRepo: gameRepo,
	}, nil
}

func (that *GameSession) ID() string {
	return that.id
}

// Run - plays turns in rotation until a player completes a line or the board
// fills up. The session record is removed from the repository on return.
// A finished session returns ErrGameFinished; an interrupted one resumes
// with the player whose turn it was.
func (that *GameSession) Run(ctx context.Context) (*Result, error) {
	log := that.logger.With("method", "Run")

	if err := that.game.ConfirmOngoingState(); err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	that.saveGame(ctx)
	defer that.deleteGame(context.WithoutCancel(ctx))

	log.Info("game started", "size", that.board.Size(), "players", len(that.players))
	that.console.Println(that.intro())

	for turn := len(that.game.Moves); that.game.IsOngoing(); turn++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("game interrupted: %w", err)
		}

		player := that.players[turn%len(that.players)]
		next := that.players[(turn+1)%len(that.players)]

		coord, err := tictactoe.TakeTurn(ctx, that.board, player, that.console)
		if err != nil {
			return nil, fmt.Errorf("failed to take turn: %w", err)
		}

		that.console.PrintBoard(that.board)
		log.Debug("move applied", "player", player.Num, "coord", coord.String())

		if err = that.game.RecordMove(that.board, player, coord, next); err != nil {
			return nil, fmt.Errorf("failed to record move: %w", err)
		}
		that.saveGame(ctx)
	}

	result := that.result()
	if result.Draw {
		that.console.Println("It's a draw!")
		log.Info("game finished in a draw", "moves", result.Moves)

		return result, nil
	}

	that.console.Println(fmt.Sprintf("%s wins!", result.Winner.Name()))
	log.Info("game finished", "winner", result.Winner.Num, "moves", result.Moves)

	return result, nil
}

// result - reads the outcome from the finished game record.
func (that *GameSession) result() *Result {
	result := &Result{Draw: that.game.IsDraw(), Moves: len(that.game.Moves)}
	if result.Draw {
		return result
	}

	for _, player := range that.players {
		if player.Num == that.game.Winner {
			result.Winner = player
		}
	}

	return result
}

// intro - e.g. "Player 1 is X and Player 2 is O. Player 1 goes first."
func (that *GameSession) intro() string {
	parts := make([]string, len(that.players))
	for i, player := range that.players {
		parts[i] = fmt.Sprintf("%s is %s", player.Name(), player.Mark)
	}

	roster := parts[len(parts)-1]
	if len(parts) > 1 {
		roster = strings.Join(parts[:len(parts)-1], ", ") + " and " + roster
	}

	return fmt.Sprintf("%s. %s goes first.", roster, that.players[0].Name())
}

func (that *GameSession) saveGame(ctx context.Context) {
	if err := that.gameRepo.CreateOrUpdate(ctx, that.game); err != nil {
		that.logger.Warn("failed to save game", "error", err)
	}
}

func (that *GameSession) deleteGame(ctx context.Context) {
	if err := that.gameRepo.DeleteByID(ctx, that.id); err != nil {
		that.logger.Warn("failed to delete game", "error", err)
		return
	}

	that.logger.Debug("game deleted")
}

func validatePlayers(players []*entity.Player) error {
	if len(players) < 2 {
		return fmt.Errorf("%w: need at least 2, got %d", apperror.ErrPlayers, len(players))
	}

	marks := make(map[string]struct{}, len(players))
	for _, player := range players {
		if player == nil || player.Mark == "" {
			return fmt.Errorf("%w: every player needs a mark", apperror.ErrPlayers)
		}

		if _, ok := marks[player.Mark]; ok {
			return fmt.Errorf("%w: duplicate mark %q", apperror.ErrPlayers, player.Mark)
		}
		marks[player.Mark] = struct{}{}
	}

	return nil
}
