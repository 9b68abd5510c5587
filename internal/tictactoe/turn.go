package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const coordSeparator = ","

// OccupiedError reports the player already holding the requested cell.
type OccupiedError struct {
	Coord    entity.Coord
	Occupant *entity.Player
}

func (that *OccupiedError) Error() string {
	return fmt.Sprintf("%s: %s by player %d", apperror.ErrCellOccupied, that.Coord, that.Occupant.Num)
}

func (that *OccupiedError) Unwrap() error {
	return apperror.ErrCellOccupied
}

type prompter interface {
	Prompt(ctx context.Context, text string) (string, error)
	Println(text string)
}

// ParseCoordinates - parses "row,col" into a coordinate inside a size x size
// board. Whitespace around each number is ignored.
func ParseCoordinates(input string, size int) (entity.Coord, error) {
	parts := strings.Split(input, coordSeparator)
	if len(parts) != 2 {
		return entity.Coord{}, fmt.Errorf("%w: want 2 numbers, got %d", apperror.ErrInvalidInput, len(parts))
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return entity.Coord{}, fmt.Errorf("%w: row: %w", apperror.ErrInvalidInput, err)
	}

	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return entity.Coord{}, fmt.Errorf("%w: column: %w", apperror.ErrInvalidInput, err)
	}

	if row < 0 || row >= size || col < 0 || col >= size {
		return entity.Coord{}, fmt.Errorf("%w: %d,%d outside 0..%d", apperror.ErrInvalidInput, row, col, size-1)
	}

	return entity.Coord{Row: row, Col: col}, nil
}

// MakeTurn - places the player on an empty cell. The board is left untouched
// on error.
func MakeTurn(board *entity.Board, player *entity.Player, coord entity.Coord) error {
	if err := validateMove(board, coord); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	if err := board.Set(coord.Row, coord.Col, player); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(board *entity.Board, coord entity.Coord) error {
	cell, err := board.Get(coord.Row, coord.Col)
	if err != nil {
		return err
	}

	if !cell.IsEmpty() {
		return &OccupiedError{Coord: coord, Occupant: cell.Player()}
	}

	return nil
}

// TakeTurn - prompts the player until a valid move lands on an empty cell and
// returns where it was placed. Bad input and taken cells are reported and
// asked again; only prompt failures are returned.
func TakeTurn(ctx context.Context, board *entity.Board, player *entity.Player, console prompter) (entity.Coord, error) {
	question := fmt.Sprintf("%s: Enter some coordinates. ", player.Name())

	for {
		input, err := console.Prompt(ctx, question)
		if err != nil {
			return entity.Coord{}, fmt.Errorf("%s turn: %w", player.Name(), err)
		}

		coord, err := ParseCoordinates(input, board.Size())
		if err != nil {
			console.Println(fmt.Sprintf("%s is invalid.", input))
			continue
		}

		err = MakeTurn(board, player, coord)

		var occupied *OccupiedError
		switch {
		case err == nil:
			return coord, nil
		case errors.As(err, &occupied):
			console.Println(fmt.Sprintf("That spot's taken by %s.", occupied.Occupant.Name()))
		default:
			console.Println(fmt.Sprintf("%s is invalid.", input))
		}
	}
}
