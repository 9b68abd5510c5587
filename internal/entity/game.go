package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	// NoWinner is the Winner value of an ongoing or drawn game.
	NoWinner = 0
)

// Move is one applied turn.
type Move struct {
	Player int   `json:"player"`
	Coord  Coord `json:"coord"`
}

// Game is the serializable snapshot of a running session.
type Game struct {
	ID     string     `json:"id"`
	Size   int        `json:"size"`
	Board  [][]string `json:"board"`
	Turn   int        `json:"player_turn"`
	Winner int        `json:"winner"`
	Status string     `json:"status"`
	Moves  []Move     `json:"moves,omitempty"`
}

func NewGame(id string, board *Board, first *Player) *Game {
	return &Game{
		ID:     id,
		Size:   board.Size(),
		Board:  board.Marks(),
		Turn:   first.Num,
		Winner: NoWinner,
		Status: StatusOngoing,
	}
}

// RecordMove - appends the move and refreshes the snapshot from the board.
// next is the player to move afterwards; it is ignored once the game is over.
func (that *Game) RecordMove(board *Board, player *Player, coord Coord, next *Player) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	that.Moves = append(that.Moves, Move{Player: player.Num, Coord: coord})
	that.Board = board.Marks()

	winner := board.Winner()
	switch {
	case winner != nil:
		that.Winner = winner.Num
		that.Status = StatusFinished
		that.Turn = 0
	case board.IsFull():
		that.Status = StatusFinished
		that.Turn = 0
	default:
		that.Turn = next.Num
	}

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == NoWinner
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("unknown game status: %s", that.Status)
	}
}
