package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrGameNotFound = errors.New("game not found")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidSize  = errors.New("invalid board size")
	ErrInputClosed  = errors.New("input closed before the game finished")
	ErrPlayers      = errors.New("invalid players")
)
