package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	DefaultBoardSize = 3

	cellSeparator = " | "
	emptyMark     = " "
)

// Coord addresses a cell by row and column, both zero based.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Coord) String() string {
	return fmt.Sprintf("%d,%d", that.Row, that.Col)
}

// Cell is either empty or occupied by exactly one player.
type Cell struct {
	player *Player
}

func EmptyCell() Cell {
	return Cell{}
}

func OccupiedCell(player *Player) Cell {
	return Cell{player: player}
}

func (that Cell) IsEmpty() bool {
	return that.player == nil
}

// Player - returns the occupant, or nil for an empty cell.
func (that Cell) Player() *Player {
	return that.player
}

func (that Cell) String() string {
	if that.IsEmpty() {
		return emptyMark
	}
	return that.player.String()
}

// Board is a square grid of cells. Its size never changes after NewBoard.
type Board struct {
	size  int
	cells [][]Cell
	lines [][]Coord
}

func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidSize, size)
	}

	cells := make([][]Cell, size)
	for row := range cells {
		cells[row] = make([]Cell, size)
	}

	return &Board{
		size:  size,
		cells: cells,
		lines: winningCombinations(size),
	}, nil
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

func (that *Board) Get(row, col int) (Cell, error) {
	if !that.InBounds(row, col) {
		return EmptyCell(), fmt.Errorf("%w: %d,%d", apperror.ErrInvalidCell, row, col)
	}

	return that.cells[row][col], nil
}

// Set - writes the player into the cell. Occupancy is the caller's concern.
func (that *Board) Set(row, col int, player *Player) error {
	if !that.InBounds(row, col) {
		return fmt.Errorf("%w: %d,%d", apperror.ErrInvalidCell, row, col)
	}

	that.cells[row][col] = OccupiedCell(player)

	return nil
}

// WinningCombinations - returns every line that wins the game: the main
// diagonal, the anti-diagonal, then row i and column i for each index i.
func (that *Board) WinningCombinations() [][]Coord {
	lines := make([][]Coord, len(that.lines))
	for i, line := range that.lines {
		lines[i] = append([]Coord(nil), line...)
	}

	return lines
}

// WinnerForLine - returns the player holding every cell of the line, or nil.
func (that *Board) WinnerForLine(line []Coord) *Player {
	if len(line) == 0 {
		return nil
	}

	var winner *Player
	for i, coord := range line {
		cell, err := that.Get(coord.Row, coord.Col)
		if err != nil || cell.IsEmpty() {
			return nil
		}

		if i == 0 {
			winner = cell.Player()
			continue
		}

		if cell.Player() != winner {
			return nil
		}
	}

	return winner
}

func (that *Board) HasWinner(player *Player) bool {
	if player == nil {
		return false
	}

	for _, line := range that.lines {
		if that.WinnerForLine(line) == player {
			return true
		}
	}

	return false
}

// Winner - returns the first player found holding a complete line, or nil.
func (that *Board) Winner() *Player {
	for _, line := range that.lines {
		if winner := that.WinnerForLine(line); winner != nil {
			return winner
		}
	}

	return nil
}

func (that *Board) IsFull() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell.IsEmpty() {
				return false
			}
		}
	}

	return true
}

// Marks - returns the board as rows of marks, "" for an empty cell.
func (that *Board) Marks() [][]string {
	marks := make([][]string, that.size)
	for row := range that.cells {
		marks[row] = make([]string, that.size)
		for col, cell := range that.cells[row] {
			if !cell.IsEmpty() {
				marks[row][col] = cell.Player().Mark
			}
		}
	}

	return marks
}

func (that *Board) String() string {
	return that.Render(nil)
}

// Render - draws the grid, passing each occupied mark through style when it
// is not nil. Row separators are as wide as an unstyled row. Printed line r
// holds cells (r, 0..size-1), so the first typed coordinate picks the line.
func (that *Board) Render(style func(*Player) string) string {
	rows := make([]string, that.size)
	for row := range that.cells {
		values := make([]string, that.size)
		for col, cell := range that.cells[row] {
			if cell.IsEmpty() || style == nil {
				values[col] = cell.String()
				continue
			}
			values[col] = style(cell.Player())
		}
		rows[row] = strings.Join(values, cellSeparator)
	}

	width := that.size + len(cellSeparator)*(that.size-1)
	separator := "\n" + strings.Repeat("-", width) + "\n"

	return strings.Join(rows, separator)
}

func winningCombinations(size int) [][]Coord {
	lines := make([][]Coord, 0, 2+2*size)

	diagonal := make([]Coord, size)
	antiDiagonal := make([]Coord, size)
	for i := 0; i < size; i++ {
		diagonal[i] = Coord{Row: i, Col: i}
		antiDiagonal[i] = Coord{Row: i, Col: size - 1 - i}
	}
	lines = append(lines, diagonal, antiDiagonal)

	for i := 0; i < size; i++ {
		row := make([]Coord, size)
		col := make([]Coord, size)
		for j := 0; j < size; j++ {
			row[j] = Coord{Row: i, Col: j}
			col[j] = Coord{Row: j, Col: i}
		}
		lines = append(lines, row, col)
	}

	return lines
}
