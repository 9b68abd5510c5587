package entity

import "strconv"

const (
	MarkX = "X"
	MarkO = "O"
)

// Player is created once per session and shared by pointer. Two players are
// the same player only if they are the same pointer.
type Player struct {
	Num  int    `json:"num"`
	Mark string `json:"mark"`
}

func NewPlayer(num int, mark string) *Player {
	return &Player{Num: num, Mark: mark}
}

// DefaultPlayers - returns player 1 as X and player 2 as O.
func DefaultPlayers() []*Player {
	return []*Player{NewPlayer(1, MarkX), NewPlayer(2, MarkO)}
}

func (that *Player) String() string {
	return that.Mark
}

func (that *Player) Name() string {
	return "Player " + strconv.Itoa(that.Num)
}
