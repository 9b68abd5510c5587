package console

import (
	"io"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// ANSI colors handed out to players in turn order.
var markColors = []string{"9", "12", "10", "11"}

type Styler struct {
	output *termenv.Output
}

// NewStyler - colors markers when color is true and out is a color terminal.
// Otherwise markers are printed as plain text.
func NewStyler(out io.Writer, color bool) *Styler {
	if !color {
		return &Styler{output: termenv.NewOutput(out, termenv.WithProfile(termenv.Ascii))}
	}

	return &Styler{output: termenv.NewOutput(out)}
}

func (that *Styler) Mark(player *entity.Player) string {
	idx := (player.Num - 1) % len(markColors)
	if idx < 0 {
		idx += len(markColors)
	}
	color := that.output.Color(markColors[idx])

	return that.output.String(player.Mark).Foreground(color).Bold().String()
}
