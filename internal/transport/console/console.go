package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type readResult struct {
	line string
	err  error
}

// Console is the line based terminal the players type into.
type Console struct {
	logger *slog.Logger

	reader *bufio.Reader
	writer io.Writer
	styler *Styler

	startReader sync.Once
	lines       chan readResult
	stopped     chan struct{}

	closeOnce sync.Once
	done      chan struct{}
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, styler *Styler) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		reader: bufio.NewReader(in),
		writer: out,
		styler: styler,
		lines:   make(chan readResult),
		stopped: make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Prompt - prints text without a newline and waits for one line of input.
// Returns apperror.ErrInputClosed once the input is exhausted and the
// context error if ctx ends first.
func (that *Console) Prompt(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("prompt canceled: %w", err)
	}

	select {
	case <-that.done:
		return "", apperror.ErrInputClosed
	default:
	}

	if _, err := io.WriteString(that.writer, text); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	that.startReader.Do(func() {
		go that.readLines()
	})

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("prompt canceled: %w", ctx.Err())
	case <-that.done:
		return "", apperror.ErrInputClosed
	case result, ok := <-that.lines:
		if !ok {
			return "", apperror.ErrInputClosed
		}

		if result.err != nil {
			return "", result.err
		}

		that.logger.Debug("read input", "line", result.line)

		return result.line, nil
	}
}

// Close - stops handing lines to Prompt. A reader blocked on the underlying
// input exits once that read returns.
func (that *Console) Close() {
	that.closeOnce.Do(func() {
		close(that.done)
	})
}

func (that *Console) Println(text string) {
	if _, err := fmt.Fprintln(that.writer, text); err != nil {
		that.logger.Error("failed to write line", "error", err)
	}
}

// PrintBoard - prints the board with styled markers.
func (that *Console) PrintBoard(board *entity.Board) {
	that.Println(board.Render(that.styler.Mark))
}

// readLines - feeds input lines to Prompt one at a time and closes the
// channel when input ends or the console is closed.
func (that *Console) readLines() {
	defer close(that.stopped)
	defer close(that.lines)

	for {
		line, err := that.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			that.send(readResult{err: fmt.Errorf("failed to read input: %w", err)})
			return
		}

		if line != "" && !that.send(readResult{line: strings.TrimRight(line, "\r\n")}) {
			that.logger.Debug("console closed")
			return
		}

		if err != nil {
			that.logger.Debug("input exhausted")
			return
		}
	}
}

func (that *Console) send(result readResult) bool {
	select {
	case that.lines <- result:
		return true
	case <-that.done:
		return false
	}
}
