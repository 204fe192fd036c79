package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	colorX = "1" // red
	colorO = "4" // blue

	rowSeparator = "---+---+---"
)

var ErrMalformedInput = errors.New("expected input in the form: <row> <col>")

type Console struct {
	in  *bufio.Scanner
	out *termenv.Output
}

// New - creates a console over in and out. Colors follow the terminal's
// capabilities when colored is set and are stripped otherwise.
func New(in io.Reader, out io.Writer, colored bool) *Console {
	var output *termenv.Output
	if colored {
		output = termenv.NewOutput(out)
	} else {
		output = termenv.NewOutput(out, termenv.WithProfile(termenv.Ascii))
	}

	return &Console{
		in:  bufio.NewScanner(in),
		out: output,
	}
}

// RenderBoard - prints the board, one row per line.
func (that *Console) RenderBoard(board entity.Board) {
	for i, row := range board {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, " "+that.cell(cell)+" ")
		}

		fmt.Fprintln(that.out, strings.Join(cells, "|"))

		if i < len(board)-1 {
			fmt.Fprintln(that.out, rowSeparator)
		}
	}

	fmt.Fprintln(that.out)
}

func (that *Console) cell(cell entity.Cell) string {
	mark, ok := cell.Mark()
	if !ok {
		return "."
	}

	return that.mark(mark)
}

func (that *Console) mark(mark entity.Mark) string {
	color := colorX
	if mark == entity.PlayerO {
		color = colorO
	}

	return that.out.String(string(mark)).Foreground(that.out.Color(color)).Bold().String()
}

// ReadAction - reads one "<row> <col>" line.
func (that *Console) ReadAction() (entity.Action, error) {
	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return entity.Action{}, fmt.Errorf("failed to read input: %w", err)
		}
		return entity.Action{}, io.EOF
	}

	fields := strings.Fields(that.in.Text())
	if len(fields) != 2 {
		return entity.Action{}, fmt.Errorf("%w: got %q", ErrMalformedInput, that.in.Text())
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Action{}, fmt.Errorf("%w: row %q", ErrMalformedInput, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Action{}, fmt.Errorf("%w: col %q", ErrMalformedInput, fields[1])
	}

	return entity.Action{Row: row, Col: col}, nil
}

// AnnounceSides - tells the human which mark they play against the bot.
func (that *Console) AnnounceSides(human entity.Mark) {
	fmt.Fprintf(that.out, "You play %s, the bot plays %s\n", that.mark(human), that.mark(human.Opponent()))
}

func (that *Console) Prompt(mark entity.Mark) {
	fmt.Fprintf(that.out, "Your turn (%s), enter row and column: ", that.mark(mark))
}

func (that *Console) AnnounceBotMove(mark entity.Mark, action entity.Action) {
	fmt.Fprintf(that.out, "Bot (%s) plays %s\n", that.mark(mark), action)
}

func (that *Console) AnnounceResult(game *entity.Game) {
	if game.Winner == nil {
		fmt.Fprintln(that.out, "Game over: tie")
		return
	}

	fmt.Fprintf(that.out, "Game over: %s wins\n", that.mark(*game.Winner))
}

func (that *Console) ReportError(err error) {
	fmt.Fprintf(that.out, "Error: %v\n", err)
}
