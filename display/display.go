package display

import (
	"fmt"
	"io"
	"othello/game"
	"strings"
)

var graphics = map[game.Square]string{
	game.Empty:   "*",
	game.Player1: "B",
	game.Player2: "W",
}

// Board writes the grid with column letters and row labels, then the disc counts and either the
// side to move with its legal moves or the result.
func Board(w io.Writer, b *game.Board) error {
	var sb strings.Builder

	sb.WriteString(" ")
	for x := 0; x < b.Size(); x++ {
		sb.WriteString("  " + string(game.MoveAt(x, 0)[0]))
	}
	sb.WriteString("\n\n")

	for y := 0; y < b.Size(); y++ {
		fmt.Fprintf(&sb, "%-3c", game.MoveAt(0, y)[1])
		for x := 0; x < b.Size(); x++ {
			sb.WriteString(graphics[b.At(x, y)] + "  ")
		}
		sb.WriteString("\n\n")
	}

	counts := b.Counts()
	fmt.Fprintf(&sb, "B:%d, W:%d", counts[game.Player1], counts[game.Player2])
	if b.Terminal() {
		fmt.Fprintf(&sb, ", game over, %s\n", result(b.Winner()))
	} else {
		fmt.Fprintf(&sb, ", %s to play\n", graphics[b.Turn()])
		fmt.Fprintf(&sb, "Legal moves: %s\n", moves(b.LegalMoves()))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func result(winner game.Square) string {
	if winner == game.Empty {
		return "draw"
	}
	return graphics[winner] + " wins"
}

func moves(ms []game.Move) string {
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = string(m)
	}
	return strings.Join(names, " ")
}

func AIMove(w io.Writer, turn game.Square, move game.Move) {
	fmt.Fprintf(w, "AI played %s for %s\n", move, graphics[turn])
}

// Best shows what each personality would play in the current position.
func Best(w io.Writer, b *game.Board) {
	values, ok := b.Values()
	if !ok {
		fmt.Fprintln(w, "Position not searched yet")
		return
	}
	best := b.BestMoves()
	for _, p := range []game.Personality{game.First, game.Second} {
		move := string(best[p])
		if move == "" {
			move = "-"
		}
		fmt.Fprintf(w, "%s: %s (%d)\n", p, move, values[p])
	}
	fmt.Fprintf(w, "searched %d plies\n", b.SearchedDepth())
}

func Help(w io.Writer) {
	fmt.Fprint(w, `Commands:
  <move>  play a move, column letter then row, e.g. d3
  pass    pass when no other move is legal
  ai      let the engine play for the side to move
  auto    toggle the engine replying after each of your moves
  best    show the move each personality prefers
  new     start a new game
  help    show this help
  exit    quit
`)
}

func BadCommand(w io.Writer) {
	fmt.Fprintln(w, "Bad command. Enter 'help' for help or 'exit' to exit.")
}

func Error(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}

func Prompt(w io.Writer) {
	fmt.Fprint(w, ">> ")
}
