package main

import (
	"bufio"
	"fmt"
	"io"
	"othello/display"
	"othello/engine"
	"othello/game"
	"strings"

	"github.com/pkg/errors"
)

// repl reads one command per line and drives a session until exit or end of input.
type repl struct {
	session *engine.Session
	in      *bufio.Scanner
	out     io.Writer
	auto    bool // the engine replies after every human move
}

func newREPL(session *engine.Session, in *bufio.Scanner, out io.Writer) *repl {
	return &repl{session: session, in: in, out: out}
}

func (r *repl) run() error {
	if !r.newGame() {
		return nil
	}
	for {
		display.Prompt(r.out)
		if !r.in.Scan() {
			return r.in.Err()
		}
		fields := strings.Fields(r.in.Text())
		if len(fields) == 0 {
			display.Help(r.out)
			continue
		}
		if !r.handle(fields[0]) {
			return nil
		}
	}
}

// handle runs one command and reports whether to keep reading.
func (r *repl) handle(command string) bool {
	switch command {
	case "exit", "quit":
		return false
	case "help":
		display.Help(r.out)
	case "new":
		return r.newGame()
	case "ai":
		r.aiMove()
	case "auto":
		r.auto = !r.auto
		fmt.Fprintf(r.out, "AI replies %s\n", onOff(r.auto))
	case "best":
		display.Best(r.out, r.session.CurrentBoard())
	default:
		r.play(command)
	}
	return true
}

func (r *repl) newGame() bool {
	b, err := r.session.NewGame()
	if err != nil {
		display.Error(r.out, err)
		return false
	}
	display.Board(r.out, b)
	return true
}

func (r *repl) play(token string) {
	b, err := r.session.ApplyMove(token)
	switch {
	case errors.Is(err, game.ErrMalformedMove):
		display.BadCommand(r.out)
		return
	case err != nil:
		display.Error(r.out, err)
		return
	}
	display.Board(r.out, b)

	if r.auto && !b.Terminal() {
		r.aiMove()
	}
}

func (r *repl) aiMove() {
	turn := r.session.CurrentBoard().Turn()
	move, b, err := r.session.AIMove()
	if err != nil {
		display.Error(r.out, err)
		return
	}
	display.AIMove(r.out, turn, move)
	display.Board(r.out, b)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
