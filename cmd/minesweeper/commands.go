package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/AviKupinsky/minesweeper/internal/board"
	"github.com/AviKupinsky/minesweeper/internal/game"
)

var errQuit = errors.New("quit")

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"o": 2, // open row col
	"f": 2, // toggle flag on row col
	"n": 0, // new game, same preset
	"s": 1, // switch preset and start over
	"q": 0, // quit
}

func parseRowCol(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

func executeCommand(g *game.Game, c string) error {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return nil
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "o":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return err
		}
		reportReveal(g, g.Reveal(row, col))
	case "f":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return err
		}
		g.ToggleFlag(row, col)
	case "n":
		g.Reset(g.Size())
	case "s":
		size, err := board.ParseSize(parts[1])
		if err != nil {
			return err
		}
		g.Reset(size)
	case "q":
		return errQuit
	}
	return nil
}

// reportReveal applies the end-of-game reveal sequence to the board
// so the final print shows every mine, and calls out wrong flags.
func reportReveal(g *game.Game, res game.RevealResult) {
	if len(res.MineReveals) == 0 {
		return
	}
	fmt.Println("boom!")
	for _, m := range res.MineReveals {
		if m.Mine {
			g.Board().UncoverCell(m.Row, m.Col)
		} else {
			fmt.Printf("wrong flag at %d %d\n", m.Row, m.Col)
		}
	}
}
