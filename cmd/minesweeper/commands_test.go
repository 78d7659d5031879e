package main

import (
	"io"
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AviKupinsky/minesweeper/internal/board"
	"github.com/AviKupinsky/minesweeper/internal/game"
)

func testGame() *game.Game {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return game.New(
		board.SizeSmall,
		rand.New(rand.NewPCG(1, 2)),
		l.WithField("component", "game"),
	)
}

func TestExecuteCommandOpen(t *testing.T) {
	g := testGame()

	require.NoError(t, executeCommand(g, "o 4 4"))

	assert.NotEqual(t, game.StatusNotStarted, g.Status())
	assert.NotEqual(t, game.StatusLost, g.Status())
	state, _ := g.Board().CellState(4, 4)
	assert.Equal(t, board.Uncovered, state)
}

func TestExecuteCommandFlag(t *testing.T) {
	g := testGame()

	require.NoError(t, executeCommand(g, "f 0 0"))
	state, _ := g.Board().CellState(0, 0)
	assert.Equal(t, board.Flagged, state)

	require.NoError(t, executeCommand(g, "f 0 0"))
	state, _ = g.Board().CellState(0, 0)
	assert.Equal(t, board.Covered, state)
}

func TestExecuteCommandNewGame(t *testing.T) {
	g := testGame()
	require.NoError(t, executeCommand(g, "o 4 4"))

	require.NoError(t, executeCommand(g, "n"))

	assert.Equal(t, game.StatusNotStarted, g.Status())
	assert.Equal(t, board.SizeSmall, g.Size())
}

func TestExecuteCommandSwitchSize(t *testing.T) {
	g := testGame()

	require.NoError(t, executeCommand(g, "s large"))
	assert.Equal(t, board.SizeLarge, g.Size())
	assert.Equal(t, 24, g.Board().Width())

	assert.Error(t, executeCommand(g, "s gigantic"))
}

func TestExecuteCommandQuit(t *testing.T) {
	assert.ErrorIs(t, executeCommand(testGame(), "q"), errQuit)
}

func TestExecuteCommandRejectsGarbage(t *testing.T) {
	g := testGame()

	assert.NoError(t, executeCommand(g, ""))
	assert.Error(t, executeCommand(g, "x"))
	assert.Error(t, executeCommand(g, "o 1"))
	assert.Error(t, executeCommand(g, "o 1 2 3"))
	assert.Error(t, executeCommand(g, "o one two"))
	assert.Error(t, executeCommand(g, "f 1 two"))

	// failed commands must not touch the game
	assert.Equal(t, game.StatusNotStarted, g.Status())
}
