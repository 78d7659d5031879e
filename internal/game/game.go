package game

import (
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AviKupinsky/minesweeper/internal/board"
)

// Status is the phase of a game session.
type Status int8

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not started"
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "invalid"
	}
}

// Over reports whether the session has finished, either way.
func (s Status) Over() bool {
	return s == StatusWon || s == StatusLost
}

// FlagAction reports what ToggleFlag did to a square.
type FlagAction int8

const (
	FlagNone FlagAction = iota
	FlagPlaced
	FlagRemoved
)

// MineReveal is one entry of the end-of-game reveal sequence: an
// unflagged mine, or, when Mine is false, a wrongly flagged square.
type MineReveal struct {
	board.Point
	Mine bool
}

// RevealResult describes the effect of one reveal action. Revealed
// lists the squares opened, with wave distances for presentation
// staggering. MineReveals is populated only when the move lost the
// game and orders the remaining mines and wrong flags for display.
type RevealResult struct {
	Revealed    []board.Reveal
	MineReveals []MineReveal
}

// Game wraps one Board with the session state machine: phase, preset
// and timing. All board mutation during play funnels through Reveal,
// ToggleFlag and Reset; the board itself holds no session state.
type Game struct {
	log *logrus.Entry
	rnd *rand.Rand

	board  *board.Board
	size   board.Size
	status Status

	startedAt time.Time
	endedAt   time.Time
}

// New creates a fresh game of the given preset size.
func New(size board.Size, rnd *rand.Rand, log *logrus.Entry) *Game {
	width, height, mines := size.Params()
	return &Game{
		log:   log,
		rnd:   rnd,
		board: board.New(width, height, mines, rnd),
		size:  size,
	}
}

// NewCustom creates a game with explicit board parameters. The
// recorded preset is the matching canonical one, falling back to
// Small for non-canonical triples.
func NewCustom(width, height, mines int, rnd *rand.Rand, log *logrus.Entry) *Game {
	return &Game{
		log:   log,
		rnd:   rnd,
		board: board.New(width, height, mines, rnd),
		size:  board.SizeFromParams(width, height, mines),
	}
}

func (g *Game) Board() *board.Board { return g.board }
func (g *Game) Status() Status      { return g.status }
func (g *Game) Size() board.Size    { return g.size }

// Elapsed is the play time so far, frozen once the game ends. Zero
// before the first reveal.
func (g *Game) Elapsed() time.Duration {
	if g.startedAt.IsZero() {
		return 0
	}
	if g.endedAt.IsZero() {
		return time.Since(g.startedAt)
	}
	return g.endedAt.Sub(g.startedAt)
}

// Reset discards the board and starts over with the given preset.
func (g *Game) Reset(size board.Size) {
	width, height, mines := size.Params()
	g.board = board.New(width, height, mines, g.rnd)
	g.size = size
	g.status = StatusNotStarted
	g.startedAt, g.endedAt = time.Time{}, time.Time{}
	g.log.WithFields(logrus.Fields{
		"size":  size.Label(),
		"mines": mines,
	}).Debug("board reset")
}

// Reveal opens the square at row, col. The first reveal of a session
// places the mines away from it and fixes the numbers, so it is
// always safe. Reveals on flagged or already open squares, out of
// bounds, or after the game is over do nothing.
func (g *Game) Reveal(row, col int) RevealResult {
	if g.status.Over() {
		return RevealResult{}
	}
	if state, ok := g.board.CellState(row, col); !ok || state != board.Covered {
		return RevealResult{}
	}

	if g.status == StatusNotStarted {
		g.startedAt = time.Now()
		g.board.PlaceMinesAvoiding(row, col)
		g.board.CalculateNumbers()
		g.status = StatusRunning
		g.log.WithFields(logrus.Fields{
			"mines": len(g.board.MinePositions()),
			"row":   row,
			"col":   col,
		}).Debug("mines placed")
	}

	var res RevealResult
	switch cell, _ := g.board.Cell(row, col); cell {
	case board.CellMine:
		g.board.UncoverCell(row, col)
		res.Revealed = []board.Reveal{{Row: row, Col: col}}
		res.MineReveals = g.lossReveals(row, col)
		g.finish(StatusLost)
	case board.CellEmpty:
		res.Revealed = g.board.FloodFillWave(row, col)
	default:
		g.board.UncoverCell(row, col)
		res.Revealed = []board.Reveal{{Row: row, Col: col}}
	}

	if g.status == StatusRunning && g.board.Won() {
		g.finish(StatusWon)
	}
	return res
}

// ToggleFlag flags a covered square or clears an existing flag. Open
// squares, out-of-bounds coordinates and finished games are ignored.
func (g *Game) ToggleFlag(row, col int) FlagAction {
	if g.status.Over() {
		return FlagNone
	}
	switch state, ok := g.board.CellState(row, col); {
	case !ok:
		return FlagNone
	case state == board.Covered:
		g.board.FlagCell(row, col)
		return FlagPlaced
	case state == board.Flagged:
		g.board.UnflagCell(row, col)
		return FlagRemoved
	default:
		return FlagNone
	}
}

// FlagCount counts the flags currently on the board.
func (g *Game) FlagCount() int {
	n := 0
	for row := range g.board.Height() {
		for col := range g.board.Width() {
			if state, _ := g.board.CellState(row, col); state == board.Flagged {
				n++
			}
		}
	}
	return n
}

func (g *Game) finish(status Status) {
	g.status = status
	g.endedAt = time.Now()
	g.log.WithFields(logrus.Fields{
		"status":  status.String(),
		"elapsed": g.Elapsed().Round(time.Millisecond).String(),
	}).Info("game over")
}

// lossReveals collects the mines still hidden, except the one just
// hit, plus any wrongly flagged squares. The order is shuffled so
// each loss plays out a different reveal sequence.
func (g *Game) lossReveals(hitRow, hitCol int) []MineReveal {
	var seq []MineReveal
	for p := range g.board.MinePositions() {
		if p.Row == hitRow && p.Col == hitCol {
			continue
		}
		if state, _ := g.board.CellState(p.Row, p.Col); state == board.Flagged {
			continue
		}
		seq = append(seq, MineReveal{Point: p, Mine: true})
	}
	for row := range g.board.Height() {
		for col := range g.board.Width() {
			state, _ := g.board.CellState(row, col)
			cell, _ := g.board.Cell(row, col)
			if state == board.Flagged && cell != board.CellMine {
				seq = append(seq, MineReveal{Point: board.Point{Row: row, Col: col}})
			}
		}
	}
	g.rnd.Shuffle(len(seq), func(i, j int) {
		seq[i], seq[j] = seq[j], seq[i]
	})
	return seq
}
