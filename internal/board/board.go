package board

import (
	"math/rand/v2"
	"strings"
)

// Point addresses a square by row and column.
type Point struct {
	Row, Col int
}

// Reveal is one square opened by a flood fill, tagged with its BFS
// distance from the origin. The distance carries no game semantics;
// callers use it to stagger reveal presentation.
type Reveal struct {
	Row, Col, Distance int
}

// Board owns the content grid, the state grid and the mine index for
// one game session. Grids are flat slices indexed row*width+col.
//
// A Board is exclusively owned by a single controller and is not safe
// for concurrent use.
type Board struct {
	width, height, mineCount int

	cells  []Cell
	states []CellState
	mines  map[Point]struct{}
	rnd    *rand.Rand
}

// New allocates a board with every square covered and empty and no
// mines placed yet. Callers must supply positive dimensions.
func New(width, height, mineCount int, rnd *rand.Rand) *Board {
	return &Board{
		width:     width,
		height:    height,
		mineCount: mineCount,
		cells:     make([]Cell, width*height),
		states:    make([]CellState, width*height),
		mines:     make(map[Point]struct{}),
		rnd:       rnd,
	}
}

func (b *Board) Width() int     { return b.width }
func (b *Board) Height() int    { return b.height }
func (b *Board) MineCount() int { return b.mineCount }

func (b *Board) inBounds(row, col int) bool {
	return 0 <= row && row < b.height && 0 <= col && col < b.width
}

func (b *Board) index(row, col int) int {
	return row*b.width + col
}

// Cell returns the content at row, col; ok is false out of bounds.
func (b *Board) Cell(row, col int) (c Cell, ok bool) {
	if !b.inBounds(row, col) {
		return 0, false
	}
	return b.cells[b.index(row, col)], true
}

// CellState returns the state at row, col; ok is false out of bounds.
func (b *Board) CellState(row, col int) (s CellState, ok bool) {
	if !b.inBounds(row, col) {
		return 0, false
	}
	return b.states[b.index(row, col)], true
}

// FlagCell marks the square as flagged. Out-of-bounds coordinates are
// ignored. It does not check the current state: keeping flags off
// uncovered squares is the caller's responsibility.
func (b *Board) FlagCell(row, col int) {
	if b.inBounds(row, col) {
		b.states[b.index(row, col)] = Flagged
	}
}

// UnflagCell reverts a flagged square to covered. No-op on anything
// that is not currently flagged.
func (b *Board) UnflagCell(row, col int) {
	if !b.inBounds(row, col) {
		return
	}
	if i := b.index(row, col); b.states[i] == Flagged {
		b.states[i] = Covered
	}
}

// UncoverCell opens the square unconditionally, flagged or not. This
// is a low-level primitive: it does not cascade and does not look at
// content or prior state.
func (b *Board) UncoverCell(row, col int) {
	if b.inBounds(row, col) {
		b.states[b.index(row, col)] = Uncovered
	}
}

// Neighbors returns the in-bounds squares among the up to 8
// surrounding row, col. Shared by number calculation and flood fill.
func (b *Board) Neighbors(row, col int) []Point {
	ps := make([]Point, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if b.inBounds(row+dr, col+dc) {
				ps = append(ps, Point{row + dr, col + dc})
			}
		}
	}
	return ps
}

// MinePositions is a read-only view of the mine index. Callers must
// not modify the returned map.
func (b *Board) MinePositions() map[Point]struct{} {
	return b.mines
}

// PlaceMinesAvoiding seeds the board with mines, keeping the avoided
// square and its neighbors clear so the first click never hits or
// touches a mine. Call once per game, on the first reveal. Boards too
// small to fit the requested count outside the exclusion zone get
// fewer mines. Re-invocation clears the mine index first.
func (b *Board) PlaceMinesAvoiding(avoidRow, avoidCol int) {
	candidates := make([]Point, 0, b.width*b.height)
	for row := range b.height {
		for col := range b.width {
			if absDiff(row, avoidRow) <= 1 && absDiff(col, avoidCol) <= 1 {
				continue
			}
			candidates = append(candidates, Point{row, col})
		}
	}

	b.rnd.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	clear(b.mines)
	for _, p := range candidates[:min(b.mineCount, len(candidates))] {
		b.cells[b.index(p.Row, p.Col)] = CellMine
		b.mines[p] = struct{}{}
	}
}

// CalculateNumbers fixes the adjacent-mine count of every non-mine
// square. Run once, right after mine placement.
func (b *Board) CalculateNumbers() {
	for row := range b.height {
		for col := range b.width {
			if b.cells[b.index(row, col)] == CellMine {
				continue
			}
			n := 0
			for _, p := range b.Neighbors(row, col) {
				if b.cells[b.index(p.Row, p.Col)] == CellMine {
					n++
				}
			}
			b.cells[b.index(row, col)] = Cell(n)
		}
	}
}

// FloodFillWave opens the square at row, col and, when it is empty,
// every connected empty square plus the numbered fringe around the
// region. Returns the opened squares in BFS order with their wave
// distance from the origin; invoked on a numbered square it
// degenerates to opening that square alone. Flagged squares never
// open and block propagation.
func (b *Board) FloodFillWave(row, col int) []Reveal {
	if !b.inBounds(row, col) {
		return nil
	}

	var (
		revealed []Reveal
		queue    = []Reveal{{Row: row, Col: col, Distance: 0}}
		visited  = make([]bool, len(b.cells))
	)
	visited[b.index(row, col)] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		i := b.index(cur.Row, cur.Col)
		if b.states[i] == Uncovered {
			// visited already prevents duplicate enqueues; this also
			// covers any enqueue path that skips the visited mark
			continue
		}
		b.states[i] = Uncovered
		revealed = append(revealed, cur)

		if b.cells[i] != CellEmpty {
			continue
		}
		for _, p := range b.Neighbors(cur.Row, cur.Col) {
			j := b.index(p.Row, p.Col)
			if !visited[j] && b.states[j] == Covered {
				queue = append(queue, Reveal{
					Row: p.Row, Col: p.Col, Distance: cur.Distance + 1,
				})
				visited[j] = true
			}
		}
	}
	return revealed
}

// Won reports whether every non-mine square has been uncovered.
func (b *Board) Won() bool {
	for i, c := range b.cells {
		if c != CellMine && b.states[i] != Uncovered {
			return false
		}
	}
	return true
}

// String renders the player-visible grid, one row per line. Covered
// squares print as "#", flags as "F", open squares by content.
func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.height {
		for col := range b.width {
			i := b.index(row, col)
			switch b.states[i] {
			case Flagged:
				sb.WriteString("F ")
			case Uncovered:
				sb.WriteString(b.cells[i].String() + " ")
			default:
				sb.WriteString("# ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
