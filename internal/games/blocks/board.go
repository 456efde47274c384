package blocks

import (
	"errors"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// DefaultScoreUnit is the score for a single cleared line.
// A clear of n lines scores n*n*unit.
const DefaultScoreUnit = 10

// ErrSpawnBlocked is returned by AdvanceGravity when a freshly spawned piece
// cannot occupy its spawn position. It ends the game.
var ErrSpawnBlocked = errors.New("blocks: spawn blocked")

// Outcome tells the driver what a gravity step did to the falling piece.
type Outcome int

const (
	// Falling means the piece moved down one row.
	Falling Outcome = iota
	// Locked means the piece was baked into the grid. The driver promotes its
	// queued piece to current and queues the one carried in Gravity.Piece.
	Locked
)

func (o Outcome) String() string {
	if o == Locked {
		return "locked"
	}
	return "falling"
}

// Gravity is the result of one gravity step.
type Gravity struct {
	Outcome Outcome
	Piece   Piece // moved piece when Falling, newly spawned piece when Locked
	Score   int   // score earned by rows cleared on lock
	Lines   int   // rows cleared on lock
}

// Board is the play field. Row 0 is the top; pieces spawn there and fall
// toward increasing y. The falling piece is drawn into the grid while it is
// on screen, so every mutating operation erases it first and draws it back.
type Board struct {
	width     int
	height    int
	cells     []bool // index x + y*width
	scoreUnit int
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	return &Board{
		width:     width,
		height:    height,
		cells:     make([]bool, width*height),
		scoreUnit: DefaultScoreUnit,
	}
}

// SetScoreUnit changes the single-line score used by ClearFullRows.
func (b *Board) SetScoreUnit(unit int) {
	b.scoreUnit = unit
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Filled reports whether cell (x, y) is occupied. Out-of-range cells are empty.
func (b *Board) Filled(x, y int) bool {
	if !b.bounds().Contains(x, y) {
		return false
	}
	return b.cells[x+y*b.width]
}

// Rows returns a copy of the grid as rows of columns.
func (b *Board) Rows() [][]bool {
	rows := make([][]bool, b.height)
	for y := range rows {
		rows[y] = make([]bool, b.width)
		copy(rows[y], b.cells[y*b.width:(y+1)*b.width])
	}
	return rows
}

func (b *Board) bounds() core.Rect {
	return core.NewRect(0, 0, b.width, b.height)
}

func (b *Board) set(x, y int, v bool) {
	if b.bounds().Contains(x, y) {
		b.cells[x+y*b.width] = v
	}
}

// Place marks every cell of the piece as occupied. It never clears a cell.
func (b *Board) Place(p Piece) {
	for _, c := range p.Cells() {
		b.set(c.X, c.Y, true)
	}
}

// Erase clears every cell the piece covers.
func (b *Board) Erase(p Piece) {
	for _, c := range p.Cells() {
		b.set(c.X, c.Y, false)
	}
}

// CanPlace reports whether every cell of the piece lies on the board and
// over an empty cell.
func (b *Board) CanPlace(p Piece) bool {
	bounds := b.bounds()
	for _, c := range p.Cells() {
		if !bounds.Contains(c.X, c.Y) {
			return false
		}
		if b.cells[c.X+c.Y*b.width] {
			return false
		}
	}
	return true
}

// FullRows returns the indices of rows whose every column is occupied, in
// ascending order.
func (b *Board) FullRows() []int {
	var rows []int
	for y := 0; y < b.height; y++ {
		full := true
		for x := 0; x < b.width; x++ {
			if !b.cells[x+y*b.width] {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearRow removes the row. Every row above it drops by one and the top row
// becomes empty.
func (b *Board) ClearRow(row int) {
	if row < 0 || row >= b.height {
		return
	}
	for y := row; y > 0; y-- {
		copy(b.cells[y*b.width:(y+1)*b.width], b.cells[(y-1)*b.width:y*b.width])
	}
	clear(b.cells[:b.width])
}

// ClearFullRows clears every full row and returns the score earned and the
// number of rows removed.
func (b *Board) ClearFullRows() (score, lines int) {
	rows := b.FullRows()
	// Ascending order is safe: clearing a row only shifts rows above it.
	for _, row := range rows {
		b.ClearRow(row)
	}
	lines = len(rows)
	return lines * lines * b.scoreUnit, lines
}

// stage takes the piece off the grid, builds a candidate from it and commits
// the candidate when it is legal. Otherwise the original piece is drawn back.
// Returns the piece now on the grid and whether the candidate was taken.
func (b *Board) stage(p Piece, candidate func(Piece) (Piece, bool)) (Piece, bool) {
	b.Erase(p)
	next, ok := candidate(p)
	if ok && b.CanPlace(next) {
		b.Place(next)
		return next, true
	}
	b.Place(p)
	return p, false
}

// AdvanceGravity moves the piece down one row. When it cannot fall it is
// locked in place, full rows are cleared and a new piece is drawn from src.
// Returns ErrSpawnBlocked if that new piece has nowhere to go.
func (b *Board) AdvanceGravity(p Piece, src Source) (Gravity, error) {
	moved, ok := b.stage(p, func(p Piece) (Piece, bool) {
		p.Y++
		return p, true
	})
	if ok {
		return Gravity{Outcome: Falling, Piece: moved}, nil
	}

	// p is back on the grid at its old position and stays there.
	score, lines := b.ClearFullRows()

	spawned := src.Next(b.width)
	if !b.CanPlace(spawned) {
		return Gravity{Outcome: Locked, Score: score, Lines: lines}, ErrSpawnBlocked
	}
	return Gravity{
		Outcome: Locked,
		Piece:   spawned,
		Score:   score,
		Lines:   lines,
	}, nil
}

// Rotate turns the piece one step in dir if the result stays inside the side
// walls and does not collide. A rejected rotation returns p unchanged.
func (b *Board) Rotate(p Piece, dir Rotation) Piece {
	out, _ := b.stage(p, func(p Piece) (Piece, bool) {
		r := p.Rotated(dir)
		lo, hi := r.MinMax()
		if r.X+lo < 0 || r.X+hi > b.width-1 {
			return r, false
		}
		return r, true
	})
	return out
}

// MoveHorizontal shifts the piece by delta columns. A shift past a side wall
// is clamped to the wall; a shift into occupied cells returns p unchanged.
func (b *Board) MoveHorizontal(p Piece, delta int) Piece {
	out, _ := b.stage(p, func(p Piece) (Piece, bool) {
		lo, hi := p.MinMax()
		p.X = core.Clamp(p.X+delta, -lo, b.width-1-hi)
		return p, true
	})
	return out
}

// String draws the grid with '#' for occupied cells, for test output.
func (b *Board) String() string {
	buf := make([]byte, 0, (b.width+1)*b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.cells[x+y*b.width] {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
