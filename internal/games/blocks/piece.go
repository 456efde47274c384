package blocks

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindT Kind = iota
	KindI
	KindO
	KindS
	KindZ
	KindJ
	KindL
)

// Kinds lists every tetromino in spawn-table order.
var Kinds = [...]Kind{KindT, KindI, KindO, KindS, KindZ, KindJ, KindL}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindT:
		return "T"
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}

// Color returns the display color used for the falling piece and preview.
func (k Kind) Color() core.Color {
	switch k {
	case KindT:
		return core.ColorMagenta
	case KindI:
		return core.ColorCyan
	case KindO:
		return core.ColorYellow
	case KindS:
		return core.ColorGreen
	case KindZ:
		return core.ColorRed
	case KindJ:
		return core.ColorBlue
	case KindL:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

// Rotation is a rotation direction: +1 clockwise, -1 counterclockwise.
type Rotation int

const (
	Clockwise        Rotation = 1
	CounterClockwise Rotation = -1
)

// Rotation states, drawn row by row inside the bounding box ('#' = occupied).
// These are authored per kind rather than derived by matrix rotation, so the
// pivot of each shape matches the classic feel.
var rotationArt = map[Kind][4][]string{
	KindT: {
		{"...", "###", ".#."},
		{".#.", "##.", ".#."},
		{".#.", "###", "..."},
		{".#.", ".##", ".#."},
	},
	KindI: {
		{"....", "####", "....", "...."},
		{"..#.", "..#.", "..#.", "..#."},
		{"....", "....", "####", "...."},
		{".#..", ".#..", ".#..", ".#.."},
	},
	KindO: {
		{"##", "##"},
		{"##", "##"},
		{"##", "##"},
		{"##", "##"},
	},
	KindS: {
		{".##", "##.", "..."},
		{".#.", ".##", "..#"},
		{"...", ".##", "##."},
		{"#..", "##.", ".#."},
	},
	KindZ: {
		{"##.", ".##", "..."},
		{"..#", ".##", ".#."},
		{"...", "##.", ".##"},
		{".#.", "##.", "#.."},
	},
	KindJ: {
		{"#..", "###", "..."},
		{".##", ".#.", ".#."},
		{"...", "###", "..#"},
		{".#.", ".#.", "##."},
	},
	KindL: {
		{"..#", "###", "..."},
		{".#.", ".#.", ".##"},
		{"...", "###", "#.."},
		{"##.", ".#.", ".#."},
	},
}

// rotationTable holds the occupancy masks indexed by kind then rotation.
// Masks are shared between pieces and must never be written to.
var rotationTable = buildRotationTable(rotationArt)

type shapeMasks struct {
	size  int
	masks [4][]bool
}

func buildRotationTable(art map[Kind][4][]string) map[Kind]shapeMasks {
	table := make(map[Kind]shapeMasks, len(art))
	for kind, states := range art {
		size := len(states[0])
		var sm shapeMasks
		sm.size = size
		for r, rows := range states {
			if len(rows) != size {
				panic(fmt.Sprintf("blocks: kind %v rotation %d has %d rows, want %d", kind, r, len(rows), size))
			}
			mask := make([]bool, size*size)
			for row, line := range rows {
				if len(line) != size {
					panic(fmt.Sprintf("blocks: kind %v rotation %d row %d is %q", kind, r, row, line))
				}
				for col, ch := range line {
					mask[col+row*size] = ch == '#'
				}
			}
			sm.masks[r] = mask
		}
		table[kind] = sm
	}
	return table
}

// Piece is a falling tetromino. X and Y locate the top-left corner of its
// bounding box in board cells. The occupancy mask is always looked up from
// the rotation table, so a piece can never hold an unauthored shape.
type Piece struct {
	X, Y int

	kind     Kind
	rotation int
}

// NewPiece creates a piece of the given kind at the spawn position for a
// board of the given width.
func NewPiece(kind Kind, boardWidth int) Piece {
	return Piece{
		X:    boardWidth/2 - 2,
		Y:    0,
		kind: kind,
	}
}

// Spawn creates a piece of a uniformly random kind at the spawn position.
func Spawn(rng *rand.Rand, boardWidth int) Piece {
	return NewPiece(Kinds[rng.Intn(len(Kinds))], boardWidth)
}

// Kind returns the tetromino variant.
func (p Piece) Kind() Kind {
	return p.kind
}

// Rotation returns the current rotation index in [0, 3].
func (p Piece) Rotation() int {
	return p.rotation
}

// Width returns the bounding box width.
func (p Piece) Width() int {
	return rotationTable[p.kind].size
}

// Height returns the bounding box height.
func (p Piece) Height() int {
	return rotationTable[p.kind].size
}

func (p Piece) mask() []bool {
	return rotationTable[p.kind].masks[p.rotation]
}

// Mask returns a copy of the occupancy mask (index = col + row*Width()).
func (p Piece) Mask() []bool {
	m := p.mask()
	out := make([]bool, len(m))
	copy(out, m)
	return out
}

// Occupied reports whether the bounding-box cell (col, row) is filled.
func (p Piece) Occupied(col, row int) bool {
	w := p.Width()
	if col < 0 || col >= w || row < 0 || row >= p.Height() {
		return false
	}
	return p.mask()[col+row*w]
}

// Cells returns the board coordinates of every occupied cell.
func (p Piece) Cells() []Point {
	w := p.Width()
	cells := make([]Point, 0, 4)
	for i, filled := range p.mask() {
		if filled {
			cells = append(cells, Point{X: p.X + i%w, Y: p.Y + i/w})
		}
	}
	return cells
}

// MinMax returns the lowest and highest occupied column inside the bounding
// box. Used to keep horizontal moves and rotations on the board.
//
//	. # #   <- max column 2
//	# # .   <- min column 0
//	. . .
func (p Piece) MinMax() (int, int) {
	return extent(p.mask(), p.Width())
}

// extent scans a mask for its occupied column range. An empty mask yields
// (width, 0), i.e. min > max.
func extent(mask []bool, width int) (int, int) {
	minCol, maxCol := width, 0
	for i, filled := range mask {
		if !filled {
			continue
		}
		col := i % width
		if col < minCol {
			minCol = col
		}
		if col > maxCol {
			maxCol = col
		}
	}
	return minCol, maxCol
}

// Rotated returns the piece turned one step in dir. It does not consult the
// board; legality is the board's job.
func (p Piece) Rotated(dir Rotation) Piece {
	p.rotation += int(dir)
	if p.rotation < 0 {
		p.rotation += 4
	}
	if p.rotation > 3 {
		p.rotation -= 4
	}
	return p
}

// String renders the mask row by row, for test failure output.
func (p Piece) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v@(%d,%d)r%d\n", p.kind, p.X, p.Y, p.rotation)
	w := p.Width()
	for row, h := 0, p.Height(); row < h; row++ {
		for col := 0; col < w; col++ {
			if p.Occupied(col, row) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Point is a board cell coordinate.
type Point struct {
	X, Y int
}

// Source produces the next piece to enter the board.
type Source interface {
	Next(boardWidth int) Piece
}

// Generator is the random piece source used in play.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded for deterministic sequences.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Next spawns a random piece.
func (g *Generator) Next(boardWidth int) Piece {
	return Spawn(g.rng, boardWidth)
}
