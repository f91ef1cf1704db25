package model

import (
	"errors"
	"strings"
)

var ErrBadGrid = errors.New("invalid grid dimensions")

// Rand is the random source used for obstacle and actor placement.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Grid knows which cells are traversable. Cells are stored column by column,
// index x*height+y, which is also the scan order of the path search.
type Grid struct {
	width, height int
	blocked       []bool
}

func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadGrid
	}
	return &Grid{
		width:   width,
		height:  height,
		blocked: make([]bool, width*height),
	}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Initialize clears the grid and blocks obstacles random cells. Samples may
// repeat, so fewer than obstacles cells can end up blocked.
func (g *Grid) Initialize(obstacles int, rnd Rand) {
	g.Clear()
	for i := 0; i < obstacles; i++ {
		x := rnd.Intn(g.width)
		y := rnd.Intn(g.height)
		g.blocked[g.index(Cell{X: x, Y: y})] = true
	}
}

func (g *Grid) Clear() {
	for i := range g.blocked {
		g.blocked[i] = false
	}
}

// Block marks c as an obstacle. c must be in bounds.
func (g *Grid) Block(c Cell) {
	g.blocked[g.index(c)] = true
}

func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// IsBlocked is undefined for out of bounds cells; callers check InBounds first.
func (g *Grid) IsBlocked(c Cell) bool {
	return g.blocked[g.index(c)]
}

// Free reports whether c is inside the grid and not blocked.
func (g *Grid) Free(c Cell) bool {
	return g.InBounds(c) && !g.blocked[g.index(c)]
}

var neighborOrder = [4]Direction{LEFT, RIGHT, UP, DOWN}

// Neighbors returns the free orthogonal neighbors of c in the fixed order
// left, right, up, down. The order decides ties in the path search.
func (g *Grid) Neighbors(c Cell) []Cell {
	result := make([]Cell, 0, 4)
	for _, d := range neighborOrder {
		n := c.Add(d)
		if g.Free(n) {
			result = append(result, n)
		}
	}
	return result
}

// BlockedCells lists obstacles in scan order.
func (g *Grid) BlockedCells() []Cell {
	var cells []Cell
	for i, b := range g.blocked {
		if b {
			cells = append(cells, g.cellAt(i))
		}
	}
	return cells
}

func (g *Grid) FreeCount() int {
	n := 0
	for _, b := range g.blocked {
		if !b {
			n++
		}
	}
	return n
}

// CopyFrom replaces the layout with src's. Both grids must have equal size.
func (g *Grid) CopyFrom(src *Grid) {
	copy(g.blocked, src.blocked)
}

func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, blocked: make([]bool, len(g.blocked))}
	copy(c.blocked, g.blocked)
	return c
}

func (g *Grid) index(c Cell) int {
	return c.X*g.height + c.Y
}

func (g *Grid) cellAt(i int) Cell {
	return Cell{X: i / g.height, Y: i % g.height}
}

// String draws the grid one row per line, '#' for obstacles and '.' otherwise.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.blocked[g.index(Cell{X: x, Y: y})] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
