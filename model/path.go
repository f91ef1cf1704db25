package model

import "math"

const unreached = math.MaxInt32

// PathFinder computes shortest routes over the free cells of a grid.
// Every edge costs 1. It keeps no state between calls.
//
// start and target must be in bounds; behaviour is undefined otherwise.
type PathFinder struct {
	grid *Grid
}

func NewPathFinder(grid *Grid) *PathFinder {
	return &PathFinder{grid: grid}
}

// NextStep returns the cell a mover at start should occupy next to get closer
// to target. It returns start when target is start or cannot be reached.
func (p *PathFinder) NextStep(start, target Cell) Cell {
	prev := p.search(start, target)
	g := p.grid
	s, t := g.index(start), g.index(target)
	if prev[t] < 0 {
		return start
	}
	step := t
	for prev[step] >= 0 && prev[step] != s {
		step = prev[step]
	}
	return g.cellAt(step)
}

// Path returns the route from start to target, start excluded and target
// included. It is empty when target is start or unreachable.
func (p *PathFinder) Path(start, target Cell) []Cell {
	prev := p.search(start, target)
	g := p.grid
	s, t := g.index(start), g.index(target)
	if prev[t] < 0 {
		return nil
	}
	var reversed []Cell
	for step := t; step >= 0 && step != s; step = prev[step] {
		reversed = append(reversed, g.cellAt(step))
	}
	path := make([]Cell, len(reversed))
	for i, c := range reversed {
		path[len(reversed)-1-i] = c
	}
	return path
}

// search runs a uniform cost search from start and returns predecessor
// indexes, -1 where none was recorded. The working set is scanned in index
// order and the first cell with the smallest distance wins, so ties resolve
// the same way on every call. It stops once target is selected.
func (p *PathFinder) search(start, target Cell) []int {
	g := p.grid
	n := g.width * g.height
	dist := make([]int, n)
	prev := make([]int, n)
	open := make([]bool, n)
	for i := 0; i < n; i++ {
		dist[i] = unreached
		prev[i] = -1
		open[i] = !g.blocked[i]
	}
	dist[g.index(start)] = 0
	t := g.index(target)

	for {
		current := -1
		for i := 0; i < n; i++ {
			if open[i] && (current < 0 || dist[i] < dist[current]) {
				current = i
			}
		}
		// everything left is cut off from start
		if current < 0 || dist[current] == unreached || current == t {
			break
		}
		open[current] = false

		for _, next := range g.Neighbors(g.cellAt(current)) {
			j := g.index(next)
			if !open[j] {
				continue
			}
			if alt := dist[current] + 1; alt < dist[j] {
				dist[j] = alt
				prev[j] = current
			}
		}
	}
	return prev
}
