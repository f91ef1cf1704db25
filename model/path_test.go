package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// distances is a plain breadth first search used to check the finder.
func distances(g *Grid, from Cell) map[Cell]int {
	dist := map[Cell]int{from: 0}
	queue := []Cell{from}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(c) {
			if _, seen := dist[n]; !seen {
				dist[n] = dist[c] + 1
				queue = append(queue, n)
			}
		}
	}
	return dist
}

func TestNextStep(t *testing.T) {
	tests := []struct {
		name          string
		layout        string
		start, target Cell
		want          Cell
	}{
		{
			name:   "open row",
			layout: "...\n...\n...\n",
			start:  Cell{X: 0, Y: 0},
			target: Cell{X: 2, Y: 0},
			want:   Cell{X: 1, Y: 0},
		},
		{
			name:   "same cell",
			layout: "...\n...\n...\n",
			start:  Cell{X: 1, Y: 1},
			target: Cell{X: 1, Y: 1},
			want:   Cell{X: 1, Y: 1},
		},
		{
			name:   "direct neighbor",
			layout: "...\n...\n...\n",
			start:  Cell{X: 1, Y: 1},
			target: Cell{X: 1, Y: 0},
			want:   Cell{X: 1, Y: 0},
		},
		{
			name:   "full wall",
			layout: ".#.\n.#.\n.#.\n",
			start:  Cell{X: 0, Y: 0},
			target: Cell{X: 2, Y: 2},
			want:   Cell{X: 0, Y: 0},
		},
		{
			name:   "isolated target",
			layout: "....\n..#.\n.#.#\n..#.\n",
			start:  Cell{X: 0, Y: 0},
			target: Cell{X: 2, Y: 2},
			want:   Cell{X: 0, Y: 0},
		},
		{
			// both (0,1) and (1,0) start a shortest path, scan order picks (0,1)
			name:   "tie goes to lower column",
			layout: "...\n...\n...\n",
			start:  Cell{X: 0, Y: 0},
			target: Cell{X: 1, Y: 1},
			want:   Cell{X: 0, Y: 1},
		},
		{
			name:   "detour around obstacle",
			layout: ".....\n.###.\n.#...\n",
			start:  Cell{X: 2, Y: 2},
			target: Cell{X: 2, Y: 0},
			want:   Cell{X: 3, Y: 2},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			finder := NewPathFinder(mustParse(t, tc.layout))
			assert.Equal(t, tc.want, finder.NextStep(tc.start, tc.target))
		})
	}
}

func TestPath(t *testing.T) {
	g := mustParse(t, ".....\n.###.\n.#...\n")
	finder := NewPathFinder(g)

	path := finder.Path(Cell{X: 2, Y: 2}, Cell{X: 2, Y: 0})
	assert.Equal(t, []Cell{
		{X: 3, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 1}, {X: 4, Y: 0}, {X: 3, Y: 0}, {X: 2, Y: 0},
	}, path)

	assert.Empty(t, finder.Path(Cell{X: 0, Y: 0}, Cell{X: 0, Y: 0}))

	walled := NewPathFinder(mustParse(t, ".#.\n"))
	assert.Empty(t, walled.Path(Cell{X: 0, Y: 0}, Cell{X: 2, Y: 0}))
}

func TestNextStepFollowsShortestPaths(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for round := 0; round < 5; round++ {
		g, err := NewGrid(8, 6)
		require.NoError(t, err)
		g.Initialize(14, rnd)
		finder := NewPathFinder(g)

		var free []Cell
		for x := 0; x < g.Width(); x++ {
			for y := 0; y < g.Height(); y++ {
				if c := (Cell{X: x, Y: y}); !g.IsBlocked(c) {
					free = append(free, c)
				}
			}
		}

		for _, target := range free {
			toTarget := distances(g, target)
			for _, start := range free {
				next := finder.NextStep(start, target)
				d, reachable := toTarget[start]
				if !reachable || start == target {
					require.Equal(t, start, next, "grid:\n%s start %v target %v", g, start, target)
					continue
				}
				require.Contains(t, g.Neighbors(start), next, "grid:\n%s start %v target %v", g, start, target)
				require.Equal(t, d-1, toTarget[next], "grid:\n%s start %v target %v", g, start, target)
				require.Len(t, finder.Path(start, target), d)
				require.Equal(t, next, finder.NextStep(start, target), "same query must give same answer")
			}
		}
	}
}
