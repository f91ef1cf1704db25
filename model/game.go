package model

import (
	"errors"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/runordye/config"
)

var ErrNoFreeCell = errors.New("no free cell left for placement")

// Game owns the player, the pursuers and the grid they move on.
// It is not safe for concurrent use; one goroutine drives a game.
type Game struct {
	State    Status
	Grid     *Grid
	Player   Cell
	Pursuers []Cell
	Turns    int

	layout      *Grid
	finder      *PathFinder
	rnd         Rand
	obstacles   int
	pursuers    int
	maxAttempts int
}

// NewGame creates a game with random obstacles and places all actors.
func NewGame(cfg config.Config, rnd Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return newGame(cfg, grid, nil, rnd)
}

// NewGameWithLayout creates a game on a fixed obstacle layout. Restarts keep
// the layout and only place the actors again. Grid size comes from layout.
func NewGameWithLayout(cfg config.Config, layout *Grid, rnd Rand) (*Game, error) {
	cfg.Width, cfg.Height = layout.Width(), layout.Height()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGame(cfg, layout.Clone(), layout.Clone(), rnd)
}

func newGame(cfg config.Config, grid, layout *Grid, rnd Rand) (*Game, error) {
	g := &Game{
		Grid:        grid,
		layout:      layout,
		finder:      NewPathFinder(grid),
		rnd:         rnd,
		obstacles:   cfg.Obstacles,
		pursuers:    cfg.Pursuers,
		maxAttempts: cfg.MaxPlacementAttempts,
	}
	if err := g.Initialize(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) Finder() *PathFinder {
	return g.finder
}

// Initialize regenerates obstacles, puts the player and every pursuer on
// distinct free cells and clears the game over state.
func (g *Game) Initialize() error {
	if g.layout != nil {
		g.Grid.CopyFrom(g.layout)
	} else {
		g.Grid.Initialize(g.obstacles, g.rnd)
	}

	player, err := g.place(func(Cell) bool { return false })
	if err != nil {
		return err
	}
	pursuers := make([]Cell, 0, g.pursuers)
	for i := 0; i < g.pursuers; i++ {
		p, err := g.place(func(c Cell) bool {
			if c == player {
				return true
			}
			for _, other := range pursuers {
				if c == other {
					return true
				}
			}
			return false
		})
		if err != nil {
			return err
		}
		pursuers = append(pursuers, p)
	}

	g.Player = player
	g.Pursuers = pursuers
	g.State = PLAYING
	g.Turns = 0
	log.WithFields(log.Fields{
		"player":    player,
		"pursuers":  pursuers,
		"obstacles": len(g.Grid.BlockedCells()),
	}).Debug("game initialized")
	return nil
}

// place draws random cells until one is free and not taken. After
// maxAttempts draws it takes the first eligible cell in scan order.
func (g *Game) place(taken func(Cell) bool) (Cell, error) {
	grid := g.Grid
	for i := 0; i < g.maxAttempts; i++ {
		c := Cell{X: g.rnd.Intn(grid.width), Y: g.rnd.Intn(grid.height)}
		if !grid.IsBlocked(c) && !taken(c) {
			return c, nil
		}
	}
	for i, b := range grid.blocked {
		if c := grid.cellAt(i); !b && !taken(c) {
			log.Warnf("placement fell back to scan after %d attempts", g.maxAttempts)
			return c, nil
		}
	}
	return Cell{}, ErrNoFreeCell
}

// ApplyPlayerIntent moves the player one cell. Moves into walls or off the
// grid are dropped. In GAME_OVER only RESTART does anything.
func (g *Game) ApplyPlayerIntent(i Intent) error {
	if g.State == GAME_OVER {
		if i == RESTART {
			log.Info("restart")
			return g.Initialize()
		}
		return nil
	}
	d, ok := i.Direction()
	if !ok {
		return nil
	}
	if next := g.Player.Add(d); g.Grid.Free(next) {
		g.Player = next
	}
	return nil
}

// AdvancePursuers moves every pursuer one step toward the player, in order.
// Pursuers ignore each other and may share a cell.
func (g *Game) AdvancePursuers() {
	for i, p := range g.Pursuers {
		g.Pursuers[i] = g.finder.NextStep(p, g.Player)
	}
}

// CheckCollision switches to GAME_OVER when a pursuer stands on the player.
// It never switches back.
func (g *Game) CheckCollision() bool {
	for _, p := range g.Pursuers {
		if p == g.Player {
			if g.State != GAME_OVER {
				log.WithField("turn", g.Turns).Info("game over")
			}
			g.State = GAME_OVER
			break
		}
	}
	return g.State == GAME_OVER
}

// Turn runs one full turn for a move intent: player move, pursuer moves,
// collision check. Other intents while playing are ignored. After the game
// is over it only accepts RESTART.
func (g *Game) Turn(i Intent) error {
	if g.State == GAME_OVER {
		return g.ApplyPlayerIntent(i)
	}
	if _, ok := i.Direction(); !ok {
		return nil
	}
	if err := g.ApplyPlayerIntent(i); err != nil {
		return err
	}
	g.AdvancePursuers()
	g.Turns++
	g.CheckCollision()
	log.WithFields(log.Fields{
		"turn":     g.Turns,
		"intent":   i.Name(),
		"player":   g.Player,
		"pursuers": g.Pursuers,
	}).Debug("turn")
	return nil
}

func (g *Game) Over() bool {
	return g.State == GAME_OVER
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Width:    g.Grid.Width(),
		Height:   g.Grid.Height(),
		Blocked:  g.Grid.BlockedCells(),
		Player:   g.Player,
		Pursuers: append([]Cell(nil), g.Pursuers...),
		Status:   g.State,
		Turn:     g.Turns,
	}
	if g.State == GAME_OVER {
		s.Message = GameOverMessage
	}
	return s
}
