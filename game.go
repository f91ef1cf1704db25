package main

import (
	"flag"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/zucenko/runordye/model"
	"golang.org/x/image/font"
)

const frameSeconds = 1.0 / 60

// keyIntents maps keys to intents. Keys not listed are ignored.
var keyIntents = []struct {
	key    ebiten.Key
	intent model.Intent
}{
	{ebiten.KeyUp, model.MOVE_UP},
	{ebiten.KeyDown, model.MOVE_DOWN},
	{ebiten.KeyLeft, model.MOVE_LEFT},
	{ebiten.KeyRight, model.MOVE_RIGHT},
	{ebiten.KeyR, model.RESTART},
}

func readIntent() model.Intent {
	for _, k := range keyIntents {
		if inpututil.IsKeyJustPressed(k.key) {
			return k.intent
		}
	}
	return model.NONE
}

// Client is the desktop front end: it turns key presses into turns and
// draws the game state every frame.
type Client struct {
	Game     *model.Game
	CellSize int
	Tweens   map[*gween.Tween]Action

	player    *Sprite
	pursuers  []*Sprite
	dot       *ebiten.Image
	panel     *Nine
	face      font.Face
	showPaths bool
}

func NewClient(game *model.Game, cellSize int, face font.Face) (*Client, error) {
	dot, err := newDot(cellSize)
	if err != nil {
		return nil, err
	}
	panel, err := NewNine(3, COLOR_LINE, color.RGBA{0xff, 0xff, 0xff, 0xe0})
	if err != nil {
		return nil, err
	}
	c := &Client{
		Game:     game,
		CellSize: cellSize,
		Tweens:   make(map[*gween.Tween]Action),
		dot:      dot,
		panel:    panel,
		face:     face,
	}
	c.resetSprites()
	return c, nil
}

// resetSprites puts every sprite on its actor's cell without animation.
func (c *Client) resetSprites() {
	if c.player == nil {
		c.player = &Sprite{color: COLOR_PLAYER}
	}
	c.jump(c.player, cellPos(c.Game.Player, c.CellSize))

	for _, s := range c.pursuers {
		c.jump(s, s.pos)
	}
	c.pursuers = c.pursuers[:0]
	for _, p := range c.Game.Pursuers {
		c.pursuers = append(c.pursuers, &Sprite{pos: cellPos(p, c.CellSize), color: COLOR_PURSUER})
	}
}

func (c *Client) slideSprites() {
	c.slide(c.player, cellPos(c.Game.Player, c.CellSize))
	for i, p := range c.Game.Pursuers {
		c.slide(c.pursuers[i], cellPos(p, c.CellSize))
	}
}

func (c *Client) update(screen *ebiten.Image) error {
	c.updateTweens(frameSeconds)

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		c.showPaths = !c.showPaths
	}

	if intent := readIntent(); intent != model.NONE {
		wasOver, turns := c.Game.Over(), c.Game.Turns
		if err := c.Game.Turn(intent); err != nil {
			return err
		}
		switch {
		case wasOver && !c.Game.Over():
			c.resetSprites()
		case c.Game.Turns != turns:
			c.slideSprites()
		}
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	c.draw(screen)
	return nil
}

func (c *Client) draw(screen *ebiten.Image) {
	snap := c.Game.Snapshot()
	cs := float64(c.CellSize)

	if e := screen.Fill(COLOR_LINE); e != nil {
		log.Printf("%v", e)
	}
	blocked := make(map[model.Cell]bool, len(snap.Blocked))
	for _, b := range snap.Blocked {
		blocked[b] = true
	}
	for x := 0; x < snap.Width; x++ {
		for y := 0; y < snap.Height; y++ {
			fill := COLOR_FLOOR
			if blocked[model.Cell{X: x, Y: y}] {
				fill = COLOR_OBSTACLE
			}
			ebitenutil.DrawRect(screen, float64(x)*cs+1, float64(y)*cs+1, cs-1, cs-1, fill)
		}
	}

	if c.showPaths && snap.Status == model.PLAYING {
		trail := color.RGBA{0xff, 0x80, 0x80, 0xff}
		for _, p := range snap.Pursuers {
			for _, step := range c.Game.Finder().Path(p, snap.Player) {
				ebitenutil.DrawRect(screen, float64(step.X)*cs+cs/3, float64(step.Y)*cs+cs/3, cs/3, cs/3, trail)
			}
		}
	}

	c.player.Draw(screen, c.dot)
	for _, s := range c.pursuers {
		s.Draw(screen, c.dot)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("turn %d", snap.Turn), 2, 0)

	if snap.Status == model.GAME_OVER {
		c.drawMessage(screen, snap.Message)
	}
}

func (c *Client) drawMessage(screen *ebiten.Image, message string) {
	w, h := screen.Size()
	metrics := c.face.Metrics()
	textWidth := font.MeasureString(c.face, message).Ceil()
	textHeight := (metrics.Ascent + metrics.Descent).Ceil()

	const pad = 12
	c.panel.SetBounds((w-textWidth)/2-pad, (h-textHeight)/2-pad, textWidth+2*pad, textHeight+2*pad)
	c.panel.Draw(screen)
	text.Draw(screen, message, c.face, (w-textWidth)/2, (h-textHeight)/2+metrics.Ascent.Ceil(), COLOR_TEXT)
}

func main() {
	var cfgPath string
	var seed int64
	flag.StringVar(&cfgPath, "config", "", "YAML config file")
	flag.Int64Var(&seed, "seed", 0, "random seed, 0 keeps the configured one")
	flag.Parse()

	game, cfg, err := Load(cfgPath, seed)
	if err != nil {
		log.Fatal(err)
	}
	face, err := loadFace(18)
	if err != nil {
		log.Fatal(err)
	}
	client, err := NewClient(game, cfg.CellSize, face)
	if err != nil {
		log.Fatal(err)
	}

	screenWidth := cfg.Width * cfg.CellSize
	screenHeight := cfg.Height * cfg.CellSize
	if err := ebiten.Run(client.update, screenWidth, screenHeight, 1, "Run from the monsters!"); err != nil {
		log.Fatal(err)
	}
}
