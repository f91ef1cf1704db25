package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
	"github.com/tanema/gween"
	"github.com/ungerik/go3d/vec2"
	"github.com/zucenko/runordye/model"
)

var (
	COLOR_LINE     = color.RGBA{0x00, 0x00, 0x00, 0xff}
	COLOR_FLOOR    = color.RGBA{0xd3, 0xd3, 0xd3, 0xff}
	COLOR_OBSTACLE = color.RGBA{0xa5, 0x2a, 0x2a, 0xff}
	COLOR_PLAYER   = color.RGBA{0x00, 0x80, 0x00, 0xff}
	COLOR_PURSUER  = color.RGBA{0xff, 0x00, 0x00, 0xff}
	COLOR_TEXT     = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

// Sprite is an actor drawn at a pixel position that slides between cells.
type Sprite struct {
	pos   vec2.T
	color color.RGBA
	tween *gween.Tween
}

func cellPos(c model.Cell, cellSize int) vec2.T {
	return vec2.T{float32(c.X * cellSize), float32(c.Y * cellSize)}
}

// newDot renders a white filled circle; sprites tint it with ColorM.
func newDot(size int) (*ebiten.Image, error) {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			dx := float64(x) + .5 - r
			dy := float64(y) + .5 - r
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, color.White)
			}
		}
	}
	return ebiten.NewImageFromImage(img, ebiten.FilterDefault)
}

func (s *Sprite) Draw(screen, dot *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(s.pos[0]), float64(s.pos[1]))
	op.ColorM.Scale(float64(s.color.R)/255, float64(s.color.G)/255, float64(s.color.B)/255, 1)
	screen.DrawImage(dot, op)
}
