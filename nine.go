package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
)

// Nine is a nine-slice panel: corners keep their size, edges stretch along
// one axis and the center along both.
type Nine struct {
	image               *ebiten.Image
	border              int
	x, y, width, height int
}

func NewNine(border int, frame, fill color.Color) (*Nine, error) {
	size := 3 * border
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			if x < border || x >= 2*border || y < border || y >= 2*border {
				img.Set(x, y, frame)
			} else {
				img.Set(x, y, fill)
			}
		}
	}
	e, err := ebiten.NewImageFromImage(img, ebiten.FilterDefault)
	if err != nil {
		return nil, err
	}
	return &Nine{image: e, border: border}, nil
}

func (n *Nine) SetBounds(x, y, width, height int) {
	n.x, n.y = x, y
	n.width, n.height = width, height
}

func (n *Nine) Draw(screen *ebiten.Image) {
	b := n.border
	if n.width < 2*b || n.height < 2*b {
		return
	}
	offsets := [3]int{0, b, n.width - b}
	widths := [3]int{b, n.width - 2*b, b}
	rowOffsets := [3]int{0, b, n.height - b}
	heights := [3]int{b, n.height - 2*b, b}

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if widths[i] == 0 || heights[j] == 0 {
				continue
			}
			src := image.Rect(i*b, j*b, (i+1)*b, (j+1)*b)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(float64(widths[i])/float64(b), float64(heights[j])/float64(b))
			op.GeoM.Translate(float64(n.x+offsets[i]), float64(n.y+rowOffsets[j]))
			screen.DrawImage(n.image.SubImage(src).(*ebiten.Image), op)
		}
	}
}
