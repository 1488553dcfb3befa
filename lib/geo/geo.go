// Package geo provides the small amount of plane geometry the
// renderer needs to place boxes and pips on a canvas.
package geo

import "fmt"

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

func (p *Point) Copy() *Point {
	if p == nil {
		return nil
	}
	return NewPoint(p.X, p.Y)
}

func (p *Point) ToString() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

type Box struct {
	TopLeft *Point
	Width   float64
	Height  float64
}

func NewBox(tl *Point, width, height float64) *Box {
	return &Box{
		TopLeft: tl,
		Width:   width,
		Height:  height,
	}
}

func (b *Box) Copy() *Box {
	if b == nil {
		return nil
	}
	return NewBox(b.TopLeft.Copy(), b.Width, b.Height)
}

func (b *Box) Center() *Point {
	return NewPoint(b.TopLeft.X+b.Width/2, b.TopLeft.Y+b.Height/2)
}

func (b *Box) Contains(p *Point) bool {
	return p.X >= b.TopLeft.X && p.X <= b.TopLeft.X+b.Width &&
		p.Y >= b.TopLeft.Y && p.Y <= b.TopLeft.Y+b.Height
}

// Expand returns a copy grown by pad on every side.
func (b *Box) Expand(pad float64) *Box {
	return NewBox(NewPoint(b.TopLeft.X-pad, b.TopLeft.Y-pad), b.Width+2*pad, b.Height+2*pad)
}
