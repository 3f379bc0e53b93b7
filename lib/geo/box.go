package geo

import "fmt"

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

func (b *Box) BottomRight() *Point {
	return NewPoint(b.TopLeft.X+b.Width, b.TopLeft.Y+b.Height)
}

// Contains reports whether p lies inside b or on its border.
func (b *Box) Contains(p *Point) bool {
	return b.TopLeft.X <= p.X && p.X <= b.TopLeft.X+b.Width &&
		b.TopLeft.Y <= p.Y && p.Y <= b.TopLeft.Y+b.Height
}

func (b *Box) ToString() string {
	if b == nil {
		return ""
	}
	return fmt.Sprintf("{TopLeft: %s, Width: %.0f, Height: %.0f}", b.TopLeft.ToString(), b.Width, b.Height)
}
