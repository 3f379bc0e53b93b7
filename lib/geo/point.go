package geo

import (
	"fmt"
	"math"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

func (p1 *Point) Equals(p2 *Point) bool {
	if p1 == nil {
		return p2 == nil
	} else if p2 == nil {
		return false
	}
	return (p1.X == p2.X) && (p1.Y == p2.Y)
}

// ApproxEquals is Equals with a tolerance of e on both coordinates.
func (p1 *Point) ApproxEquals(p2 *Point, e float64) bool {
	if p1 == nil || p2 == nil {
		return p1 == p2
	}
	return PrecisionCompare(p1.X, p2.X, e) == 0 && PrecisionCompare(p1.Y, p2.Y, e) == 0
}

func (p *Point) Copy() *Point {
	return &Point{X: p.X, Y: p.Y}
}

// Translate returns p moved by (dx, dy). p is not modified.
func (p *Point) Translate(dx, dy float64) *Point {
	return NewPoint(p.X+dx, p.Y+dy)
}

// Reflect returns p mirrored through c.
func (p *Point) Reflect(c *Point) *Point {
	return NewPoint(2*c.X-p.X, 2*c.Y-p.Y)
}

func (p *Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func (p *Point) ToString() string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}
