package cssposition

import "fmt"

// HorizontalEdge is the edge a horizontal offset is measured from.
type HorizontalEdge int8

const (
	EdgeLeft HorizontalEdge = iota
	EdgeRight
)

// VerticalEdge is the edge a vertical offset is measured from.
type VerticalEdge int8

const (
	EdgeTop VerticalEdge = iota
	EdgeBottom
)

type HorizontalPreset int8

const (
	Left HorizontalPreset = iota
	CenterX
	Right
)

type VerticalPreset int8

const (
	Top VerticalPreset = iota
	CenterY
	Bottom
)

func (e HorizontalEdge) valid() bool {
	return e == EdgeLeft || e == EdgeRight
}

func (e HorizontalEdge) keyword() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	}
	panic(fmt.Sprintf("cssposition: unknown horizontal edge %d", e))
}

func (e HorizontalEdge) String() string {
	if !e.valid() {
		return fmt.Sprintf("HorizontalEdge(%d)", e)
	}
	return e.keyword()
}

func (e VerticalEdge) valid() bool {
	return e == EdgeTop || e == EdgeBottom
}

func (e VerticalEdge) keyword() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	}
	panic(fmt.Sprintf("cssposition: unknown vertical edge %d", e))
}

func (e VerticalEdge) String() string {
	if !e.valid() {
		return fmt.Sprintf("VerticalEdge(%d)", e)
	}
	return e.keyword()
}

func (p HorizontalPreset) valid() bool {
	return Left <= p && p <= Right
}

func (p HorizontalPreset) fraction() float64 {
	switch p {
	case Left:
		return 0
	case CenterX:
		return 0.5
	case Right:
		return 1
	}
	panic(fmt.Sprintf("cssposition: unknown horizontal preset %d", p))
}

func (p HorizontalPreset) keyword() string {
	switch p {
	case Left:
		return "left"
	case CenterX:
		return "center"
	case Right:
		return "right"
	}
	panic(fmt.Sprintf("cssposition: unknown horizontal preset %d", p))
}

func (p HorizontalPreset) mirrored() HorizontalPreset {
	return Right - p
}

func (p HorizontalPreset) String() string {
	if !p.valid() {
		return fmt.Sprintf("HorizontalPreset(%d)", p)
	}
	return p.keyword()
}

func (p VerticalPreset) valid() bool {
	return Top <= p && p <= Bottom
}

func (p VerticalPreset) fraction() float64 {
	switch p {
	case Top:
		return 0
	case CenterY:
		return 0.5
	case Bottom:
		return 1
	}
	panic(fmt.Sprintf("cssposition: unknown vertical preset %d", p))
}

func (p VerticalPreset) keyword() string {
	switch p {
	case Top:
		return "top"
	case CenterY:
		return "center"
	case Bottom:
		return "bottom"
	}
	panic(fmt.Sprintf("cssposition: unknown vertical preset %d", p))
}

func (p VerticalPreset) mirrored() VerticalPreset {
	return Bottom - p
}

func (p VerticalPreset) String() string {
	if !p.valid() {
		return fmt.Sprintf("VerticalPreset(%d)", p)
	}
	return p.keyword()
}

func ParseHorizontalPreset(s string) (HorizontalPreset, bool) {
	switch s {
	case "left":
		return Left, true
	case "center":
		return CenterX, true
	case "right":
		return Right, true
	default:
		return 0, false
	}
}

func ParseVerticalPreset(s string) (VerticalPreset, bool) {
	switch s {
	case "top":
		return Top, true
	case "center":
		return CenterY, true
	case "bottom":
		return Bottom, true
	default:
		return 0, false
	}
}

func ParseHorizontalEdge(s string) (HorizontalEdge, bool) {
	switch s {
	case "left":
		return EdgeLeft, true
	case "right":
		return EdgeRight, true
	default:
		return 0, false
	}
}

func ParseVerticalEdge(s string) (VerticalEdge, bool) {
	switch s {
	case "top":
		return EdgeTop, true
	case "bottom":
		return EdgeBottom, true
	default:
		return 0, false
	}
}
