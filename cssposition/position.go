// Package cssposition resolves two-axis CSS position values (background-position,
// object-position) to a point inside a box, and writes their canonical text.
//
// Each axis is a preset keyword or a length-percentage. A length-percentage may be measured from
// the far edge of the box ("right 20px"). Values are immutable and safe for concurrent use.
package cssposition

import (
	"errors"
	"fmt"

	"oss.terrastruct.com/csspos/cssunit"
)

var (
	ErrPresetWithEdge = errors.New("preset cannot be measured from a far edge")
	ErrUnknownPreset  = errors.New("unknown preset")
	ErrUnknownEdge    = errors.New("unknown edge")
)

// Value is a position. The zero value is "left top".
type Value struct {
	horizontal  HorizontalAxis
	vertical    VerticalAxis
	xRelativeTo HorizontalEdge
	yRelativeTo VerticalEdge
}

// New validates and builds a Value. Far edges (EdgeRight, EdgeBottom) are only accepted on axes
// holding a length-percentage.
func New(h HorizontalAxis, v VerticalAxis, xRelativeTo HorizontalEdge, yRelativeTo VerticalEdge) (Value, error) {
	if !xRelativeTo.valid() {
		return Value{}, fmt.Errorf("horizontal: %w %d", ErrUnknownEdge, xRelativeTo)
	}
	if !yRelativeTo.valid() {
		return Value{}, fmt.Errorf("vertical: %w %d", ErrUnknownEdge, yRelativeTo)
	}
	if err := checkAxis(h, xRelativeTo == EdgeRight); err != nil {
		return Value{}, fmt.Errorf("horizontal: %w", err)
	}
	if err := checkAxis(v, yRelativeTo == EdgeBottom); err != nil {
		return Value{}, fmt.Errorf("vertical: %w", err)
	}
	return Value{
		horizontal:  h,
		vertical:    v,
		xRelativeTo: xRelativeTo,
		yRelativeTo: yRelativeTo,
	}, nil
}

// MustNew is New but panics on error.
func MustNew(h HorizontalAxis, v VerticalAxis, xRelativeTo HorizontalEdge, yRelativeTo VerticalEdge) Value {
	pos, err := New(h, v, xRelativeTo, yRelativeTo)
	if err != nil {
		panic(err)
	}
	return pos
}

func FromPresets(h HorizontalPreset, v VerticalPreset) Value {
	return MustNew(PresetAxis(h), PresetAxis(v), EdgeLeft, EdgeTop)
}

// Offsets measures x from the left edge and y from the top edge.
func Offsets(x, y cssunit.LengthPercentage) Value {
	return MustNew(XLength(x), YLength(y), EdgeLeft, EdgeTop)
}

func Center() Value {
	return FromPresets(CenterX, CenterY)
}

func (v Value) Horizontal() HorizontalAxis {
	return v.horizontal
}

func (v Value) Vertical() VerticalAxis {
	return v.vertical
}

func (v Value) XRelativeTo() HorizontalEdge {
	return v.xRelativeTo
}

func (v Value) YRelativeTo() VerticalEdge {
	return v.yRelativeTo
}

func (v Value) IsCenter() bool {
	return v == Center()
}

// Mirrored flips v through the center of the box on both axes. Presets swap ends and offsets
// swap the edge they are measured from.
func (v Value) Mirrored() Value {
	m := v
	if p, ok := v.horizontal.Preset(); ok {
		m.horizontal = PresetAxis(p.mirrored())
	} else {
		m.xRelativeTo = EdgeRight - v.xRelativeTo
	}
	if p, ok := v.vertical.Preset(); ok {
		m.vertical = PresetAxis(p.mirrored())
	} else {
		m.yRelativeTo = EdgeBottom - v.yRelativeTo
	}
	return m
}
