package cssposition

import (
	"fmt"

	"oss.terrastruct.com/csspos/cssunit"
)

// Preset is the keyword set of one axis. Only HorizontalPreset and VerticalPreset satisfy it.
type Preset interface {
	HorizontalPreset | VerticalPreset

	valid() bool
	fraction() float64
	keyword() string
}

type axisKind int8

const (
	presetAxis axisKind = iota
	lengthAxis
)

// Axis is either a preset keyword or a length-percentage offset. The zero value is the preset at
// the near edge.
type Axis[P Preset] struct {
	kind   axisKind
	preset P
	length cssunit.LengthPercentage
}

type (
	HorizontalAxis = Axis[HorizontalPreset]
	VerticalAxis   = Axis[VerticalPreset]
)

func PresetAxis[P Preset](p P) Axis[P] {
	return Axis[P]{kind: presetAxis, preset: p}
}

func LengthAxis[P Preset](lp cssunit.LengthPercentage) Axis[P] {
	return Axis[P]{kind: lengthAxis, length: lp}
}

// XLength is a horizontal offset.
func XLength(lp cssunit.LengthPercentage) HorizontalAxis {
	return LengthAxis[HorizontalPreset](lp)
}

// YLength is a vertical offset.
func YLength(lp cssunit.LengthPercentage) VerticalAxis {
	return LengthAxis[VerticalPreset](lp)
}

func (a Axis[P]) IsPreset() bool {
	return a.kind == presetAxis
}

func (a Axis[P]) Preset() (P, bool) {
	return a.preset, a.kind == presetAxis
}

func (a Axis[P]) Length() (cssunit.LengthPercentage, bool) {
	return a.length, a.kind == lengthAxis
}

// offset is the distance of the axis from the near edge of a dimension long span.
func (a Axis[P]) offset(ctx cssunit.Context, span float64) float64 {
	switch a.kind {
	case presetAxis:
		return a.preset.fraction() * span
	case lengthAxis:
		return a.length.Resolve(ctx, span)
	}
	panic(fmt.Sprintf("cssposition: unknown axis kind %d", a.kind))
}

func (a Axis[P]) writeTo(w Writer) error {
	switch a.kind {
	case presetAxis:
		_, err := w.WriteString(a.preset.keyword())
		return err
	case lengthAxis:
		b, err := a.length.MarshalText()
		if err != nil {
			return err
		}
		_, err = w.WriteString(string(b))
		return err
	}
	panic(fmt.Sprintf("cssposition: unknown axis kind %d", a.kind))
}

func (a Axis[P]) String() string {
	switch a.kind {
	case presetAxis:
		if !a.preset.valid() {
			return fmt.Sprintf("Preset(%d)", a.preset)
		}
		return a.preset.keyword()
	case lengthAxis:
		return a.length.String()
	}
	return fmt.Sprintf("Axis(%d)", a.kind)
}

func checkAxis[P Preset](a Axis[P], farEdge bool) error {
	if a.kind != presetAxis {
		return nil
	}
	if !a.preset.valid() {
		return fmt.Errorf("%w %d", ErrUnknownPreset, a.preset)
	}
	if farEdge {
		return fmt.Errorf("%w: %s", ErrPresetWithEdge, a.preset.keyword())
	}
	return nil
}
