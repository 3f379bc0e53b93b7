package cssunit

import (
	"fmt"
	"math"
	"strconv"

	"oss.terrastruct.com/util-go/xdefer"
)

type Length struct {
	Value float64
	Unit  Unit
}

func NewLength(v float64, u Unit) Length {
	return Length{Value: v, Unit: u}
}

// ToPx resolves l to pixels. A nil ctx resolves relative units against DefaultMetrics.
func (l Length) ToPx(ctx Context) float64 {
	if ctx == nil {
		ctx = (*Metrics)(nil)
	}
	return l.Unit.px(ctx, l.Value)
}

func (l Length) MarshalText() (_ []byte, err error) {
	defer xdefer.Errorf(&err, "failed to serialize length")
	if !l.Unit.Valid() {
		return nil, fmt.Errorf("unknown unit %d", l.Unit)
	}
	b, err := appendNumber(nil, l.Value)
	if err != nil {
		return nil, err
	}
	return append(b, l.Unit.String()...), nil
}

// String is the canonical text of l, or "" if l has no text (unknown unit, non-finite value).
func (l Length) String() string {
	b, err := l.MarshalText()
	if err != nil {
		return ""
	}
	return string(b)
}

// LengthPercentage is either a Length or a percentage of a reference length.
// The zero value is 0px.
type LengthPercentage struct {
	length    Length
	percent   float64
	isPercent bool
}

func FromLength(l Length) LengthPercentage {
	return LengthPercentage{length: l}
}

func Pixels(v float64) LengthPercentage {
	return FromLength(NewLength(v, Px))
}

// Percent is p% of whatever reference the value is resolved against.
func Percent(p float64) LengthPercentage {
	return LengthPercentage{percent: p, isPercent: true}
}

func (lp LengthPercentage) IsPercentage() bool {
	return lp.isPercent
}

// Length returns the length variant. ok is false for percentages.
func (lp LengthPercentage) Length() (l Length, ok bool) {
	return lp.length, !lp.isPercent
}

// Percentage returns the percentage variant. ok is false for lengths.
func (lp LengthPercentage) Percentage() (p float64, ok bool) {
	return lp.percent, lp.isPercent
}

// Resolve returns lp in pixels, taking percentages of reference.
func (lp LengthPercentage) Resolve(ctx Context, reference float64) float64 {
	if lp.isPercent {
		return lp.percent / 100 * reference
	}
	return lp.length.ToPx(ctx)
}

func (lp LengthPercentage) MarshalText() (_ []byte, err error) {
	if !lp.isPercent {
		return lp.length.MarshalText()
	}
	defer xdefer.Errorf(&err, "failed to serialize percentage")
	b, err := appendNumber(nil, lp.percent)
	if err != nil {
		return nil, err
	}
	return append(b, '%'), nil
}

// String is the canonical text of lp, or "" if MarshalText fails.
func (lp LengthPercentage) String() string {
	b, err := lp.MarshalText()
	if err != nil {
		return ""
	}
	return string(b)
}

// appendNumber writes v in its shortest round-tripping decimal form. -0 is written as 0.
func appendNumber(b []byte, v float64) ([]byte, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("non-finite number %v", v)
	}
	if v == 0 {
		v = 0
	}
	return strconv.AppendFloat(b, v, 'f', -1, 64), nil
}
