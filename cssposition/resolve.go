package cssposition

import (
	"oss.terrastruct.com/csspos/cssunit"
	"oss.terrastruct.com/csspos/lib/geo"
)

// Resolve places v inside rect. ctx is only used to resolve lengths and may be nil, in which
// case relative units resolve against cssunit.DefaultMetrics.
func (v Value) Resolve(ctx cssunit.Context, rect *geo.Box) *geo.Point {
	x := v.horizontal.offset(ctx, rect.Width)
	y := v.vertical.offset(ctx, rect.Height)
	// Far edges only ever pair with lengths, see New.
	if v.xRelativeTo == EdgeRight {
		x = rect.Width - x
	}
	if v.yRelativeTo == EdgeBottom {
		y = rect.Height - y
	}
	return rect.TopLeft.Translate(x, y)
}
