// Package cssunit implements CSS lengths and percentages: the unit table, resolution to pixels
// against a Context, and canonical text.
package cssunit

import (
	"fmt"
	"strings"
)

type Unit int8

const (
	Px Unit = iota
	Cm
	Mm
	Q
	In
	Pt
	Pc

	Em
	Rem
	Ex
	Ch

	Vw
	Vh
	Vmin
	Vmax
)

// Absolute units in px. 1in = 96px = 2.54cm.
const (
	pxPerIn = 96.0
	pxPerCm = pxPerIn / 2.54
	pxPerMm = pxPerCm / 10
	pxPerQ  = pxPerCm / 40
	pxPerPt = pxPerIn / 72
	pxPerPc = pxPerIn / 6
)

// Used for ex and ch when the font does not provide an x-height or a "0" advance.
const fallbackGlyphEm = 0.5

var unitNames = map[Unit]string{
	Px:   "px",
	Cm:   "cm",
	Mm:   "mm",
	Q:    "Q",
	In:   "in",
	Pt:   "pt",
	Pc:   "pc",
	Em:   "em",
	Rem:  "rem",
	Ex:   "ex",
	Ch:   "ch",
	Vw:   "vw",
	Vh:   "vh",
	Vmin: "vmin",
	Vmax: "vmax",
}

func (u Unit) String() string {
	if s, ok := unitNames[u]; ok {
		return s
	}
	return fmt.Sprintf("Unit(%d)", u)
}

func (u Unit) Valid() bool {
	_, ok := unitNames[u]
	return ok
}

func (u Unit) IsAbsolute() bool {
	switch u {
	case Px, Cm, Mm, Q, In, Pt, Pc:
		return true
	default:
		return false
	}
}

func (u Unit) IsFontRelative() bool {
	switch u {
	case Em, Rem, Ex, Ch:
		return true
	default:
		return false
	}
}

func (u Unit) IsViewportRelative() bool {
	switch u {
	case Vw, Vh, Vmin, Vmax:
		return true
	default:
		return false
	}
}

// UnitFromString looks up a unit by its CSS suffix. Matching is ASCII case-insensitive, as in CSS,
// except that the canonical spelling of the quarter-millimeter is "Q".
func UnitFromString(s string) (Unit, bool) {
	for u, name := range unitNames {
		if strings.EqualFold(name, s) {
			return u, true
		}
	}
	return 0, false
}

// px converts v of unit u to pixels.
func (u Unit) px(ctx Context, v float64) float64 {
	switch u {
	case Px:
		return v
	case Cm:
		return v * pxPerCm
	case Mm:
		return v * pxPerMm
	case Q:
		return v * pxPerQ
	case In:
		return v * pxPerIn
	case Pt:
		return v * pxPerPt
	case Pc:
		return v * pxPerPc
	case Em:
		return v * ctx.FontSize()
	case Rem:
		return v * ctx.RootFontSize()
	case Ex, Ch:
		return v * ctx.FontSize() * fallbackGlyphEm
	case Vw, Vh, Vmin, Vmax:
		w, h := ctx.ViewportSize()
		var ref float64
		switch u {
		case Vw:
			ref = w
		case Vh:
			ref = h
		case Vmin:
			ref = min(w, h)
		case Vmax:
			ref = max(w, h)
		}
		return v * ref / 100
	default:
		panic(fmt.Sprintf("cssunit: unknown unit %d", u))
	}
}
