package cssunit_test

import (
	"math"
	"testing"

	tassert "github.com/stretchr/testify/assert"

	"oss.terrastruct.com/util-go/assert"

	"oss.terrastruct.com/csspos/cssunit"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in  string
		exp string
		err string
	}{
		{in: "20px", exp: "20px"},
		{in: "-1.5em", exp: "-1.5em"},
		{in: "+3rem", exp: "3rem"},
		{in: "2REM", exp: "2rem"},
		{in: "50%", exp: "50%"},
		{in: ".5in", exp: "0.5in"},
		{in: "1e2px", exp: "100px"},
		{in: "1em", exp: "1em"},
		{in: "4q", exp: "4Q"},
		{in: "10vmin", exp: "10vmin"},
		{in: "0", exp: "0px"},
		{in: "-0px", exp: "0px"},
		{in: "", err: "expected a number"},
		{in: "px", err: "expected a number"},
		{in: "5", err: "non-zero length requires a unit"},
		{in: "10furlongs", err: `unknown unit "furlongs"`},
		{in: "1.px", err: `unknown unit ".px"`},
		{in: "1e999px", err: "value out of range"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()

			lp, err := cssunit.Parse(tc.in)
			if tc.err != "" {
				tassert.ErrorContains(t, err, tc.err)
				return
			}
			assert.Success(t, err)
			assert.String(t, tc.exp, lp.String())
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	m := &cssunit.Metrics{
		FontSizePx:       20,
		RootFontSizePx:   10,
		ViewportWidthPx:  1000,
		ViewportHeightPx: 500,
	}

	testCases := []struct {
		name string
		lp   cssunit.LengthPercentage
		ref  float64
		exp  float64
	}{
		{name: "px", lp: cssunit.Pixels(20), ref: 300, exp: 20},
		{name: "percent", lp: cssunit.Percent(50), ref: 300, exp: 150},
		{name: "percent_0", lp: cssunit.Percent(0), ref: 300, exp: 0},
		{name: "percent_100", lp: cssunit.Percent(100), ref: 300, exp: 300},
		{name: "negative_percent", lp: cssunit.Percent(-10), ref: 300, exp: -30},
		{name: "in", lp: cssunit.FromLength(cssunit.NewLength(1, cssunit.In)), exp: 96},
		{name: "cm", lp: cssunit.FromLength(cssunit.NewLength(2.54, cssunit.Cm)), exp: 96},
		{name: "mm", lp: cssunit.FromLength(cssunit.NewLength(25.4, cssunit.Mm)), exp: 96},
		{name: "Q", lp: cssunit.FromLength(cssunit.NewLength(40, cssunit.Q)), exp: 96 / 2.54},
		{name: "pt", lp: cssunit.FromLength(cssunit.NewLength(72, cssunit.Pt)), exp: 96},
		{name: "pc", lp: cssunit.FromLength(cssunit.NewLength(6, cssunit.Pc)), exp: 96},
		{name: "em", lp: cssunit.FromLength(cssunit.NewLength(-1.5, cssunit.Em)), exp: -30},
		{name: "rem", lp: cssunit.FromLength(cssunit.NewLength(3, cssunit.Rem)), exp: 30},
		{name: "ex", lp: cssunit.FromLength(cssunit.NewLength(2, cssunit.Ex)), exp: 20},
		{name: "ch", lp: cssunit.FromLength(cssunit.NewLength(1, cssunit.Ch)), exp: 10},
		{name: "vw", lp: cssunit.FromLength(cssunit.NewLength(10, cssunit.Vw)), exp: 100},
		{name: "vh", lp: cssunit.FromLength(cssunit.NewLength(10, cssunit.Vh)), exp: 50},
		{name: "vmin", lp: cssunit.FromLength(cssunit.NewLength(10, cssunit.Vmin)), exp: 50},
		{name: "vmax", lp: cssunit.FromLength(cssunit.NewLength(10, cssunit.Vmax)), exp: 100},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tassert.InDelta(t, tc.exp, tc.lp.Resolve(m, tc.ref), 1e-9)
		})
	}
}

func TestResolveNilContext(t *testing.T) {
	t.Parallel()

	em := cssunit.FromLength(cssunit.NewLength(2, cssunit.Em))
	assert.Equal(t, 2.0*cssunit.DefaultFontSize, em.Resolve(nil, 0))

	vw := cssunit.FromLength(cssunit.NewLength(50, cssunit.Vw))
	assert.Equal(t, cssunit.DefaultViewportWidth/2.0, vw.Resolve(nil, 0))

	// Unset fields fall back individually.
	m := &cssunit.Metrics{FontSizePx: 10}
	assert.Equal(t, 10.0, em.Resolve(m, 0)/2)
	assert.Equal(t, float64(cssunit.DefaultFontSize), m.RootFontSize())
}

func TestMarshalText(t *testing.T) {
	t.Parallel()

	assert.String(t, "12.5%", cssunit.Percent(12.5).String())
	assert.String(t, "0px", cssunit.Pixels(math.Copysign(0, -1)).String())
	assert.String(t, "0px", cssunit.LengthPercentage{}.String())
	assert.String(t, "0.25pt", cssunit.NewLength(0.25, cssunit.Pt).String())

	_, err := cssunit.Pixels(math.NaN()).MarshalText()
	tassert.ErrorContains(t, err, "failed to serialize length")
	tassert.ErrorContains(t, err, "non-finite number")
	assert.String(t, "", cssunit.Pixels(math.NaN()).String())
	assert.String(t, "", cssunit.NewLength(math.Inf(1), cssunit.Px).String())

	_, err = cssunit.Percent(math.Inf(1)).MarshalText()
	tassert.ErrorContains(t, err, "failed to serialize percentage")

	_, err = cssunit.NewLength(1, cssunit.Unit(99)).MarshalText()
	tassert.ErrorContains(t, err, "unknown unit 99")
}

func TestVariants(t *testing.T) {
	t.Parallel()

	p := cssunit.Percent(30)
	_, ok := p.Length()
	tassert.False(t, ok)
	v, ok := p.Percentage()
	tassert.True(t, ok)
	assert.Equal(t, 30.0, v)
	tassert.True(t, p.IsPercentage())

	l := cssunit.Pixels(7)
	got, ok := l.Length()
	tassert.True(t, ok)
	tassert.Equal(t, cssunit.NewLength(7, cssunit.Px), got)
	tassert.False(t, l.IsPercentage())

	// 0px and 0% are different values.
	tassert.NotEqual(t, cssunit.Pixels(0), cssunit.Percent(0))
}

func TestUnits(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"px", "cm", "mm", "Q", "in", "pt", "pc", "em", "rem", "ex", "ch", "vw", "vh", "vmin", "vmax"} {
		u, ok := cssunit.UnitFromString(s)
		tassert.True(t, ok, s)
		assert.String(t, s, u.String())
		tassert.True(t, u.Valid())
		n := 0
		for _, b := range []bool{u.IsAbsolute(), u.IsFontRelative(), u.IsViewportRelative()} {
			if b {
				n++
			}
		}
		assert.Equal(t, 1, n)
	}

	_, ok := cssunit.UnitFromString("%")
	tassert.False(t, ok)
	assert.String(t, "Unit(99)", cssunit.Unit(99).String())
	tassert.Panics(t, func() {
		cssunit.NewLength(1, cssunit.Unit(99)).ToPx(nil)
	})
}
