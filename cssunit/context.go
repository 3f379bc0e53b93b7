package cssunit

// Context supplies what relative units resolve against.
type Context interface {
	FontSize() float64
	RootFontSize() float64
	ViewportSize() (width, height float64)
}

// Metrics is a fixed Context. The zero value of a field means "use the default".
type Metrics struct {
	FontSizePx       float64 `yaml:"font_size"`
	RootFontSizePx   float64 `yaml:"root_font_size"`
	ViewportWidthPx  float64 `yaml:"viewport_width"`
	ViewportHeightPx float64 `yaml:"viewport_height"`
}

const (
	DefaultFontSize       = 16
	DefaultViewportWidth  = 800
	DefaultViewportHeight = 600
)

var _ Context = (*Metrics)(nil)

func DefaultMetrics() *Metrics {
	return &Metrics{
		FontSizePx:       DefaultFontSize,
		RootFontSizePx:   DefaultFontSize,
		ViewportWidthPx:  DefaultViewportWidth,
		ViewportHeightPx: DefaultViewportHeight,
	}
}

func (m *Metrics) FontSize() float64 {
	if m == nil || m.FontSizePx == 0 {
		return DefaultFontSize
	}
	return m.FontSizePx
}

func (m *Metrics) RootFontSize() float64 {
	if m == nil || m.RootFontSizePx == 0 {
		return DefaultFontSize
	}
	return m.RootFontSizePx
}

func (m *Metrics) ViewportSize() (width, height float64) {
	width, height = DefaultViewportWidth, DefaultViewportHeight
	if m == nil {
		return width, height
	}
	if m.ViewportWidthPx != 0 {
		width = m.ViewportWidthPx
	}
	if m.ViewportHeightPx != 0 {
		height = m.ViewportHeightPx
	}
	return width, height
}
