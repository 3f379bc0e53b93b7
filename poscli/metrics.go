package poscli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"cdr.dev/slog"
	"gopkg.in/yaml.v3"

	"oss.terrastruct.com/util-go/xdefer"
	"oss.terrastruct.com/util-go/xmain"

	"oss.terrastruct.com/csspos/cssunit"
	"oss.terrastruct.com/csspos/lib/log"
)

// loadMetrics builds the resolution context from --metrics and the font size flags.
func loadMetrics(ctx context.Context, ms *xmain.State, f flags) (*cssunit.Metrics, error) {
	m := cssunit.DefaultMetrics()

	if *f.metrics != "" {
		err := readMetricsFile(ms, *f.metrics, m)
		if err != nil {
			return nil, err
		}
	}

	if *f.fontSize != 0 {
		m.FontSizePx = *f.fontSize
	}
	if *f.rootFontSize != 0 {
		m.RootFontSizePx = *f.rootFontSize
	}
	err := checkMetrics(m)
	if err != nil {
		return nil, xmain.UsageErrorf("%v", err)
	}
	for _, f := range metricFields(m) {
		if f.v == 0 {
			log.Warn(ctx, "metric is zero, using the default", slog.F("metric", f.name))
		}
	}

	w, h := m.ViewportSize()
	log.Debug(ctx, "resolution context",
		slog.F("font_size", m.FontSize()),
		slog.F("root_font_size", m.RootFontSize()),
		slog.F("viewport", fmt.Sprintf("%vx%v", w, h)),
	)
	return m, nil
}

func readMetricsFile(ms *xmain.State, path string, m *cssunit.Metrics) (err error) {
	if path != "-" {
		path = ms.AbsPath(path)
	}
	defer xdefer.Errorf(&err, "failed to read metrics from %s", path)

	b, err := ms.ReadPath(path)
	if err != nil {
		return err
	}
	err = decodeMetrics(b, m)
	if err != nil {
		return err
	}
	ms.Log.Debug.Printf("using metrics from %s", path)
	return nil
}

func decodeMetrics(b []byte, m *cssunit.Metrics) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	err := dec.Decode(m)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

type metricField struct {
	name string
	v    float64
}

func metricFields(m *cssunit.Metrics) []metricField {
	return []metricField{
		{"font_size", m.FontSizePx},
		{"root_font_size", m.RootFontSizePx},
		{"viewport_width", m.ViewportWidthPx},
		{"viewport_height", m.ViewportHeightPx},
	}
}

func checkMetrics(m *cssunit.Metrics) error {
	for _, f := range metricFields(m) {
		if f.v < 0 {
			return fmt.Errorf("%s must not be negative, got %v", f.name, f.v)
		}
	}
	return nil
}
