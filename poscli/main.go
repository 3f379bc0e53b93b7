package poscli

import (
	"context"
	"errors"
	"fmt"

	"cdr.dev/slog"
	"github.com/spf13/pflag"

	"oss.terrastruct.com/util-go/xdefer"
	"oss.terrastruct.com/util-go/xmain"

	"oss.terrastruct.com/csspos/cssposition"
	"oss.terrastruct.com/csspos/cssunit"
	"oss.terrastruct.com/csspos/lib/geo"
	"oss.terrastruct.com/csspos/lib/log"
	"oss.terrastruct.com/csspos/lib/version"
)

type flags struct {
	x            *string
	y            *string
	xEdge        *string
	yEdge        *string
	rect         *string
	metrics      *string
	fontSize     *float64
	rootFontSize *float64
}

func Run(ctx context.Context, ms *xmain.State) (err error) {
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		return err
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}

	var f flags
	f.x = ms.Opts.String("CSSPOS_X", "x", "", "left", "horizontal position: left, center, right or an offset such as 20px or 50%")
	f.y = ms.Opts.String("CSSPOS_Y", "y", "", "top", "vertical position: top, center, bottom or an offset such as 1.5em or 50%")
	f.xEdge = ms.Opts.String("CSSPOS_X_EDGE", "x-edge", "", "left", "edge the horizontal offset is measured from: left or right")
	f.yEdge = ms.Opts.String("CSSPOS_Y_EDGE", "y-edge", "", "top", "edge the vertical offset is measured from: top or bottom")
	f.rect = ms.Opts.String("CSSPOS_RECT", "rect", "r", "0,0,0,0", "reference rectangle in px as x,y,width,height")
	f.metrics = ms.Opts.String("CSSPOS_METRICS", "metrics", "m", "", "YAML file with font_size, root_font_size, viewport_width and viewport_height in px")
	f.fontSize, err = ms.Opts.Float64("CSSPOS_FONT_SIZE", "font-size", "", 0, "font size in px for em, ex and ch. Overrides --metrics")
	if err != nil {
		return err
	}
	f.rootFontSize, err = ms.Opts.Float64("CSSPOS_ROOT_FONT_SIZE", "root-font-size", "", 0, "root font size in px for rem. Overrides --metrics")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}

	ctx = log.Human(ctx, ms.Stderr, *debugFlag)
	defer log.Sync(ctx)

	if len(ms.Opts.Flags.Args()) == 0 {
		if *versionFlag {
			fmt.Fprintln(ms.Stdout, version.Version)
			return nil
		}
		help(ms)
		return nil
	}
	if len(ms.Opts.Flags.Args()) > 1 {
		return xmain.UsageErrorf("%s accepts no arguments", ms.Opts.Flags.Arg(0))
	}

	switch ms.Opts.Flags.Arg(0) {
	case "resolve":
		return resolveCmd(ctx, ms, f)
	case "fmt":
		return fmtCmd(ctx, ms, f)
	case "version":
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	default:
		return xmain.UsageErrorf("unknown subcommand %q", ms.Opts.Flags.Arg(0))
	}
}

func resolveCmd(ctx context.Context, ms *xmain.State, f flags) (err error) {
	defer xdefer.Errorf(&err, "failed to resolve")

	pos, err := positionFromFlags(f)
	if err != nil {
		return err
	}
	rect, err := parseRect(*f.rect)
	if err != nil {
		return xmain.UsageErrorf("%v", err)
	}
	metrics, err := loadMetrics(ctx, ms, f)
	if err != nil {
		return err
	}

	p := pos.Resolve(metrics, rect)
	log.Debug(ctx, "resolved position",
		slog.F("position", pos.String()),
		slog.F("rect", rect.ToString()),
		slog.F("point", p.ToString()),
	)
	if !p.IsFinite() {
		return fmt.Errorf("%s resolved to %s", pos, p.ToString())
	}

	_, err = fmt.Fprintf(ms.Stdout, "%s %s\n", formatPx(p.X), formatPx(p.Y))
	return err
}

func fmtCmd(ctx context.Context, ms *xmain.State, f flags) (err error) {
	defer xdefer.Errorf(&err, "failed to fmt")

	pos, err := positionFromFlags(f)
	if err != nil {
		return err
	}

	// Serialize into a private buffer so that nothing is printed on failure.
	b, err := pos.MarshalText()
	if err != nil {
		return err
	}
	log.Debug(ctx, "serialized position", slog.F("text", string(b)))

	_, err = fmt.Fprintf(ms.Stdout, "%s\n", b)
	return err
}

func positionFromFlags(f flags) (cssposition.Value, error) {
	h, err := parseAxis(*f.x, cssposition.ParseHorizontalPreset)
	if err != nil {
		return cssposition.Value{}, xmain.UsageErrorf("invalid --x: %v", err)
	}
	v, err := parseAxis(*f.y, cssposition.ParseVerticalPreset)
	if err != nil {
		return cssposition.Value{}, xmain.UsageErrorf("invalid --y: %v", err)
	}
	xEdge, ok := cssposition.ParseHorizontalEdge(*f.xEdge)
	if !ok {
		return cssposition.Value{}, xmain.UsageErrorf("invalid --x-edge %q: expected left or right", *f.xEdge)
	}
	yEdge, ok := cssposition.ParseVerticalEdge(*f.yEdge)
	if !ok {
		return cssposition.Value{}, xmain.UsageErrorf("invalid --y-edge %q: expected top or bottom", *f.yEdge)
	}

	pos, err := cssposition.New(h, v, xEdge, yEdge)
	if err != nil {
		return cssposition.Value{}, xmain.UsageErrorf("%v", err)
	}
	return pos, nil
}

// parseAxis accepts a preset keyword or a single dimension token.
func parseAxis[P cssposition.Preset](s string, parsePreset func(string) (P, bool)) (cssposition.Axis[P], error) {
	if p, ok := parsePreset(s); ok {
		return cssposition.PresetAxis(p), nil
	}
	lp, err := cssunit.Parse(s)
	if err != nil {
		return cssposition.Axis[P]{}, err
	}
	return cssposition.LengthAxis[P](lp), nil
}

func formatPx(v float64) string {
	return fmt.Sprint(geo.TruncateDecimals(v))
}
