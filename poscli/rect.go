package poscli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"oss.terrastruct.com/csspos/lib/geo"
)

// parseRect reads "x,y,width,height" in px.
func parseRect(s string) (*geo.Box, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("invalid --rect %q: expected x,y,width,height", s)
	}
	var vals [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("invalid --rect %q: %q is not a finite number", s, part)
		}
		vals[i] = v
	}
	if vals[2] < 0 || vals[3] < 0 {
		return nil, fmt.Errorf("invalid --rect %q: width and height must not be negative", s)
	}
	return geo.NewBox(geo.NewPoint(vals[0], vals[1]), vals[2], vals[3]), nil
}
