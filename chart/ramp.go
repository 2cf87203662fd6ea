package chart

import (
	"fmt"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	log "github.com/sirupsen/logrus"
)

// ColorStop places a colour at an offset in [0, 1] of a value range.
type ColorStop struct {
	Offset float64
	Color  string
}

// Ramp is a piecewise linear colour scale.
type Ramp []ColorStop

// parseColor accepts "#rgb" and "#rrggbb" only.
func parseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 && len(s) != 7 {
		return colorful.Color{}, fmt.Errorf("invalid colour %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return c, nil
}

// scale is a ramp reduced to its valid stops with the colours parsed.
type scale struct {
	stops  Ramp
	colors []colorful.Color
}

func (r Ramp) scale() scale {
	s := scale{
		stops:  make(Ramp, 0, len(r)),
		colors: make([]colorful.Color, 0, len(r)),
	}
	for _, stop := range r {
		if stop.Offset < 0 || stop.Offset > 1 {
			log.WithFields(log.Fields{"prefix": logPrefix, "offset": stop.Offset}).Warn("colour stop out of range dropped")
			continue
		}
		c, err := parseColor(stop.Color)
		if err != nil {
			log.WithFields(log.Fields{"prefix": logPrefix, "offset": stop.Offset, "color": stop.Color}).Warn("invalid colour stop dropped")
			continue
		}
		s.stops = append(s.stops, stop)
		s.colors = append(s.colors, c)
	}

	sort.Stable(s)
	return s
}

func (s scale) Len() int           { return len(s.stops) }
func (s scale) Less(i, j int) bool { return s.stops[i].Offset < s.stops[j].Offset }
func (s scale) Swap(i, j int) {
	s.stops[i], s.stops[j] = s.stops[j], s.stops[i]
	s.colors[i], s.colors[j] = s.colors[j], s.colors[i]
}

// at positions before the first or after the last stop take that stop's
// colour. A position on a stop returns the stop's colour as configured.
func (s scale) at(t float64) string {
	if len(s.stops) == 0 {
		return ""
	}

	if t <= s.stops[0].Offset {
		return s.stops[0].Color
	}
	last := s.stops[len(s.stops)-1]
	if t >= last.Offset {
		return last.Color
	}

	for i := 1; i < len(s.stops); i++ {
		hi := s.stops[i]
		if t > hi.Offset {
			continue
		}
		lo := s.stops[i-1]
		span := hi.Offset - lo.Offset
		if t == hi.Offset || span == 0 {
			return hi.Color
		}
		return s.colors[i-1].BlendRgb(s.colors[i], (t-lo.Offset)/span).Hex()
	}
	return last.Color
}

// Valid returns the stops that carry a parsable colour and an offset inside
// [0, 1], sorted by offset. Dropped stops are logged.
func (r Ramp) Valid() Ramp {
	return r.scale().stops
}

// At returns the colour at position t. Positions before the first or after
// the last valid stop take that stop's colour.
func (r Ramp) At(t float64) string {
	return r.scale().at(t)
}

// Samples returns n evenly spaced colours from 0 to 1, the form the visual
// map of the charting runtime takes. The ramp is validated once.
func (r Ramp) Samples(n int) []string {
	if n < 2 {
		n = 2
	}

	s := r.scale()
	colors := make([]string, n)
	for i := range colors {
		colors[i] = s.at(float64(i) / float64(n-1))
	}
	return colors
}
