package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/bitmark-inc/covid-charts/schema"
)

const rampSamples = 16

// bubble is the visual encoding of one location.
type bubble struct {
	report schema.LocationReport
	// Intensity is the position of the confirmed count in [0, 1].
	Intensity float64
	Size      float64
	Color     string
}

// bubbles encodes size and colour from the same normalised confirmed count.
// Size grows with the square root so the bubble area is proportional to the
// count. Rows without a usable coordinate are skipped.
func bubbles(reports []schema.LocationReport, cfg WorldMapConfig) []bubble {
	var max float64
	for _, r := range reports {
		if r.Confirmed > max {
			max = r.Confirmed
		}
	}

	colors := cfg.Ramp.scale()
	minSize, maxSize := cfg.SizeRange[0], cfg.SizeRange[1]
	result := make([]bubble, 0, len(reports))
	for _, r := range reports {
		if math.IsNaN(r.Latitude) || math.IsNaN(r.Longitude) {
			continue
		}

		var t float64
		if max > 0 && r.Confirmed > 0 {
			t = r.Confirmed / max
		}

		result = append(result, bubble{
			report:    r,
			Intensity: t,
			Size:      minSize + (maxSize-minSize)*math.Sqrt(t),
			Color:     colors.at(t),
		})
	}
	return result
}

// WorldScatter renders one bubble per location on a world map.
func WorldScatter(reports []schema.LocationReport, cfg WorldMapConfig, labels Labels) (Markup, error) {
	f, err := newWorldScatter(reports, cfg, labels)
	if err != nil {
		return "", err
	}
	return f.render()
}

func newWorldScatter(reports []schema.LocationReport, cfg WorldMapConfig, labels Labels) (*fragment, error) {
	if len(reports) == 0 {
		return nil, fmt.Errorf("world map: %w", schema.ErrEmptyTable)
	}

	points := bubbles(reports, cfg)

	var max float64
	data := make([]opts.GeoData, len(points))
	for i, p := range points {
		data[i] = opts.GeoData{
			Name:  p.report.CountryRegion,
			Value: []float64{p.report.Longitude, p.report.Latitude, p.report.Confirmed},
		}
		if p.report.Confirmed > max {
			max = p.report.Confirmed
		}
	}

	confirmed := labels.Get("chart_series_confirmed")
	location := labels.Get("chart_tooltip_location")

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts(cfg.Layout)),
		charts.WithGeoComponentOpts(opts.GeoComponent{Map: cfg.Map}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    true,
			Trigger: "item",
			Formatter: opts.FuncOpts(fmt.Sprintf(
				"function (p) { return p.name + '<br/>%s: ' + p.data.key + '<br/>%s: ' + p.value[2]; }",
				formatterText(location), formatterText(confirmed),
			)),
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Type:       "continuous",
			Calculable: true,
			Min:        0,
			Max:        float32(max),
			InRange:    &opts.VisualMapInRange{Color: cfg.Ramp.Samples(rampSamples)},
		}),
	)
	geo.AddSeries(confirmed, types.ChartScatter, data)

	f := newFragment(&geo.BaseConfiguration, geo.Validate, cfg.Layout)
	f.patch(layoutPatches(cfg.Layout)...)
	f.patch(
		setKey([]float64{cfg.Center.Lon, cfg.Center.Lat}, "geo", "center"),
		setKey(cfg.Zoom, "geo", "zoom"),
		setKey(true, "geo", "roam"),
		setKey(cfg.Basemap.AreaColor, "geo", "itemStyle", "areaColor"),
		setKey(cfg.Basemap.BorderColor, "geo", "itemStyle", "borderColor"),
		setKey(0, "geo", "top"),
		setKey(0, "geo", "bottom"),
		setKey(0, "geo", "left"),
		setKey(0, "geo", "right"),
		setKey(true, "visualMap", "0", "show"),
		setKey(2, "visualMap", "0", "dimension"),
		setKey("geo", "series", "0", "coordinateSystem"),
	)
	for i, p := range points {
		idx := fmt.Sprint(i)
		f.patch(
			setKey(p.Size, "series", "0", "data", idx, "symbolSize"),
			setKey(p.Color, "series", "0", "data", idx, "itemStyle", "color"),
			setKey(p.report.CombinedKey, "series", "0", "data", idx, "key"),
		)
	}

	return f, nil
}

// formatterText keeps s safe inside a single quoted string of an inline
// function. Inline functions travel through a JSON string, so quotes and
// backslashes cannot be escaped and are dropped.
func formatterText(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\\', '\'', '"', '\n', '\r':
			return -1
		}
		return r
	}, s)
}
