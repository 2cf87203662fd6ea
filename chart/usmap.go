package chart

import (
	"fmt"
	"html/template"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/bitmark-inc/covid-charts/schema"
)

// withoutRows drops the rows at the given positions. Positions past the end
// of the table are ignored.
func withoutRows(rows []schema.CountyReport, excluded []int) []schema.CountyReport {
	if len(excluded) == 0 {
		return rows
	}

	skip := make(map[int]struct{}, len(excluded))
	for _, i := range excluded {
		skip[i] = struct{}{}
	}

	kept := make([]schema.CountyReport, 0, len(rows))
	for i, r := range rows {
		if _, ok := skip[i]; ok {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// USChoropleth renders counties filled by cases per capita. Counties are
// joined to the boundaries by FIPS code; rows without a boundary are not drawn.
func USChoropleth(counties []schema.CountyReport, boundaries schema.FeatureCollection, cfg USMapConfig, labels Labels) (Markup, error) {
	f, err := newUSChoropleth(counties, boundaries, cfg, labels)
	if err != nil {
		return "", err
	}
	return f.render()
}

func newUSChoropleth(counties []schema.CountyReport, boundaries schema.FeatureCollection, cfg USMapConfig, labels Labels) (*fragment, error) {
	if len(counties) == 0 {
		return nil, fmt.Errorf("usa map: %w", schema.ErrEmptyTable)
	}

	rows := withoutRows(counties, cfg.ExcludedRows)

	var max float64
	data := make([]opts.MapData, len(rows))
	for i, r := range rows {
		data[i] = opts.MapData{Name: r.FIPS, Value: r.CasesPerCapita}
		if r.CasesPerCapita > max {
			max = r.CasesPerCapita
		}
	}

	m := charts.NewMap()
	m.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts(cfg.Layout)),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "item"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Type:       "continuous",
			Calculable: true,
			Min:        0,
			Max:        float32(max),
			InRange:    &opts.VisualMapInRange{Color: cfg.Ramp.Samples(rampSamples)},
		}),
	)
	m.AddSeries(labels.Get("chart_series_cases"), data,
		charts.WithItemStyleOpts(opts.ItemStyle{
			Opacity:     cfg.Opacity,
			BorderWidth: cfg.LineWidth,
		}),
	)

	geojson, err := jsJSON(boundaries.WithIDProperty(cfg.JoinProperty))
	if err != nil {
		return nil, fmt.Errorf("encode county boundaries: %w", err)
	}

	f := newFragment(&m.BaseConfiguration, m.Validate, cfg.Layout)
	f.prelude = append(f.prelude, template.JS(fmt.Sprintf("echarts.registerMap(%s, %s);", strconv.Quote(cfg.Map), geojson)))
	f.patch(layoutPatches(cfg.Layout)...)
	f.patch(
		setKey(cfg.Map, "series", "0", "map"),
		setKey(cfg.JoinProperty, "series", "0", "nameProperty"),
		setKey([]float64{cfg.Center.Lon, cfg.Center.Lat}, "series", "0", "center"),
		setKey(cfg.Zoom, "series", "0", "zoom"),
		setKey(true, "series", "0", "roam"),
		setKey(cfg.Opacity, "series", "0", "itemStyle", "opacity"),
		setKey(cfg.LineWidth, "series", "0", "itemStyle", "borderWidth"),
		setKey(cfg.Basemap.AreaColor, "series", "0", "itemStyle", "areaColor"),
		setKey(cfg.Basemap.BorderColor, "series", "0", "itemStyle", "borderColor"),
		setKey(true, "visualMap", "0", "show"),
	)

	return f, nil
}
