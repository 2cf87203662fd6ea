package chart

import (
	"fmt"
	"html/template"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/bitmark-inc/covid-charts/schema"
)

type rangeButton struct {
	Label string `json:"label"`
	Start int64  `json:"start"`
	End   int64  `json:"end"`
}

// DailyGrowth renders daily new cases and deaths as stacked bars with a time
// range selector. Both tables are reduced to their World column.
func DailyGrowth(cases, deaths schema.Table, cfg DailyConfig, labels Labels) (Markup, error) {
	f, err := newDailyGrowth(cases, deaths, cfg, labels)
	if err != nil {
		return "", err
	}
	return f.render()
}

func newDailyGrowth(cases, deaths schema.Table, cfg DailyConfig, labels Labels) (*fragment, error) {
	cases, err := cases.Select(schema.ColumnWorld)
	if err != nil {
		return nil, fmt.Errorf("daily cases: %w", err)
	}
	deaths, err = deaths.Select(schema.ColumnWorld)
	if err != nil {
		return nil, fmt.Errorf("daily deaths: %w", err)
	}
	if cases.Len() == 0 || deaths.Len() == 0 {
		return nil, fmt.Errorf("daily growth: %w", schema.ErrEmptyTable)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts(cfg.Layout)),
		charts.WithLegendOpts(opts.Legend{Show: true, Left: cfg.LegendLeft, Top: cfg.LegendTop}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "time"}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show:      true,
				LineStyle: &opts.LineStyle{Color: cfg.GridColor},
			},
		}),
		charts.WithGridOpts(gridOpts(cfg.Margin)),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside", Start: 0, End: 100}),
	)

	// the first series is the bottom of the stack, deaths only reach the
	// axis while cases are deselected in the legend
	traces := []struct {
		table     schema.Table
		messageID string
		style     SeriesStyle
	}{
		{cases, "chart_series_cases", cfg.Cases},
		{deaths, "chart_series_deaths", cfg.Deaths},
	}

	legendSelected := map[string]bool{}
	for _, trace := range traces {
		name := labels.Get(trace.messageID)
		legendSelected[name] = trace.style.Visibility == Shown

		world, err := trace.table.Column(schema.ColumnWorld)
		if err != nil {
			return nil, fmt.Errorf("daily growth: %w", err)
		}
		data := make([]opts.BarData, trace.table.Len())
		for i, date := range trace.table.Index {
			data[i] = opts.BarData{Value: []interface{}{date.Format(dateLayout), world[i]}}
		}

		seriesOpts := []charts.SeriesOpts{
			charts.WithBarChartOpts(opts.BarChart{Stack: cfg.Stack}),
		}
		if trace.style.Color != "" {
			seriesOpts = append(seriesOpts, charts.WithItemStyleOpts(opts.ItemStyle{Color: trace.style.Color}))
		}
		bar.AddSeries(name, data, seriesOpts...)
	}

	f := newFragment(&bar.BaseConfiguration, bar.Validate, cfg.Layout)
	f.patch(layoutPatches(cfg.Layout)...)
	f.patch(
		setKey(true, "legend", "show"),
		setKey(legendSelected, "legend", "selected"),
		setKey(cfg.Stack, "series", "0", "stack"),
		setKey(cfg.Stack, "series", "1", "stack"),
	)

	if len(cfg.Presets) > 0 {
		script, err := rangeSelectorScript(cases, deaths, cfg.Presets, labels)
		if err != nil {
			return nil, err
		}
		f.scripts = append(f.scripts, script)
	}

	return f, nil
}

// rangeWindows resolves the presets against the combined date span of both
// tables.
func rangeWindows(cases, deaths schema.Table, presets []RangePreset, labels Labels) ([]rangeButton, error) {
	min, err := cases.MinDate()
	if err != nil {
		return nil, err
	}
	max, err := cases.MaxDate()
	if err != nil {
		return nil, err
	}

	if d, err := deaths.MinDate(); err == nil && d.Before(min) {
		min = d
	}
	if d, err := deaths.MaxDate(); err == nil && d.After(max) {
		max = d
	}

	buttons := make([]rangeButton, len(presets))
	for i, p := range presets {
		start, end := p.Window(min, max)
		buttons[i] = rangeButton{
			Label: labels.Get(p.LabelID),
			Start: start.UnixMilli(),
			End:   end.UnixMilli(),
		}
	}
	return buttons, nil
}

// rangeSelectorScript adds one button per preset above the chart. A click
// zooms the x axis to the preset window.
func rangeSelectorScript(cases, deaths schema.Table, presets []RangePreset, labels Labels) (template.JS, error) {
	buttons, err := rangeWindows(cases, deaths, presets, labels)
	if err != nil {
		return "", err
	}

	buttonsJS, err := jsJSON(buttons)
	if err != nil {
		return "", err
	}

	return template.JS(fmt.Sprintf(`var selector = document.createElement("div");
selector.className = "covid-range-selector";
%s.forEach(function (preset) {
  var b = document.createElement("button");
  b.type = "button";
  b.textContent = preset.label;
  b.onclick = function () {
    chart.dispatchAction({type: "dataZoom", startValue: preset.start, endValue: preset.end});
  };
  selector.appendChild(b);
});
chart.getDom().parentNode.insertBefore(selector, chart.getDom());`, buttonsJS)), nil
}
