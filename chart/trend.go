package chart

import (
	"fmt"
	"html/template"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/bitmark-inc/covid-charts/schema"
)

const dateLayout = "2006-01-02"

type scaleOption struct {
	Type  string `json:"type"`
	Label string `json:"label"`
}

// GlobalTrend renders cumulative confirmed, deaths and recovered counts as
// three lines on one date axis. The y axis starts in cfg.Scale and can be
// switched between the cfg.Toggle modes in the browser.
func GlobalTrend(table schema.Table, cfg TrendConfig, labels Labels) (Markup, error) {
	f, err := newGlobalTrend(table, cfg, labels)
	if err != nil {
		return "", err
	}
	return f.render()
}

func newGlobalTrend(table schema.Table, cfg TrendConfig, labels Labels) (*fragment, error) {
	if table.Len() == 0 {
		return nil, fmt.Errorf("global trend: %w", schema.ErrEmptyTable)
	}

	// insertion order keeps deaths drawn above confirmed
	traces := []struct {
		column    string
		messageID string
		style     SeriesStyle
	}{
		{schema.ColumnConfirmed, "chart_series_confirmed", cfg.Confirmed},
		{schema.ColumnDeaths, "chart_series_deaths", cfg.Deaths},
		{schema.ColumnRecovered, "chart_series_recovered", cfg.Recovered},
	}

	columns := make([][]float64, len(traces))
	for i, trace := range traces {
		values, err := table.Column(trace.column)
		if err != nil {
			return nil, fmt.Errorf("global trend: %w", err)
		}
		columns[i] = values
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts(cfg.Layout)),
		charts.WithLegendOpts(opts.Legend{Show: cfg.ShowLegend}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "time"}),
		charts.WithYAxisOpts(opts.YAxis{Type: cfg.Scale.axisType()}),
		charts.WithGridOpts(gridOpts(cfg.Margin)),
	)

	legendSelected := map[string]bool{}
	for i, trace := range traces {
		name := labels.Get(trace.messageID)
		legendSelected[name] = trace.style.Visibility == Shown

		data := make([]opts.LineData, table.Len())
		for j, date := range table.Index {
			data[j] = opts.LineData{Value: []interface{}{date.Format(dateLayout), columns[i][j]}}
		}

		seriesOpts := []charts.SeriesOpts{
			charts.WithLineStyleOpts(opts.LineStyle{Width: cfg.LineWidth, Color: trace.style.Color}),
		}
		if trace.style.Color != "" {
			seriesOpts = append(seriesOpts, charts.WithItemStyleOpts(opts.ItemStyle{Color: trace.style.Color}))
		}
		line.AddSeries(name, data, seriesOpts...)
	}

	f := newFragment(&line.BaseConfiguration, line.Validate, cfg.Layout)
	f.patch(
		layoutPatches(cfg.Layout)...,
	)
	f.patch(
		setKey(cfg.ShowLegend, "legend", "show"),
		setKey(legendSelected, "legend", "selected"),
		setKey(cfg.ShowGrid, "xAxis", "0", "splitLine", "show"),
		setKey(cfg.Scale.axisType(), "yAxis", "0", "type"),
		setKey(false, "series", "0", "showSymbol"),
		setKey(false, "series", "1", "showSymbol"),
		setKey(false, "series", "2", "showSymbol"),
	)

	if len(cfg.Toggle) > 1 {
		script, err := scaleToggleScript(cfg, labels)
		if err != nil {
			return nil, err
		}
		f.scripts = append(f.scripts, script)
	}

	return f, nil
}

// scaleToggleScript adds a select element above the chart that only rewrites
// the y axis type. Series data is never touched.
func scaleToggleScript(cfg TrendConfig, labels Labels) (template.JS, error) {
	modes := make([]scaleOption, len(cfg.Toggle))
	for i, s := range cfg.Toggle {
		modes[i] = scaleOption{Type: s.axisType(), Label: labels.Get(s.labelID())}
	}

	modesJS, err := jsJSON(modes)
	if err != nil {
		return "", err
	}

	return template.JS(fmt.Sprintf(`var select = document.createElement("select");
select.className = "covid-scale-toggle";
select.style.background = %s;
select.style.color = %s;
%s.forEach(function (mode) {
  var o = document.createElement("option");
  o.value = mode.type;
  o.textContent = mode.label;
  select.appendChild(o);
});
select.value = %s;
select.onchange = function () { chart.setOption({yAxis: {type: select.value}}); };
chart.getDom().parentNode.insertBefore(select, chart.getDom());`,
		strconv.Quote(transparent), strconv.Quote(cfg.FontColor), modesJS, strconv.Quote(cfg.Scale.axisType()))), nil
}
