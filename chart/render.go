package chart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/google/uuid"
)

const logPrefix = "chart"

// AssetsHost is where runtime and map scripts are loaded from.
var AssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"

// RuntimeAssets are the scripts a page has to load once before embedding
// fragments rendered without assets.
func RuntimeAssets() []string {
	return []string{
		AssetsHost + "echarts.min.js",
		AssetsHost + "maps/world.js",
	}
}

// Markup is a self contained HTML fragment holding one interactive chart.
type Markup = template.HTML

// option patches rewrite keys go-echarts does not model.
type patch func(option map[string]interface{})

// fragment collects everything needed to turn a go-echarts chart into
// embeddable markup.
type fragment struct {
	id       string
	chart    *charts.BaseConfiguration
	validate func()
	layout   Layout
	patches  []patch
	// prelude runs before the chart is initialised, scripts after setOption
	// with `chart` bound to the ECharts instance.
	prelude []template.JS
	scripts []template.JS
}

func newFragment(chart *charts.BaseConfiguration, validate func(), layout Layout) *fragment {
	return &fragment{
		id:       "covid_" + strings.ReplaceAll(uuid.New().String(), "-", ""),
		chart:    chart,
		validate: validate,
		layout:   layout,
	}
}

func (f *fragment) patch(p ...patch) {
	f.patches = append(f.patches, p...)
}

// option returns the final chart option as generic JSON values.
func (f *fragment) option() (map[string]interface{}, error) {
	f.validate()

	raw, err := json.Marshal(f.chart.JSON())
	if err != nil {
		return nil, fmt.Errorf("encode chart option: %w", err)
	}

	var option map[string]interface{}
	if err := json.Unmarshal(raw, &option); err != nil {
		return nil, fmt.Errorf("decode chart option: %w", err)
	}

	for _, p := range f.patches {
		p(option)
	}

	// round trip once more so patched values share the JSON types
	raw, err = json.Marshal(option)
	if err != nil {
		return nil, fmt.Errorf("encode chart option: %w", err)
	}
	option = nil
	if err := json.Unmarshal(raw, &option); err != nil {
		return nil, fmt.Errorf("decode chart option: %w", err)
	}
	return option, nil
}

func initOpts(layout Layout) opts.Initialization {
	return opts.Initialization{
		Width:           layout.Width,
		Height:          fmt.Sprintf("%dpx", layout.Height),
		BackgroundColor: layout.Background,
		Theme:           layout.Theme,
		AssetsHost:      AssetsHost,
	}
}

func gridOpts(m Margin) opts.Grid {
	return opts.Grid{
		Top:          strconv.Itoa(m.Top),
		Left:         strconv.Itoa(m.Left),
		Right:        strconv.Itoa(m.Right),
		Bottom:       strconv.Itoa(m.Bottom),
		ContainLabel: true,
	}
}

func layoutPatches(layout Layout) []patch {
	patches := []patch{
		setKey(layout.Background, "backgroundColor"),
	}
	if layout.FontColor != "" {
		patches = append(patches, setKey(layout.FontColor, "textStyle", "color"))
	}
	return patches
}

// jsFuncMarker matches the quoting go-echarts puts around inline functions
// created with opts.FuncOpts.
var jsFuncMarker = regexp.MustCompile(`(__f__")|("__f__)|(__f__)`)

var fragmentTpl = template.Must(template.New("fragment").Parse(`
<div id="{{ .ID }}" class="covid-chart" style="width:{{ .Width }};height:{{ .Height }}px;"></div>
{{- range .Assets }}
<script type="text/javascript" src="{{ . }}"></script>
{{- end }}
<script type="text/javascript">
"use strict";
(function () {
{{- range .Prelude }}
{{ . }}
{{- end }}
var chart = echarts.init(document.getElementById({{ .ID }}), {{ .Theme }});
chart.setOption({{ .Option }});
{{- range .Scripts }}
{{ . }}
{{- end }}
window.addEventListener("resize", function () { chart.resize(); });
})();
</script>
`))

// render writes the fragment.
func (f *fragment) render() (Markup, error) {
	option, err := f.option()
	if err != nil {
		return "", err
	}

	optionJSON, err := json.Marshal(option)
	if err != nil {
		return "", fmt.Errorf("encode chart option: %w", err)
	}
	optionJS := jsFuncMarker.ReplaceAllString(string(optionJSON), "")

	var assets []string
	if f.layout.IncludeAssets {
		assets = f.chart.JSAssets.Values
	}

	var buf bytes.Buffer
	err = fragmentTpl.Execute(&buf, struct {
		ID      string
		Width   string
		Height  int
		Theme   string
		Assets  []string
		Prelude []template.JS
		Option  template.JS
		Scripts []template.JS
	}{
		ID:      f.id,
		Width:   f.layout.Width,
		Height:  f.layout.Height,
		Theme:   f.layout.Theme,
		Assets:  assets,
		Prelude: f.prelude,
		Option:  template.JS(optionJS),
		Scripts: f.scripts,
	})
	if err != nil {
		return "", fmt.Errorf("render chart fragment: %w", err)
	}

	return Markup(buf.String()), nil
}

// setPath stores value at the nested key path of a JSON object, creating
// intermediate objects. A numeric string step indexes into an array.
func setPath(obj map[string]interface{}, value interface{}, path ...string) {
	var cur interface{} = obj
	for i, key := range path {
		last := i == len(path)-1

		switch node := cur.(type) {
		case map[string]interface{}:
			if last {
				node[key] = value
				return
			}
			next, ok := node[key]
			if !ok || next == nil {
				next = map[string]interface{}{}
				node[key] = next
			}
			cur = next
		case []interface{}:
			var idx int
			if _, err := fmt.Sscanf(key, "%d", &idx); err != nil || idx < 0 || idx >= len(node) {
				return
			}
			if last {
				node[idx] = value
				return
			}
			cur = node[idx]
		default:
			return
		}
	}
}

func setKey(value interface{}, path ...string) patch {
	return func(option map[string]interface{}) {
		setPath(option, value, path...)
	}
}

// jsJSON encodes a Go value as a JavaScript literal.
func jsJSON(v interface{}) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}
