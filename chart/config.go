package chart

import "fmt"

// Visibility is the initial state of a series in the rendered chart.
type Visibility int

const (
	Shown Visibility = iota
	// HiddenByDefault series are drawn only after the user enables them from
	// the legend. Their data is still part of the chart.
	HiddenByDefault
)

func (v Visibility) String() string {
	switch v {
	case Shown:
		return "shown"
	case HiddenByDefault:
		return "hidden_by_default"
	default:
		return fmt.Sprintf("visibility(%d)", int(v))
	}
}

// AxisScale is the y-axis scale mode of a chart.
type AxisScale int

const (
	Log AxisScale = iota
	Linear
)

// axisType is the ECharts axis type for the scale.
func (s AxisScale) axisType() string {
	if s == Log {
		return "log"
	}
	return "value"
}

func (s AxisScale) labelID() string {
	if s == Log {
		return "chart_scale_log"
	}
	return "chart_scale_linear"
}

type Margin struct {
	Top    int
	Left   int
	Right  int
	Bottom int
}

// Layout holds the options shared by every chart type.
type Layout struct {
	Background string
	Theme      string
	FontColor  string
	Width      string
	Height     int
	Margin     Margin
	// IncludeAssets emits the charting runtime script tags with the fragment.
	// Pages that already load the runtime should turn it off.
	IncludeAssets bool
}

type SeriesStyle struct {
	Color      string
	Visibility Visibility
}

type LatLon struct {
	Lat float64
	Lon float64
}

type Basemap struct {
	AreaColor   string
	BorderColor string
}

// TrendConfig configures GlobalTrendChart.
type TrendConfig struct {
	Layout
	Scale      AxisScale
	Toggle     []AxisScale
	ShowGrid   bool
	ShowLegend bool
	LineWidth  float32
	Confirmed  SeriesStyle
	Deaths     SeriesStyle
	Recovered  SeriesStyle
}

// DailyConfig configures DailyBarChart.
type DailyConfig struct {
	Layout
	Stack      string
	GridColor  string
	LegendLeft string
	LegendTop  string
	Cases      SeriesStyle
	Deaths     SeriesStyle
	Presets    []RangePreset
}

// WorldMapConfig configures WorldScatterMap.
type WorldMapConfig struct {
	Layout
	Map       string
	Center    LatLon
	Zoom      float64
	Basemap   Basemap
	SizeRange [2]float64
	Ramp      Ramp
}

// USMapConfig configures USChoroplethMap.
type USMapConfig struct {
	Layout
	Map          string
	JoinProperty string
	Center       LatLon
	Zoom         float64
	Basemap      Basemap
	Opacity      float32
	LineWidth    float32
	Ramp         Ramp
	// ExcludedRows are positions in the county table dropped before
	// rendering.
	ExcludedRows []int
}

const (
	transparent = "rgba(0,0,0,0)"
	deathsColor = "#f5365c"
	fontColor   = "#8898aa"
	fullWidth   = "100%"

	anomalousCountyRow = 2311
)

func DefaultTrendConfig() TrendConfig {
	return TrendConfig{
		Layout: Layout{
			Background:    transparent,
			Theme:         "dark",
			FontColor:     fontColor,
			Width:         fullWidth,
			Height:        310,
			Margin:        Margin{Top: 0, Left: 10, Right: 10, Bottom: 0},
			IncludeAssets: true,
		},
		Scale:      Log,
		Toggle:     []AxisScale{Log, Linear},
		ShowGrid:   false,
		ShowLegend: false,
		LineWidth:  4,
		Confirmed:  SeriesStyle{Visibility: Shown},
		Deaths:     SeriesStyle{Color: deathsColor, Visibility: Shown},
		Recovered:  SeriesStyle{Visibility: Shown},
	}
}

func DefaultDailyConfig() DailyConfig {
	return DailyConfig{
		Layout: Layout{
			Background:    transparent,
			Theme:         "white",
			Width:         fullWidth,
			Height:        310,
			Margin:        Margin{Top: 0, Left: 15, Right: 10, Bottom: 0},
			IncludeAssets: true,
		},
		Stack:      "stack",
		GridColor:  "#fff",
		LegendLeft: "2.5%",
		LegendTop:  "0",
		Cases:      SeriesStyle{Visibility: HiddenByDefault},
		Deaths:     SeriesStyle{Color: deathsColor, Visibility: Shown},
		Presets:    DefaultPresets(),
	}
}

func DefaultWorldMapConfig() WorldMapConfig {
	return WorldMapConfig{
		Layout: Layout{
			Background: transparent,
			Theme:      "white",
			Width:      fullWidth,
			Height:     450,
		},
		Map:       "world",
		Center:    LatLon{Lat: 20.0, Lon: -20.0},
		Zoom:      1,
		Basemap:   Basemap{AreaColor: "#e8e8e8", BorderColor: "#ffffff"},
		SizeRange: [2]float64{4, 40},
		Ramp: Ramp{
			{Offset: 0, Color: "#0d0887"},
			{Offset: 0.5, Color: "#cc4778"},
			{Offset: 1, Color: "#f0f921"},
		},
	}
}

func DefaultUSMapConfig() USMapConfig {
	return USMapConfig{
		Layout: Layout{
			Background:    transparent,
			Theme:         "white",
			Width:         fullWidth,
			Height:        450,
			IncludeAssets: true,
		},
		Map:          "us-counties",
		JoinProperty: "fips",
		Center:       LatLon{Lat: 37.0902, Lon: -95.7129},
		Zoom:         2.75,
		Basemap:      Basemap{AreaColor: "#e8e8e8", BorderColor: "#ffffff"},
		Opacity:      0.8,
		LineWidth:    0,
		Ramp: Ramp{
			{Offset: 0, Color: "#FFE9E6"},
			{Offset: 0.15, Color: "#DA3A03"},
			{Offset: 0.5, Color: "#331112"},
			// the last stop of this ramp has never had a colour
			{Offset: 1.0, Color: ""},
		},
		ExcludedRows: []int{anomalousCountyRow},
	}
}
