package chart

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-charts/schema"
)

func cumulative(i int) map[string]float64 {
	return map[string]float64{
		schema.ColumnConfirmed: float64(100 * (i + 1)),
		schema.ColumnDeaths:    float64(3 * (i + 1)),
		schema.ColumnRecovered: float64(20 * i),
	}
}

func TestGlobalTrendSeries(t *testing.T) {
	table := dailyTable(t, 30, cumulative)

	f, err := newGlobalTrend(table, DefaultTrendConfig(), NewLabels("en"))
	assert.Nil(t, err, "wrong newGlobalTrend")

	option := optionOf(t, f)
	assert.Equal(t, []string{"Confirmed", "Deaths", "Recovered"}, seriesNames(t, option))

	for _, s := range seriesOf(t, option) {
		assert.Equal(t, "line", s["type"])
		assert.Len(t, s["data"], 30)
		assert.Equal(t, false, s["showSymbol"])
	}

	yAxis := option["yAxis"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "log", yAxis["type"])

	legend := option["legend"].(map[string]interface{})
	assert.Equal(t, false, legend["show"])
	assert.Equal(t, "rgba(0,0,0,0)", option["backgroundColor"])
}

func TestGlobalTrendLocalizedSeries(t *testing.T) {
	table := dailyTable(t, 3, cumulative)

	f, err := newGlobalTrend(table, DefaultTrendConfig(), NewLabels("zh-TW"))
	assert.Nil(t, err, "wrong newGlobalTrend")
	assert.Equal(t, "確診", seriesNames(t, optionOf(t, f))[0])
}

func TestGlobalTrendScaleOnlyChangesAxis(t *testing.T) {
	table := dailyTable(t, 30, cumulative)

	logCfg := DefaultTrendConfig()
	linearCfg := DefaultTrendConfig()
	linearCfg.Scale = Linear

	logChart, err := newGlobalTrend(table, logCfg, NewLabels("en"))
	assert.Nil(t, err)
	linearChart, err := newGlobalTrend(table, linearCfg, NewLabels("en"))
	assert.Nil(t, err)

	logOption := optionOf(t, logChart)
	linearOption := optionOf(t, linearChart)

	assert.Equal(t, "log", logOption["yAxis"].([]interface{})[0].(map[string]interface{})["type"])
	assert.Equal(t, "value", linearOption["yAxis"].([]interface{})[0].(map[string]interface{})["type"])
	assert.Equal(t, logOption["series"], linearOption["series"], "series data changed with the scale")
	assert.Equal(t, logOption["xAxis"], linearOption["xAxis"])
}

func TestGlobalTrendToggle(t *testing.T) {
	table := dailyTable(t, 3, cumulative)

	markup, err := GlobalTrend(table, DefaultTrendConfig(), NewLabels("en"))
	assert.Nil(t, err, "wrong GlobalTrend")
	assert.True(t, strings.Contains(string(markup), "covid-scale-toggle"), "toggle missing")
	assert.True(t, strings.Contains(string(markup), "Logarithmic"), "toggle label missing")

	cfg := DefaultTrendConfig()
	cfg.Toggle = nil
	markup, err = GlobalTrend(table, cfg, NewLabels("en"))
	assert.Nil(t, err, "wrong GlobalTrend")
	assert.False(t, strings.Contains(string(markup), "covid-scale-toggle"), "toggle without modes")
}

func TestGlobalTrendMissingColumn(t *testing.T) {
	table := dailyTable(t, 3, func(i int) map[string]float64 {
		return map[string]float64{
			schema.ColumnConfirmed: 1,
			schema.ColumnDeaths:    1,
		}
	})

	_, err := GlobalTrend(table, DefaultTrendConfig(), NewLabels("en"))
	assert.True(t, errors.Is(err, schema.ErrMissingColumn), "wrong error")
	assert.Contains(t, err.Error(), schema.ColumnRecovered)
}

func TestGlobalTrendRaggedColumn(t *testing.T) {
	table := dailyTable(t, 3, cumulative)
	table.Columns[schema.ColumnDeaths] = table.Columns[schema.ColumnDeaths][:2]

	assert.NotPanics(t, func() {
		_, err := GlobalTrend(table, DefaultTrendConfig(), NewLabels("en"))
		assert.True(t, errors.Is(err, schema.ErrRaggedColumn), "wrong error")
		assert.Contains(t, err.Error(), schema.ColumnDeaths)
	})
}

func TestGlobalTrendEmptyTable(t *testing.T) {
	_, err := GlobalTrend(schema.Table{}, DefaultTrendConfig(), NewLabels("en"))
	assert.True(t, errors.Is(err, schema.ErrEmptyTable), "wrong error")
}
