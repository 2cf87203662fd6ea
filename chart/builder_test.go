package chart_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-charts/chart"
	"github.com/bitmark-inc/covid-charts/mocks"
	"github.com/bitmark-inc/covid-charts/schema"
)

func worldTable(t *testing.T, columns ...string) schema.Table {
	index := []time.Time{
		time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 3, 2, 0, 0, 0, 0, time.UTC),
	}
	values := map[string][]float64{}
	for _, c := range columns {
		values[c] = []float64{1, 2}
	}

	table, err := schema.NewTable(index, values)
	assert.Nil(t, err)
	return table
}

func TestBuilderGlobalTrendChart(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProvider(ctl)
	s := mocks.NewMockSource(ctl)

	p.EXPECT().GlobalGrowth(gomock.Any()).
		Return(worldTable(t, schema.ColumnConfirmed, schema.ColumnDeaths, schema.ColumnRecovered), nil).
		Times(1)

	markup, err := chart.NewBuilder(p, s).GlobalTrendChart(context.Background(), "en")
	assert.Nil(t, err, "wrong GlobalTrendChart")
	assert.Contains(t, string(markup), `"name":"Recovered"`)
}

func TestBuilderDailyBarChart(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProvider(ctl)
	s := mocks.NewMockSource(ctl)

	p.EXPECT().DailyConfirmed(gomock.Any()).Return(worldTable(t, schema.ColumnWorld), nil).Times(1)
	p.EXPECT().DailyDeaths(gomock.Any()).Return(worldTable(t, schema.ColumnWorld), nil).Times(1)

	markup, err := chart.NewBuilder(p, s).DailyBarChart(context.Background(), "en")
	assert.Nil(t, err, "wrong DailyBarChart")
	assert.Contains(t, string(markup), "covid-range-selector")
}

func TestBuilderDailyBarChartUpstreamError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProvider(ctl)
	s := mocks.NewMockSource(ctl)

	upstream := errors.New("connection reset")
	p.EXPECT().DailyConfirmed(gomock.Any()).Return(schema.Table{}, upstream).Times(1)

	_, err := chart.NewBuilder(p, s).DailyBarChart(context.Background(), "en")
	assert.Equal(t, upstream, err)
}

func TestBuilderWorldScatterMap(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProvider(ctl)
	s := mocks.NewMockSource(ctl)

	p.EXPECT().DailyReport(gomock.Any()).Return([]schema.LocationReport{
		{CountryRegion: "France", CombinedKey: "France", Latitude: 46.22, Longitude: 2.21, Confirmed: 10},
	}, nil).Times(1)

	b := chart.NewBuilder(p, s)
	b.WorldMap.IncludeAssets = true
	markup, err := b.WorldScatterMap(context.Background(), "en")
	assert.Nil(t, err, "wrong WorldScatterMap")
	assert.Contains(t, string(markup), "maps/world.js")
}

func TestBuilderUSChoroplethMap(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProvider(ctl)
	s := mocks.NewMockSource(ctl)

	counties := make([]schema.CountyReport, 2400)
	for i := range counties {
		counties[i] = schema.CountyReport{FIPS: fmt.Sprintf("%05d", i+1), CasesPerCapita: 0.1}
	}

	p.EXPECT().USCounties(gomock.Any()).Return(counties, nil).Times(1)
	s.EXPECT().Counties(gomock.Any()).Return(schema.FeatureCollection{
		Type:     "FeatureCollection",
		Features: []schema.Feature{{Type: "Feature", ID: "00001"}},
	}, nil).Times(1)

	markup, err := chart.NewBuilder(p, s).USChoroplethMap(context.Background(), "en")
	assert.Nil(t, err, "wrong USChoroplethMap")
	assert.NotEmpty(t, markup)
	assert.NotContains(t, string(markup), `"name":"02312"`)
	assert.Contains(t, string(markup), `"name":"02311"`)
}

func TestBuilderUSChoroplethMapWithoutBoundaries(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProvider(ctl)
	s := mocks.NewMockSource(ctl)

	failure := errors.New("boundaries unavailable")
	p.EXPECT().USCounties(gomock.Any()).Return([]schema.CountyReport{{FIPS: "01001"}}, nil).Times(1)
	s.EXPECT().Counties(gomock.Any()).Return(schema.FeatureCollection{}, failure).Times(1)

	_, err := chart.NewBuilder(p, s).USChoroplethMap(context.Background(), "en")
	assert.Equal(t, failure, err)
}
