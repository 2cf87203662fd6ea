package chart

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-charts/external/covid"
	"github.com/bitmark-inc/covid-charts/external/geojson"
)

// Builder fetches fresh data for every call and renders it into markup. It
// holds no state besides its configuration.
type Builder struct {
	provider   covid.Provider
	boundaries geojson.Source

	Trend    TrendConfig
	Daily    DailyConfig
	WorldMap WorldMapConfig
	USMap    USMapConfig
}

func NewBuilder(provider covid.Provider, boundaries geojson.Source) *Builder {
	return &Builder{
		provider:   provider,
		boundaries: boundaries,
		Trend:      DefaultTrendConfig(),
		Daily:      DefaultDailyConfig(),
		WorldMap:   DefaultWorldMapConfig(),
		USMap:      DefaultUSMapConfig(),
	}
}

// WithoutAssets returns a copy of the builder for pages that load the
// charting runtime themselves.
func (b *Builder) WithoutAssets() *Builder {
	c := *b
	c.Trend.IncludeAssets = false
	c.Daily.IncludeAssets = false
	c.WorldMap.IncludeAssets = false
	c.USMap.IncludeAssets = false
	return &c
}

// GlobalTrendChart renders the cumulative world totals.
func (b *Builder) GlobalTrendChart(ctx context.Context, lang string) (Markup, error) {
	table, err := b.provider.GlobalGrowth(ctx)
	if err != nil {
		return "", err
	}
	return GlobalTrend(table, b.Trend, NewLabels(lang))
}

// DailyBarChart renders the daily new world cases and deaths.
func (b *Builder) DailyBarChart(ctx context.Context, lang string) (Markup, error) {
	cases, err := b.provider.DailyConfirmed(ctx)
	if err != nil {
		return "", err
	}

	deaths, err := b.provider.DailyDeaths(ctx)
	if err != nil {
		return "", err
	}

	return DailyGrowth(cases, deaths, b.Daily, NewLabels(lang))
}

// WorldScatterMap renders the confirmed count of every reporting location.
func (b *Builder) WorldScatterMap(ctx context.Context, lang string) (Markup, error) {
	reports, err := b.provider.DailyReport(ctx)
	if err != nil {
		return "", err
	}
	return WorldScatter(reports, b.WorldMap, NewLabels(lang))
}

// USChoroplethMap renders the cases per capita of US counties.
func (b *Builder) USChoroplethMap(ctx context.Context, lang string) (Markup, error) {
	counties, err := b.provider.USCounties(ctx)
	if err != nil {
		return "", err
	}

	fc, err := b.boundaries.Counties(ctx)
	if err != nil {
		return "", err
	}

	log.WithFields(log.Fields{
		"prefix":   logPrefix,
		"counties": len(counties),
		"features": len(fc.Features),
	}).Debug("render usa map")
	return USChoropleth(counties, fc, b.USMap, NewLabels(lang))
}
