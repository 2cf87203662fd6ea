package covid

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/bitmark-inc/covid-charts/schema"
)

const (
	owidDateColumn = "date"
	owidDateLayout = "2006-01-02"
)

func (p *provider) DailyConfirmed(ctx context.Context) (schema.Table, error) {
	return p.dailyTable(ctx, p.config.NewCasesURL)
}

func (p *provider) DailyDeaths(ctx context.Context) (schema.Table, error) {
	return p.dailyTable(ctx, p.config.NewDeathsURL)
}

func (p *provider) dailyTable(ctx context.Context, url string) (schema.Table, error) {
	data, err := p.fetch(ctx, url)
	if err != nil {
		return schema.Table{}, err
	}
	return parseDailyTable(data)
}

// parseDailyTable reads a wide file with one date column and one column of
// new counts per region. Empty cells count as zero.
func parseDailyTable(data []byte) (schema.Table, error) {
	rows, err := gocsv.CSVToMaps(strings.NewReader(string(data)))
	if err != nil {
		return schema.Table{}, err
	}

	type dated struct {
		date time.Time
		row  map[string]string
	}

	sorted := make([]dated, 0, len(rows))
	for _, row := range rows {
		raw, ok := row[owidDateColumn]
		if !ok {
			return schema.Table{}, fmt.Errorf("%w: %s", schema.ErrMissingColumn, owidDateColumn)
		}
		date, err := time.Parse(owidDateLayout, raw)
		if err != nil {
			return schema.Table{}, fmt.Errorf("invalid date %q: %w", raw, err)
		}
		sorted = append(sorted, dated{date: date, row: row})
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].date.Before(sorted[j].date)
	})

	index := make([]time.Time, len(sorted))
	columns := map[string][]float64{}
	for i, d := range sorted {
		index[i] = d.date
		for header, raw := range d.row {
			if header == owidDateColumn {
				continue
			}

			values, ok := columns[header]
			if !ok {
				values = make([]float64, len(sorted))
				columns[header] = values
			}
			if raw == "" {
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return schema.Table{}, fmt.Errorf("column %s: %w", header, err)
			}
			values[i] = v
		}
	}

	return schema.NewTable(index, columns)
}
