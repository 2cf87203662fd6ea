package covid

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-charts/schema"
	"github.com/bitmark-inc/covid-charts/utils"
)

const (
	timeSeriesDateLayout  = "1/2/06"
	dailyReportDateLayout = "01-02-2006"
	countryUS             = "US"
	incidentRateBase      = 100000
)

// series file names of the global time series, keyed by column name
var timeSeriesFiles = map[string]string{
	schema.ColumnConfirmed: "time_series_covid19_confirmed_global.csv",
	schema.ColumnDeaths:    "time_series_covid19_deaths_global.csv",
	schema.ColumnRecovered: "time_series_covid19_recovered_global.csv",
}

type dailyReportRow struct {
	FIPS          string `csv:"FIPS"`
	CountryRegion string `csv:"Country_Region"`
	Lat           string `csv:"Lat"`
	Long          string `csv:"Long_"`
	Confirmed     string `csv:"Confirmed"`
	CombinedKey   string `csv:"Combined_Key"`
	IncidentRate  string `csv:"Incident_Rate"`
	// reports before November 2020 spell the column differently
	IncidenceRate string `csv:"Incidence_Rate"`
}

// GlobalGrowth sums the per region cumulative series into one world total per
// date. Only dates present in all three series are kept.
func (p *provider) GlobalGrowth(ctx context.Context) (schema.Table, error) {
	totals := make(map[string]map[time.Time]float64, len(timeSeriesFiles))
	for column, file := range timeSeriesFiles {
		data, err := p.fetch(ctx, p.config.TimeSeriesURL+"/"+file)
		if err != nil {
			return schema.Table{}, err
		}

		sums, err := sumByDate(data)
		if err != nil {
			return schema.Table{}, fmt.Errorf("parse %s: %w", file, err)
		}
		totals[column] = sums
	}

	var index []time.Time
	for date := range totals[schema.ColumnConfirmed] {
		shared := true
		for _, sums := range totals {
			if _, ok := sums[date]; !ok {
				shared = false
				break
			}
		}
		if shared {
			index = append(index, date)
		}
	}
	sort.Slice(index, func(i, j int) bool {
		return index[i].Before(index[j])
	})

	columns := make(map[string][]float64, len(totals))
	for column, sums := range totals {
		values := make([]float64, len(index))
		for i, date := range index {
			values[i] = sums[date]
		}
		columns[column] = values
	}

	return schema.NewTable(index, columns)
}

// sumByDate adds up every date column of a wide time series file.
func sumByDate(data []byte) (map[time.Time]float64, error) {
	rows, err := gocsv.CSVToMaps(strings.NewReader(string(data)))
	if err != nil {
		return nil, err
	}

	sums := map[time.Time]float64{}
	dates := map[string]time.Time{}
	for _, row := range rows {
		for header, raw := range row {
			date, ok := dates[header]
			if !ok {
				parsed, err := time.Parse(timeSeriesDateLayout, header)
				if err != nil {
					// region and coordinate columns
					continue
				}
				date = parsed
				dates[header] = date
			}

			if raw == "" {
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", header, err)
			}
			sums[date] += v
		}
	}
	return sums, nil
}

func (p *provider) dailyReportRows(ctx context.Context) ([]dailyReportRow, error) {
	var data []byte
	if !p.config.ReportDate.IsZero() {
		d, err := p.fetch(ctx, p.reportURL(p.config.ReportDate))
		if err != nil {
			return nil, err
		}
		data = d
	} else {
		today := p.now().UTC()
		for i := 0; i < p.config.ReportLookback && data == nil; i++ {
			d, err := p.fetch(ctx, p.reportURL(today.AddDate(0, 0, -i)))
			if errors.Is(err, ErrNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			data = d
		}
		if data == nil {
			return nil, fmt.Errorf("%w: %d days before %s", ErrNoReportInRange, p.config.ReportLookback, today.Format(dailyReportDateLayout))
		}
	}

	var rows []dailyReportRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("parse daily report: %w", err)
	}
	return rows, nil
}

func (p *provider) reportURL(date time.Time) string {
	return fmt.Sprintf("%s/%s.csv", p.config.DailyReportURL, date.Format(dailyReportDateLayout))
}

// DailyReport returns one row per reporting location with coordinates.
func (p *provider) DailyReport(ctx context.Context) ([]schema.LocationReport, error) {
	rows, err := p.dailyReportRows(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]schema.LocationReport, 0, len(rows))
	for _, r := range rows {
		if r.Lat == "" || r.Long == "" {
			continue
		}

		lat, errLat := strconv.ParseFloat(r.Lat, 64)
		lon, errLon := strconv.ParseFloat(r.Long, 64)
		if errLat != nil || errLon != nil {
			log.WithFields(log.Fields{"prefix": logPrefix, "key": r.CombinedKey}).Warn("skip location with invalid coordinates")
			continue
		}

		confirmed, _ := strconv.ParseFloat(r.Confirmed, 64)
		reports = append(reports, schema.LocationReport{
			CountryRegion: r.CountryRegion,
			CombinedKey:   r.CombinedKey,
			Latitude:      lat,
			Longitude:     lon,
			Confirmed:     confirmed,
		})
	}
	return reports, nil
}

// USCounties returns the per capita case rate of each US county in report
// order.
func (p *provider) USCounties(ctx context.Context) ([]schema.CountyReport, error) {
	rows, err := p.dailyReportRows(ctx)
	if err != nil {
		return nil, err
	}

	counties := make([]schema.CountyReport, 0, len(rows))
	for _, r := range rows {
		if r.CountryRegion != countryUS || r.FIPS == "" {
			continue
		}

		fips, err := utils.NormalizeFIPS(r.FIPS)
		if err != nil {
			continue
		}

		raw := r.IncidentRate
		if raw == "" {
			raw = r.IncidenceRate
		}
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil || rate < 0 {
			rate = 0
		}

		counties = append(counties, schema.CountyReport{
			FIPS:           fips,
			CasesPerCapita: rate / incidentRateBase,
		})
	}
	return counties, nil
}
