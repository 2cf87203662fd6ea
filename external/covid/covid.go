package covid

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-charts/schema"
)

const (
	logPrefix = "covid"

	defaultTimeSeriesURL  = "https://raw.githubusercontent.com/CSSEGISandData/COVID-19/master/csse_covid_19_data/csse_covid_19_time_series"
	defaultDailyReportURL = "https://raw.githubusercontent.com/CSSEGISandData/COVID-19/master/csse_covid_19_data/csse_covid_19_daily_reports"
	defaultNewCasesURL    = "https://covid.ourworldindata.org/data/ecdc/new_cases.csv"
	defaultNewDeathsURL   = "https://covid.ourworldindata.org/data/ecdc/new_deaths.csv"
	defaultLookback       = 7
)

var (
	ErrNotFound        = errors.New("data file not found")
	ErrResponseStatus  = errors.New("unexpected response status")
	ErrNoReportInRange = errors.New("no daily report in lookback range")
)

// Provider retrieves the tables the charts are drawn from. Every call fetches
// fresh data.
type Provider interface {
	GlobalGrowth(ctx context.Context) (schema.Table, error)
	DailyConfirmed(ctx context.Context) (schema.Table, error)
	DailyDeaths(ctx context.Context) (schema.Table, error)
	DailyReport(ctx context.Context) ([]schema.LocationReport, error)
	USCounties(ctx context.Context) ([]schema.CountyReport, error)
}

type Config struct {
	TimeSeriesURL  string
	DailyReportURL string
	NewCasesURL    string
	NewDeathsURL   string
	// ReportDate pins the daily report. When zero the newest report within
	// ReportLookback days of today is used.
	ReportDate     time.Time
	ReportLookback int
}

type provider struct {
	client *http.Client
	config Config
	now    func() time.Time
}

func New(client *http.Client, config Config) Provider {
	if config.TimeSeriesURL == "" {
		config.TimeSeriesURL = defaultTimeSeriesURL
	}
	if config.DailyReportURL == "" {
		config.DailyReportURL = defaultDailyReportURL
	}
	if config.NewCasesURL == "" {
		config.NewCasesURL = defaultNewCasesURL
	}
	if config.NewDeathsURL == "" {
		config.NewDeathsURL = defaultNewDeathsURL
	}
	if config.ReportLookback <= 0 {
		config.ReportLookback = defaultLookback
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &provider{
		client: client,
		config: config,
		now:    time.Now,
	}
}

var utf8BOM = []byte("\xef\xbb\xbf")

func (p *provider) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "error": err}).Error("get data file")
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	case resp.StatusCode != http.StatusOK:
		log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "status": resp.StatusCode}).Error("get data file")
		return nil, fmt.Errorf("%w: %d from %s", ErrResponseStatus, resp.StatusCode, url)
	}

	data, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "error": err}).Error("read data file response")
		return nil, err
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "bytes": len(data)}).Debug("fetched data file")
	return bytes.TrimPrefix(data, utf8BOM), nil
}
