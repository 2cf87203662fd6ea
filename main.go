package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/covid-charts/api"
	"github.com/bitmark-inc/covid-charts/chart"
	"github.com/bitmark-inc/covid-charts/external/covid"
	"github.com/bitmark-inc/covid-charts/external/geojson"
	"github.com/bitmark-inc/covid-charts/utils"
)

const reportDateLayout = "2006-01-02"

var server *api.Server

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("covidcharts")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("http.timeout", 30*time.Second)
	viper.SetDefault("covid.report_lookback", 7)
	viper.SetDefault("geometry.url", geojson.DefaultCountiesURL)
	viper.SetDefault("chart.assets_host", chart.AssetsHost)
}

func covidConfig() covid.Config {
	config := covid.Config{
		TimeSeriesURL:  viper.GetString("covid.time_series_url"),
		DailyReportURL: viper.GetString("covid.daily_report_url"),
		NewCasesURL:    viper.GetString("covid.new_cases_url"),
		NewDeathsURL:   viper.GetString("covid.new_deaths_url"),
		ReportLookback: viper.GetInt("covid.report_lookback"),
	}

	if d := viper.GetString("covid.report_date"); d != "" {
		date, err := time.Parse(reportDateLayout, d)
		if err != nil {
			log.WithField("prefix", "init").Panicf("invalid covid.report_date %q: %s", d, err)
		}
		config.ReportDate = date
	}
	return config
}

// chartBuilder applies the per chart overrides on top of the defaults.
func chartBuilder(provider covid.Provider, boundaries geojson.Source) *chart.Builder {
	chart.AssetsHost = viper.GetString("chart.assets_host")

	b := chart.NewBuilder(provider, boundaries)
	overrides := map[string]*bool{
		"global_growth": &b.Trend.IncludeAssets,
		"daily_growth":  &b.Daily.IncludeAssets,
		"world_map":     &b.WorldMap.IncludeAssets,
		"usa_map":       &b.USMap.IncludeAssets,
	}
	for name, includeAssets := range overrides {
		key := "chart.include_assets." + name
		if viper.IsSet(key) {
			*includeAssets = viper.GetBool(key)
		}
	}
	return b
}

func main() {
	var configFile string

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown chart server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		sentry.Flush(5 * time.Second)
		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	utils.InitI18NBundle()
	log.WithField("prefix", "init").Info("Loaded i18n messages")

	httpClient := &http.Client{
		Timeout: viper.GetDuration("http.timeout"),
	}

	provider := covid.New(httpClient, covidConfig())
	boundaries := geojson.New(httpClient, viper.GetString("geometry.url"), viper.GetDuration("geometry.cache_ttl"))
	log.WithField("prefix", "init").Info("Initialized data sources")

	// Init http server
	server = api.NewServer(chartBuilder(provider, boundaries))
	log.WithField("prefix", "init").Info("Initialized http server")

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
