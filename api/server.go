package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/covid-charts/chart"
	"github.com/bitmark-inc/covid-charts/logmodule"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// chart builders for fragments and for the dashboard page
	charts    *chart.Builder
	dashboard *chart.Builder
}

// NewServer new instance of server
func NewServer(charts *chart.Builder) *Server {
	return &Server{
		charts:    charts,
		dashboard: charts.WithoutAssets(),
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	chartRoute := r.Group("/charts")
	chartRoute.Use(logmodule.Ginrus("Chart"))
	chartRoute.Use(cors.New(cors.Config{
		AllowMethods:    []string{"GET"},
		AllowHeaders:    []string{"Origin"},
		ExposeHeaders:   []string{"Content-Length"},
		AllowAllOrigins: true,
		MaxAge:          12 * time.Hour,
	}))
	{
		chartRoute.GET("/global-growth", s.globalGrowth)
		chartRoute.GET("/daily-growth", s.dailyGrowth)
		chartRoute.GET("/world-map", s.worldMap)
		chartRoute.GET("/usa-map", s.usaMap)
		// preflight requests are answered by the cors middleware
		chartRoute.OPTIONS("/*chart", func(*gin.Context) {})
	}

	pageRoute := r.Group("/")
	pageRoute.Use(logmodule.Ginrus("Page"))
	{
		pageRoute.GET("", s.dashboardPage)
	}

	r.GET("/information", s.information)
	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"charts": []string{
				"/charts/global-growth",
				"/charts/daily-growth",
				"/charts/world-map",
				"/charts/usa-map",
			},
			"languages":      []string{"en", "zh-TW"},
			"system_version": "COVID Charts 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
