package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/covid-charts/chart"
)

const htmlContentType = "text/html; charset=utf-8"

type chartFunc func(ctx context.Context, lang string) (chart.Markup, error)

// language picks the label language from `lang` and then Accept-Language.
func language(c *gin.Context) string {
	if lang := c.Query("lang"); lang != "" {
		return lang
	}
	if lang := c.GetHeader("Accept-Language"); lang != "" {
		return lang
	}
	return "en"
}

func (s *Server) renderChart(c *gin.Context, build chartFunc) {
	markup, err := build(c.Request.Context(), language(c))
	if err != nil {
		abortWithChartError(c, err)
		return
	}

	c.Data(http.StatusOK, htmlContentType, []byte(markup))
}

func (s *Server) globalGrowth(c *gin.Context) {
	s.renderChart(c, s.charts.GlobalTrendChart)
}

func (s *Server) dailyGrowth(c *gin.Context) {
	s.renderChart(c, s.charts.DailyBarChart)
}

func (s *Server) worldMap(c *gin.Context) {
	s.renderChart(c, s.charts.WorldScatterMap)
}

func (s *Server) usaMap(c *gin.Context) {
	s.renderChart(c, s.charts.USChoroplethMap)
}
