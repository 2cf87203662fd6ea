package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/bitmark-inc/covid-charts/chart"
	"github.com/bitmark-inc/covid-charts/utils"
)

type panel struct {
	titleID string
	build   chartFunc
}

// dashboardPage renders every chart into one page. The runtime is loaded
// once in the head so the fragments are rendered without assets. A chart
// that fails is replaced by a notice and does not fail the page.
func (s *Server) dashboardPage(c *gin.Context) {
	lang := language(c)
	localizer := utils.NewLocalizer(lang)

	panels := []panel{
		{"dashboard_global_growth", s.dashboard.GlobalTrendChart},
		{"dashboard_daily_growth", s.dashboard.DailyBarChart},
		{"dashboard_world_map", s.dashboard.WorldScatterMap},
		{"dashboard_usa_map", s.dashboard.USChoroplethMap},
	}

	sections := make([]Node, 0, len(panels))
	for _, p := range panels {
		var content Node
		markup, err := p.build(c.Request.Context(), lang)
		if err != nil {
			log.WithError(err).WithField("chart", p.titleID).Error("render dashboard chart")
			content = P(Class("covid-chart-error"), Text(utils.Translate(localizer, "dashboard_unavailable")))
		} else {
			content = Raw(string(markup))
		}

		sections = append(sections, Section(
			Class("covid-panel"),
			H2(Text(utils.Translate(localizer, p.titleID))),
			content,
		))
	}

	title := utils.Translate(localizer, "dashboard_title")
	runtime := make([]Node, 0, len(chart.RuntimeAssets()))
	for _, src := range chart.RuntimeAssets() {
		runtime = append(runtime, Script(Src(src)))
	}

	page := HTML(
		Lang(utils.DocumentLanguage(lang)),
		Head(
			Meta(Charset("utf-8")),
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			TitleEl(Text(title)),
			Group(runtime),
		),
		Body(
			Main(
				H1(Text(title)),
				Group(sections),
			),
		),
	)

	c.Status(http.StatusOK)
	c.Header("Content-Type", htmlContentType)
	if err := Doctype(page).Render(c.Writer); err != nil {
		log.WithError(err).Error("write dashboard page")
	}
}
