package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/covid-charts/external/covid"
	"github.com/bitmark-inc/covid-charts/external/geojson"
	"github.com/bitmark-inc/covid-charts/schema"
)

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1400: "chart data is malformed",
		1401: "data source is unavailable",
		1402: covid.ErrNoReportInRange.Error(),
	}

	errorInternalServer = errorJSON(999)

	errorChartData = errorJSON(1400)
	errorUpstream  = errorJSON(1401)
	errorNoReport  = errorJSON(1402)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// abortWithChartError maps an error of a chart build to its response.
// Unexpected errors are reported to sentry.
func abortWithChartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schema.ErrMissingColumn),
		errors.Is(err, schema.ErrEmptyTable),
		errors.Is(err, schema.ErrRaggedColumn):
		abortWithEncoding(c, http.StatusBadGateway, errorChartData, err)
	case errors.Is(err, covid.ErrNoReportInRange):
		abortWithEncoding(c, http.StatusNotFound, errorNoReport, err)
	case errors.Is(err, covid.ErrNotFound),
		errors.Is(err, covid.ErrResponseStatus),
		errors.Is(err, geojson.ErrResponseStatus),
		errors.Is(err, geojson.ErrNoFeature),
		errors.Is(err, context.DeadlineExceeded):
		abortWithEncoding(c, http.StatusBadGateway, errorUpstream, err)
	default:
		log.WithError(err).Error("build chart")
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		} else {
			sentry.CaptureException(err)
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}
