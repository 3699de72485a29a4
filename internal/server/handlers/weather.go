package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/skyreport/skyreport/internal/metrics"
	"github.com/skyreport/skyreport/internal/server/utils"
	"github.com/skyreport/skyreport/internal/weather"
)

type WeatherHandler struct {
	provider weather.Provider
	logger   *zap.Logger
}

func NewWeatherHandler(provider weather.Provider, logger *zap.Logger) *WeatherHandler {
	return &WeatherHandler{
		provider: provider,
		logger:   logger,
	}
}

// GetWeather serves one city lookup: current conditions first, then the
// forecast. When the current-conditions call fails the forecast is never
// fetched; when only the forecast fails, current weather is still returned
// with a forecast_error note.
func (h *WeatherHandler) GetWeather(c *gin.Context) {
	ctx := utils.GetContextFromGinContext(c)
	requestID := utils.GetRequestIDFromGinContext(c)

	reqLogger := h.logger.With(zap.String("request_id", requestID))

	var req WeatherRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		reqLogger.Warn("Invalid request parameters", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request parameters",
			Code:    "INVALID_PARAMS",
			Details: err.Error(),
		})
		return
	}

	if req.Units == "" {
		req.Units = string(weather.Metric)
	}

	if verrs := utils.ValidateStruct(req); verrs != nil {
		reqLogger.Warn("Request failed validation", zap.Any("errors", verrs))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request parameters",
			Code:    "INVALID_PARAMS",
			Details: verrs,
		})
		return
	}

	units := weather.Units(req.Units)

	reqLogger.Info("Processing weather lookup",
		zap.String("city", req.City),
		zap.String("units", req.Units))

	current, err := h.provider.Current(ctx, req.City, units)
	if err != nil {
		h.respondError(c, reqLogger, err)
		return
	}

	response := WeatherResponse{
		City:      current.City,
		Units:     req.Units,
		Current:   current,
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
	}

	forecast, err := h.provider.Forecast(ctx, req.City, units)
	if err != nil {
		reqLogger.Warn("Forecast lookup failed, returning current conditions only",
			zap.String("city", req.City),
			zap.Error(err))
		response.ForecastError = err.Error()
		metrics.LookupsTotal.WithLabelValues("partial").Inc()
	} else {
		response.Forecast = forecast
		metrics.LookupsTotal.WithLabelValues("ok").Inc()
	}

	reqLogger.Info("Weather lookup completed",
		zap.String("city", current.City),
		zap.Int("forecast_points", len(response.Forecast)))

	c.JSON(http.StatusOK, response)
}

func (h *WeatherHandler) respondError(c *gin.Context, logger *zap.Logger, err error) {
	kind := weather.KindOf(err)
	metrics.LookupsTotal.WithLabelValues(kind.String()).Inc()

	switch kind {
	case weather.KindNotFound:
		logger.Info("City not found", zap.Error(err))
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: err.Error(),
			Code:  "CITY_NOT_FOUND",
		})
	case weather.KindParse:
		logger.Error("Provider payload failed normalization", zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error: err.Error(),
			Code:  "PROVIDER_PARSE_ERROR",
		})
	case weather.KindTransport:
		logger.Error("Provider request failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error: err.Error(),
			Code:  "PROVIDER_UNAVAILABLE",
		})
	default:
		logger.Error("Weather lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Failed to fetch weather data",
			Code:  "INTERNAL_ERROR",
		})
	}
}
