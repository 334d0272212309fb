package main

import (
	"errors"
	"net/http"
	"strconv"

	"clima/internal/conditions"
	"clima/internal/weather"

	"github.com/gin-gonic/gin"
)

// GetWeatherByCityInput defines the query parameters for the city weather endpoint
type GetWeatherByCityInput struct {
	City string `form:"city" binding:"required"` // City name, optionally "City,CC"
}

// GetWeatherByCoordsInput defines the query parameters for the coordinate weather endpoint
type GetWeatherByCoordsInput struct {
	Latitude  *float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude *float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
}

// ConditionResponse describes how a condition code is classified and drawn
type ConditionResponse struct {
	Code     int    `json:"code" example:"500"`
	Category string `json:"category" example:"rain"`
	Icon     string `json:"icon" example:"🌧️"`
}

// handleGetWeatherByCity godoc
// @Summary Get current weather for a city
// @Description Retrieve current conditions for a city name, with the condition category and glyph
// @Tags weather
// @Produce json
// @Param city query string true "City name" example(Bogotá)
// @Success 200 {object} weather.Record
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/weather [get]
func (app *App) handleGetWeatherByCity(c *gin.Context) {
	var input GetWeatherByCityInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := app.weatherService.FetchByCity(c.Request.Context(), input.City)
	if err != nil {
		app.writeWeatherError(c, err, "city", input.City)
		return
	}

	c.JSON(http.StatusOK, record)
}

// handleGetWeatherByCoords godoc
// @Summary Get current weather for coordinates
// @Description Retrieve current conditions for a latitude and longitude
// @Tags weather
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(4.6097)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(-74.0817)
// @Success 200 {object} weather.Record
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/weather/coords [get]
func (app *App) handleGetWeatherByCoords(c *gin.Context) {
	var input GetWeatherByCoordsInput

	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := app.weatherService.FetchByCoords(c.Request.Context(), *input.Latitude, *input.Longitude)
	if err != nil {
		app.writeWeatherError(c, err, "latitude", *input.Latitude, "longitude", *input.Longitude)
		return
	}

	c.JSON(http.StatusOK, record)
}

// handleGetCondition godoc
// @Summary Classify a condition code
// @Description Map a weather condition code to its category and display glyph
// @Tags weather
// @Produce json
// @Param code path int true "Condition code" example(500)
// @Success 200 {object} ConditionResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/conditions/{code} [get]
func (app *App) handleGetCondition(c *gin.Context) {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "condition code must be an integer"})
		return
	}

	category := conditions.Classify(code)
	c.JSON(http.StatusOK, ConditionResponse{
		Code:     code,
		Category: category.String(),
		Icon:     conditions.Icon(category),
	})
}

// writeWeatherError maps weather service errors to HTTP statuses
func (app *App) writeWeatherError(c *gin.Context, err error, attrs ...any) {
	switch {
	case errors.Is(err, weather.ErrEmptyCity), errors.Is(err, weather.ErrInvalidCoordinates):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, weather.ErrLocationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
	default:
		// Everything else is an upstream failure
		app.logger.Error("failed to fetch weather", append(attrs, "error", err)...)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch weather"})
	}
}
