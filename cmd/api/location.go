package main

import (
	"errors"
	"net/http"

	"clima/internal/location"

	"github.com/gin-gonic/gin"
)

// handleGetLocation godoc
// @Summary Get the server's IP-based location
// @Description Resolve the default city the widget starts with from the public IP address
// @Tags location
// @Produce json
// @Success 200 {object} location.Location
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/location [get]
func (app *App) handleGetLocation(c *gin.Context) {
	loc, err := app.locationService.LocateByIP(c.Request.Context())
	if err != nil {
		if errors.Is(err, location.ErrLocationUnavailable) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		app.logger.Error("failed to locate by IP", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to determine location"})
		return
	}

	c.JSON(http.StatusOK, loc)
}
