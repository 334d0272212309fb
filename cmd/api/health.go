package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingResponse reports liveness and where the widget's state machine stands
type PingResponse struct {
	Message string `json:"message" example:"pong"`
	Widget  string `json:"widget" example:"ready"` // idle, loading, ready or failed
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the API is running and report the widget state
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
		Widget:  app.widget.Snapshot().State.String(),
	})
}
