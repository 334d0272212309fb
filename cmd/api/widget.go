package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"clima/internal/location"
	"clima/internal/widget"

	"github.com/gin-gonic/gin"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const defaultWriteTimeout = 5 * time.Second

// SearchRequest is a city typed into the widget's search field
type SearchRequest struct {
	Query string `json:"query" example:"Quito"`
}

// LocateRequest is the browser's geolocation reading: a position, or the reason there is none
type LocateRequest struct {
	Latitude    *float64 `json:"latitude,omitempty" example:"-0.1807"`
	Longitude   *float64 `json:"longitude,omitempty" example:"-78.4678"`
	Error       string   `json:"error,omitempty" example:"User denied Geolocation"`
	Unsupported bool     `json:"unsupported,omitempty"`
}

// handleWidgetPage renders the widget HTML for the current state
func (app *App) handleWidgetPage(c *gin.Context) {
	c.HTML(http.StatusOK, widget.PageTemplate, app.widget.Snapshot().View())
}

// handleGetWidget godoc
// @Summary Get the widget view
// @Description Current widget state rendered into display strings
// @Tags widget
// @Produce json
// @Success 200 {object} widget.View
// @Router /widget [get]
func (app *App) handleGetWidget(c *gin.Context) {
	c.JSON(http.StatusOK, app.widget.Snapshot().View())
}

// handleWidgetSearch godoc
// @Summary Search a city
// @Description Fetch weather for a city; blank queries are rejected and change nothing
// @Tags widget
// @Accept json
// @Produce json
// @Param request body SearchRequest true "City query"
// @Success 202 {object} widget.View
// @Failure 400 {object} map[string]string
// @Router /widget/search [post]
func (app *App) handleWidgetSearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !app.widget.Search(req.Query) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is empty"})
		return
	}

	c.JSON(http.StatusAccepted, app.widget.Snapshot().View())
}

// handleWidgetLocate godoc
// @Summary Use the device position
// @Description Fetch weather for the browser's geolocation reading. A failed reading raises an alert and keeps the current record.
// @Tags widget
// @Accept json
// @Produce json
// @Param request body LocateRequest true "Geolocation reading"
// @Success 202 {object} widget.View
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /widget/locate [post]
func (app *App) handleWidgetLocate(c *gin.Context) {
	var req LocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sensor := widget.ReportedPosition{
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Error:       req.Error,
		Unsupported: req.Unsupported,
	}

	if err := app.widget.Locate(c.Request.Context(), sensor); err != nil {
		switch {
		case errors.Is(err, widget.ErrSensorUnsupported), errors.Is(err, widget.ErrSensorFailed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": app.widget.Snapshot().Alert})
		case errors.Is(err, location.ErrInvalidLatitude), errors.Is(err, location.ErrInvalidLongitude):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "widget is shutting down"})
		}
		return
	}

	c.JSON(http.StatusAccepted, app.widget.Snapshot().View())
}

// handleWidgetStream pushes every widget state change to the browser as view JSON
func (app *App) handleWidgetStream(c *gin.Context) {
	updates, unsubscribe := app.widget.Subscribe()
	defer unsubscribe()

	conn, err := websocket.Accept(c.Writer, c.Request, nil)
	if err != nil {
		app.logger.Warn("websocket accept failed", "error", err)
		return
	}
	defer conn.CloseNow()

	ctx := conn.CloseRead(c.Request.Context())
	for {
		select {
		case snap, ok := <-updates:
			if !ok {
				_ = conn.Close(websocket.StatusGoingAway, "server shutting down")
				return
			}
			if err := app.writeView(ctx, conn, snap.View()); err != nil {
				app.logger.Debug("websocket write failed", "error", err)
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func (app *App) writeView(ctx context.Context, conn *websocket.Conn, view widget.View) error {
	timeout := app.cfg.Widget.WriteTimeout
	if timeout <= 0 {
		timeout = defaultWriteTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return wsjson.Write(ctx, conn, view)
}
