package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	v1 := app.router.Group("/api/v1")
	{
		v1.GET("/weather", app.handleGetWeatherByCity)
		v1.GET("/weather/coords", app.handleGetWeatherByCoords)
		v1.GET("/location", app.handleGetLocation)
		v1.GET("/conditions/:code", app.handleGetCondition)
	}

	// Widget page and its live state
	app.router.GET("/", app.handleWidgetPage)
	w := app.router.Group("/widget")
	{
		w.GET("", app.handleGetWidget)
		w.POST("/search", app.handleWidgetSearch)
		w.POST("/locate", app.handleWidgetLocate)
		w.GET("/ws", app.handleWidgetStream)
	}

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
