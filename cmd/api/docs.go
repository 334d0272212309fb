package main

// @title Clima API
// @version 1.0
// @description Current weather widget: city search, device geolocation and a live-updating view.

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8080
// @BasePath /
