// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/communityconnect/community-wifi/internal/handler"
)

// RegisterRoutes maps the JSON API onto the provided Echo instance.
// Every endpoint is public; the API carries no authentication.
func RegisterRoutes(e *echo.Echo, ap *handler.AccessPointHandler, bookings *handler.BookingHandler, stats *handler.StatsHandler) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	api := e.Group("/api")
	api.GET("/access-points", ap.List)
	api.POST("/access-points", ap.Create)
	api.GET("/bookings", bookings.List)
	api.POST("/bookings", bookings.Create)
	api.GET("/stats", stats.Get)
}

// RegisterStatic serves the browser client (map, lists, and the
// offline demo fixture) from the given directory, with index.html at
// the root.
func RegisterStatic(e *echo.Echo, dir string) {
	e.Static("/", dir)
}
