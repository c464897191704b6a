// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cliphub/internal/delivery/http/middleware"
	"cliphub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ConnectHandler *handler.ConnectHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	connectHandler *handler.ConnectHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		connectHandler: params.ConnectHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// The provider redirects the browser here; the pending flow is identified
	// by the flow cookie, not by a bearer token.
	e.GET("/connect/:platform/callback", r.connectHandler.Callback)

	// Account linking routes that require authentication
	connectGroup := e.Group("/connect")
	connectGroup.Use(r.authMiddleware.Authenticate)
	{
		connectGroup.GET("", r.connectHandler.List)
		connectGroup.GET("/:platform", r.connectHandler.Connect)
		connectGroup.DELETE("/:platform", r.connectHandler.Disconnect)
	}
}
