// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wishlist/internal/delivery/http/middleware"
	"wishlist/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	WishHandler    *handler.WishHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	wishHandler    *handler.WishHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		wishHandler:    params.WishHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Every route is mounted twice: unversioned and under /api/v1, so clients
// written against either prefix keep working.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	r.registerAPIRoutes(e.Group(""))
	r.registerAPIRoutes(e.Group("/api/v1"))
}

func (r *router) registerAPIRoutes(g *echo.Group) {
	// Auth routes
	authGroup := g.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Account routes that require authentication
	userGroup := g.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate) // Apply bearer authentication middleware
	{
		userGroup.GET("/me", r.userHandler.GetProfile)
		userGroup.PATCH("/me", r.userHandler.UpdateProfile)
		userGroup.DELETE("/me", r.userHandler.DeleteAccount)
	}

	// Wish routes that require authentication
	wishGroup := g.Group("/wishes")
	wishGroup.Use(r.authMiddleware.Authenticate)
	{
		wishGroup.POST("", r.wishHandler.Create)
		wishGroup.GET("", r.wishHandler.List)
		wishGroup.GET("/:id", r.wishHandler.Get)
		wishGroup.PATCH("/:id", r.wishHandler.Update)
		wishGroup.DELETE("/:id", r.wishHandler.Delete)
	}
}
