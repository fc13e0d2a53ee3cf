// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"snaptext/internal/delivery/http/middleware"
	"snaptext/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	HistoryHandler      *handler.HistoryHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	ErrorMiddleware     *middleware.ErrorMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	historyHandler *handler.HistoryHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		historyHandler: params.HistoryHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// History routes, scoped to the authenticated account
	historyGroup := e.Group("/history")
	historyGroup.Use(r.authMiddleware.Authenticate)
	{
		historyGroup.POST("", r.historyHandler.Submit)
		historyGroup.GET("", r.historyHandler.List)
		historyGroup.DELETE("/:id", r.historyHandler.Delete)
	}

	// Admin console routes. The admin check runs before any resource
	// lookup, so non-admins get 403 even for IDs that do not exist.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/accounts", r.adminHandler.ListAccounts)
		adminGroup.DELETE("/accounts/:id", r.adminHandler.DeleteAccount)
		adminGroup.GET("/approvals/pending", r.adminHandler.ListPending)
		adminGroup.PUT("/approvals/:id/approve", r.adminHandler.Approve)
		adminGroup.PUT("/approvals/:id/reject", r.adminHandler.Reject)
	}
}
