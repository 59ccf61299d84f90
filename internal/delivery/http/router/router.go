// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"timesheet/internal/delivery/http/middleware"
	"timesheet/internal/delivery/http/router/handler"
	"timesheet/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler    *handler.AccountHandler
	TeamMemberHandler *handler.TeamMemberHandler
	ClientHandler     *handler.ClientHandler
	ProjectHandler    *handler.ProjectHandler
	CategoryHandler   *handler.CategoryHandler
	ActivityHandler   *handler.ActivityHandler
	ReportHandler     *handler.ReportHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.AccountHandler.Register)
		authGroup.POST("/login", r.params.AccountHandler.Login)
	}

	// Everything below requires a valid bearer token.
	api := e.Group("/api")
	api.Use(r.params.AuthMiddleware.Authenticate)

	adminOnly := r.params.AuthMiddleware.RequireRole(entity.RoleAdmin.String())

	memberGroup := api.Group("/members")
	{
		memberGroup.GET("", r.params.TeamMemberHandler.List)
		memberGroup.GET("/:id", r.params.TeamMemberHandler.Get)
		memberGroup.PUT("/:id", r.params.TeamMemberHandler.Update, adminOnly)
		memberGroup.DELETE("/:id", r.params.TeamMemberHandler.Delete, adminOnly)
	}

	clientGroup := api.Group("/clients")
	{
		clientGroup.GET("", r.params.ClientHandler.List)
		clientGroup.GET("/:id", r.params.ClientHandler.Get)
		clientGroup.POST("", r.params.ClientHandler.Create, adminOnly)
		clientGroup.PUT("/:id", r.params.ClientHandler.Update, adminOnly)
		clientGroup.DELETE("/:id", r.params.ClientHandler.Delete, adminOnly)
	}

	projectGroup := api.Group("/projects")
	{
		projectGroup.GET("", r.params.ProjectHandler.List)
		projectGroup.GET("/:id", r.params.ProjectHandler.Get)
		projectGroup.POST("", r.params.ProjectHandler.Create, adminOnly)
		projectGroup.PUT("/:id", r.params.ProjectHandler.Update, adminOnly)
		projectGroup.DELETE("/:id", r.params.ProjectHandler.Delete, adminOnly)
	}

	categoryGroup := api.Group("/categories")
	{
		categoryGroup.GET("", r.params.CategoryHandler.List)
		categoryGroup.GET("/:id", r.params.CategoryHandler.Get)
		categoryGroup.POST("", r.params.CategoryHandler.Create, adminOnly)
		categoryGroup.PUT("/:id", r.params.CategoryHandler.Update, adminOnly)
		categoryGroup.DELETE("/:id", r.params.CategoryHandler.Delete, adminOnly)
	}

	activityGroup := api.Group("/activities")
	{
		activityGroup.GET("", r.params.ActivityHandler.List)
		activityGroup.GET("/:id", r.params.ActivityHandler.Get)
		activityGroup.POST("", r.params.ActivityHandler.Create)
		activityGroup.PUT("/:id", r.params.ActivityHandler.Update)
		activityGroup.DELETE("/:id", r.params.ActivityHandler.Delete)
	}

	api.GET("/reports", r.params.ReportHandler.Get)
}
