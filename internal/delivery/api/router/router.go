// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lingo/internal/delivery/api/middleware"
	"lingo/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler    *handler.AccountHandler
	ContentHandler    *handler.ContentHandler
	ProgressHandler   *handler.ProgressHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler    *handler.AccountHandler
	contentHandler    *handler.ContentHandler
	progressHandler   *handler.ProgressHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:    params.AccountHandler,
		contentHandler:    params.ContentHandler,
		progressHandler:   params.ProgressHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	contentGroup := api.Group("/content")
	{
		contentGroup.POST("", r.contentHandler.GetLesson)
		contentGroup.GET("", r.contentHandler.ListLessons)
	}

	usersGroup := api.Group("/users")
	{
		usersGroup.POST("", r.accountHandler.Register)
		usersGroup.POST("/auth", r.accountHandler.Authenticate)
		usersGroup.POST("/logout", r.accountHandler.Logout)
	}

	// Everything below acts on the session identity
	sessionGroup := usersGroup.Group("", r.sessionMiddleware.Authenticate)
	{
		sessionGroup.GET("/profile", r.accountHandler.GetProfile)
		sessionGroup.PUT("/profile", r.accountHandler.UpdateProfile)

		sessionGroup.POST("/chat-history", r.progressHandler.ReplaceChatHistory)
		sessionGroup.GET("/chat-history", r.progressHandler.ChatHistory)

		sessionGroup.POST("/completed-lessons", r.progressHandler.MarkCompleted)
		sessionGroup.GET("/completed-lessons", r.progressHandler.CompletedLessons)

		sessionGroup.GET("/progress", r.progressHandler.Progress)
	}
}
