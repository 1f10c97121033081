// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"curator/internal/delivery/http/middleware"
	"curator/internal/delivery/http/router/handler"
	"curator/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	QualityHandler   *handler.QualityHandler
	TitleHandler     *handler.TitleHandler
	RelevanceHandler *handler.RelevanceHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	qualityHandler   *handler.QualityHandler
	titleHandler     *handler.TitleHandler
	relevanceHandler *handler.RelevanceHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		qualityHandler:   params.QualityHandler,
		titleHandler:     params.TitleHandler,
		relevanceHandler: params.RelevanceHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Mutating routes require a curator token
	curator := []echo.MiddlewareFunc{
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(service.RoleCurator),
	}

	qualityGroup := apiV1.Group("/quality")
	{
		qualityGroup.GET("/checks", r.qualityHandler.Checks)
		qualityGroup.GET("/stats", r.qualityHandler.Stats)
		qualityGroup.GET("/redundant-products", r.qualityHandler.RedundantProducts)
		qualityGroup.POST("/reload", r.qualityHandler.Reload, curator...)
	}

	apiV1.GET("/locations/:mapboxId/ancestors", r.qualityHandler.Ancestors)

	productsGroup := apiV1.Group("/products", curator...)
	{
		productsGroup.POST("/prune", r.qualityHandler.PruneAll)
		productsGroup.POST("/:id/prune", r.qualityHandler.PruneProduct)
	}

	titlesGroup := apiV1.Group("/titles")
	{
		titlesGroup.GET("", r.titleHandler.ListTitles)
		titlesGroup.GET("/checks", r.titleHandler.Checks)
		titlesGroup.GET("/:id/possible-aliases", r.titleHandler.PossibleAliases)
		titlesGroup.POST("/:id/alias", r.titleHandler.MakeAlias, curator...)
		titlesGroup.DELETE("/:id/alias", r.titleHandler.BreakAlias, curator...)
		titlesGroup.POST("/:id/rebase", r.titleHandler.Rebase, curator...)
		titlesGroup.POST("/:id/deactivate", r.titleHandler.Deactivate, curator...)
		titlesGroup.POST("/:id/decanonify", r.titleHandler.Decanonify, curator...)
	}

	apiV1.POST("/relevance/run", r.relevanceHandler.Run, curator...)
}
