package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"book-management/internal/shared/apperror"
	"book-management/internal/shared/middleware"
	"book-management/internal/shared/response"
	"book-management/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Global middlewares
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		c.Translator.Middleware(),
		middleware.RequireJSON(),
	)

	router.NoRoute(response.NotFound)
	router.NoMethod(response.MethodNotAllowed)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		c.AuthorHandler.RegisterRoutes(api)
		c.BookHandler.RegisterRoutes(api)
	}

	return router
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		if err := c.HealthCheck(checkCtx); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, apperror.CodeServiceUnavailable, nil)
			return
		}

		response.Success(ctx, http.StatusOK, gin.H{
			"status":  "ok",
			"service": c.Config.App.Name,
		})
	}
}
