package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"flowsite-backend/internal/shared/middleware"
	"flowsite-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.Site.AllowedOrigin),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupFormRoutes(v1, c)
		setupPageRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// PUBLIC FORM ROUTES
// ========================================
func setupFormRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.POST("/contact", c.ContactHandler.Submit)

	newsletter := v1.Group("/newsletter")
	{
		newsletter.POST("/subscribe", c.NewsletterHandler.Subscribe)
		newsletter.POST("/unsubscribe", c.NewsletterHandler.Unsubscribe)
	}
}

// ========================================
// PUBLIC PAGE ROUTES
// ========================================
func setupPageRoutes(v1 *gin.RouterGroup, c *container.Container) {
	pages := v1.Group("/pages/:locale")
	pages.Use(middleware.LocaleFromPath())
	{
		pages.GET("/home", c.PagesHandler.Home)
		pages.GET("/services", c.PagesHandler.Services)
		pages.GET("/projects", c.PagesHandler.Projects)
		pages.GET("/blog", c.PagesHandler.Blog)
		pages.GET("/blog/:slug", c.PagesHandler.BlogPost)
		pages.GET("/about", c.PagesHandler.About)
		pages.GET("/team/:slug", c.PagesHandler.TeamMember)
	}
}

// ========================================
// ADMIN ROUTES
// ========================================
// The whole group sits behind the shared admin token; with no token
// configured the middleware answers 503 for everything here.
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.AdminToken(c.Config.Site.AdminToken))
	{
		posts := admin.Group("/posts")
		{
			posts.GET("", c.PostHandler.AdminList)
			posts.POST("", c.PostHandler.Create)
			posts.PUT("/:id", c.PostHandler.Update)
			posts.PATCH("/:id/status", c.PostHandler.ToggleStatus)
			posts.DELETE("/:id", c.PostHandler.Delete)
		}

		messages := admin.Group("/messages")
		{
			messages.GET("", c.ContactHandler.AdminList)
			messages.PATCH("/:id/status", c.ContactHandler.AdminUpdateStatus)
		}

		admin.GET("/subscribers", c.NewsletterHandler.AdminList)

		team := admin.Group("/team")
		{
			team.GET("", c.TeamAdminHandler.List)
			team.POST("", c.TeamAdminHandler.Create)
			team.PUT("/:id", c.TeamAdminHandler.Update)
			team.DELETE("/:id", c.TeamAdminHandler.Delete)
		}
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
			}
		}

		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		// Redis is optional; only the database gates readiness.
		statusCode := http.StatusOK
		if dbStatus != "ok" {
			health["status"] = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
