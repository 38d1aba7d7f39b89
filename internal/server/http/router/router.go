package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/dribbleops/orderadmin/internal/server/http/handlers"
	"github.com/dribbleops/orderadmin/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.AdminFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	pushTokenHandler := handlers.NewPushTokenHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/health", healthHandler.Check)

	auth := engine.Group("/auth")
	auth.POST("/login", authHandler.Login)

	authed := engine.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/auth/me", authHandler.Me)
	authed.GET("/orders/:id", orderHandler.Get)

	admin := authed.Group("/admin")
	admin.GET("/orders", orderHandler.List)
	admin.GET("/orders/stats", orderHandler.Stats)
	admin.GET("/orders/:id", orderHandler.Get)
	admin.PUT("/orders/:id/status", orderHandler.UpdateStatus)
	// Older app builds used PATCH for the same operation.
	admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
	admin.POST("/orders/:id/cancel", orderHandler.Cancel)
	admin.POST("/push-tokens", pushTokenHandler.Register)
	admin.DELETE("/push-tokens", pushTokenHandler.Unregister)

	return engine
}
