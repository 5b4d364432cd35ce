package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/receipts/internal/server/http/handlers"
	"github.com/polkiloo/receipts/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CheckoutFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	receiptHandler := handlers.NewReceiptHandler(facade)

	auth := engine.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	authProtected := auth.Group("")
	authProtected.Use(middleware.AuthRequired(facade))
	authProtected.GET("/protected", authHandler.Protected)

	receipts := engine.Group("/receipts")
	// slip view stays public: a receipt id is all a customer holds
	receipts.GET("/:id/view", receiptHandler.View)

	receiptsAuth := receipts.Group("")
	receiptsAuth.Use(middleware.AuthRequired(facade))
	receiptsAuth.POST("/", receiptHandler.Create)
	receiptsAuth.GET("/", receiptHandler.List)

	return engine
}
