package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/factorytrack/internal/server/http/handlers"
	"github.com/polkiloo/factorytrack/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.FactoryFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	listingHandler := handlers.NewListingHandler(facade)
	reportHandler := handlers.NewReportHandler(facade)

	engine.POST("/login", authHandler.Login)

	bearer := engine.Group("")
	bearer.Use(middleware.AuthRequired(facade))
	bearer.GET("/orders", listingHandler.Orders)
	bearer.GET("/products", listingHandler.Products)

	admin := bearer.Group("")
	admin.Use(middleware.AdminRequired())
	admin.GET("/employee_performance", reportHandler.EmployeePerformance)
	admin.GET("/top_selling_products", reportHandler.TopSellingProducts)
	admin.GET("/customer_lifetime_value", reportHandler.CustomerLifetimeValue)
	admin.GET("/production_efficiency", reportHandler.ProductionEfficiency)

	return engine
}
