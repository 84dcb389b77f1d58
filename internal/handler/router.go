package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dmaia/storefront-api/internal/middleware"
)

// NewRouter assembles the full HTTP surface. Extra middleware (tracing,
// when enabled) runs before the route handlers.
func NewRouter(
	log *slog.Logger,
	metaH *MetaHandler,
	userH *UserHandler,
	productH *ProductHandler,
	orderH *OrderHandler,
	statsH *StatsHandler,
	extra ...gin.HandlerFunc,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"message": "Something went wrong",
		})
	}))
	for _, m := range extra {
		router.Use(m)
	}
	router.Use(middleware.RequestLogger(log))
	router.Use(cors.Default())

	router.GET("/", metaH.Index)
	router.GET("/healthz", metaH.Healthz)

	api := router.Group("/api")
	{
		users := api.Group("/users")
		users.GET("", userH.List)
		users.GET("/:id", userH.GetByID)
		users.POST("", userH.Create)
		users.PUT("/:id", userH.Update)
		users.DELETE("/:id", userH.Delete)

		products := api.Group("/products")
		products.GET("", productH.List)
		products.GET("/:id", productH.GetByID)
		products.POST("", productH.Create)
		products.PUT("/:id", productH.Update)
		products.DELETE("/:id", productH.Delete)

		orders := api.Group("/orders")
		orders.GET("", orderH.List)
		orders.GET("/:id", orderH.GetByID)
		orders.POST("", orderH.Create)
		orders.PUT("/:id/status", orderH.UpdateStatus)

		api.GET("/stats", statsH.Get)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Endpoint not found",
			"message": fmt.Sprintf("Route %s does not exist in this API", c.Request.URL.Path),
		})
	})

	return router
}
