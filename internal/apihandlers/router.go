package apihandlers

import (
	"github.com/gin-gonic/gin"
)

// NewRouter mounts every route on a fresh engine.
func NewRouter(h *APIHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestIDMiddleware(), LoggerMiddleware())

	v1 := router.Group("/api/v1")
	{
		v1.POST("/classify", h.ClassifyHandler)
		v1.POST("/classify/batch", h.ClassifyBatchHandler)
		v1.POST("/check", h.CheckHandler)
		v1.GET("/filter", h.FilterStatsHandler)
		v1.PUT("/filter", h.SetFilterHandler)

		rules := v1.Group("/rules")
		{
			rules.GET("", h.ListRulesHandler)
			rules.POST("", h.AddRuleHandler)
			rules.DELETE("/:id", h.RemoveRuleHandler)
		}

		blocked := v1.Group("/blocked")
		{
			blocked.GET("", h.ListBlockedHandler)
			blocked.POST("", h.BlockHandler)
			blocked.DELETE("/:id", h.UnblockHandler)
		}
	}

	router.GET("/health", h.HealthHandler)
	return router
}
