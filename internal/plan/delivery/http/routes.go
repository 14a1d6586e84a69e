package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/plan/nutrition", h.Generate)

	plans := rg.Group("/plans")
	{
		plans.GET("", h.List)
		plans.GET("/:id", h.Detail)
	}
}
