package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/shares")
	{
		group.POST("", h.Create)
		group.GET("/:token", h.Get)
		group.GET("/:token/analytics", h.Analytics)
		group.POST("/:token/export", h.Export)
	}
}
