package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/bookings")
	{
		group.POST("", h.Confirm)
		group.POST("/:id/cancel", h.Cancel)
	}
}
