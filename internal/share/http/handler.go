package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanderplan/travel-planner-backend/internal/pkg/response"
	"github.com/wanderplan/travel-planner-backend/internal/share"
)

type Handler struct {
	service share.Service
}

func NewHandler(service share.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateShareRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err)
		return
	}

	result, err := h.service.Create(c.Request.Context(), body.ToRequest())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateShareResponse{
		ShareURL:  result.ShareURL,
		Token:     result.Itinerary.Token,
		ExpiresAt: result.Itinerary.ExpiresAt,
	})
}

// sharePassword extracts the share password from the query string or the
// X-Share-Password header.
func sharePassword(c *gin.Context) string {
	if pw := c.Query("password"); pw != "" {
		return pw
	}
	return c.GetHeader("X-Share-Password")
}

func (h *Handler) Get(c *gin.Context) {
	var params ByTokenRequest
	if err := c.ShouldBindUri(&params); err != nil {
		response.BadRequest(c, err)
		return
	}

	rec, err := h.service.Get(c.Request.Context(), params.Token)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Password enforcement is a gate at this layer, not a store-side
	// content filter.
	if err := h.service.VerifyPassword(rec, sharePassword(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewShareResponse(rec))
}

func (h *Handler) Analytics(c *gin.Context) {
	var params ByTokenRequest
	if err := c.ShouldBindUri(&params); err != nil {
		response.BadRequest(c, err)
		return
	}

	analytics, err := h.service.Analytics(c.Request.Context(), params.Token)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, AnalyticsResponse{
		ViewCount:  analytics.ViewCount,
		LastViewed: analytics.LastViewed,
		CreatedAt:  analytics.CreatedAt,
		ExpiresAt:  analytics.ExpiresAt,
	})
}

func (h *Handler) Export(c *gin.Context) {
	var params ByTokenRequest
	if err := c.ShouldBindUri(&params); err != nil {
		response.BadRequest(c, err)
		return
	}

	var body ExportShareRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err)
		return
	}

	url, err := h.service.Export(c.Request.Context(), params.Token, share.ExportFormat(body.Format))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, ExportShareResponse{DownloadURL: url})
}
