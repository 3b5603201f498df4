package http

import (
	"time"

	"github.com/wanderplan/travel-planner-backend/internal/itinerary"
	"github.com/wanderplan/travel-planner-backend/internal/share"
)

type ShareSettingsBody struct {
	IsPublic       bool   `json:"is_public"`
	AllowComments  bool   `json:"allow_comments"`
	AllowDownloads bool   `json:"allow_downloads"`
	ExpiresInDays  int    `json:"expires_in_days" binding:"required,min=1,max=365"`
	Password       string `json:"password"`
}

type CreateShareRequest struct {
	Itinerary    itinerary.Document `json:"itinerary" binding:"required"`
	Title        string             `json:"title" binding:"required"`
	Destination  string             `json:"destination" binding:"required"`
	DurationDays int                `json:"duration_days" binding:"required,min=1"`
	Settings     ShareSettingsBody  `json:"settings" binding:"required"`
}

func (r *CreateShareRequest) ToRequest() share.CreateRequest {
	return share.CreateRequest{
		Document:     &r.Itinerary,
		Title:        r.Title,
		Destination:  r.Destination,
		DurationDays: r.DurationDays,
		Settings: share.Settings{
			IsPublic:       r.Settings.IsPublic,
			AllowComments:  r.Settings.AllowComments,
			AllowDownloads: r.Settings.AllowDownloads,
			ExpiresInDays:  r.Settings.ExpiresInDays,
			Password:       r.Settings.Password,
		},
	}
}

// ByTokenRequest binds the share-token path parameter.
type ByTokenRequest struct {
	Token string `uri:"token" binding:"required,len=32,alphanum"`
}

type CreateShareResponse struct {
	ShareURL  string    `json:"share_url"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ShareResponse struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Destination  string              `json:"destination"`
	DurationDays int                 `json:"duration_days"`
	CreatedAt    time.Time           `json:"created_at"`
	ExpiresAt    time.Time           `json:"expires_at"`
	IsPublic     bool                `json:"is_public"`
	Token        string              `json:"token"`
	Itinerary    *itinerary.Document `json:"itinerary"`
	ViewCount    int                 `json:"view_count"`
	LastViewed   *time.Time          `json:"last_viewed,omitempty"`
	Summary      string              `json:"summary"`
}

func NewShareResponse(rec *share.Itinerary) ShareResponse {
	return ShareResponse{
		ID:           rec.ID,
		Title:        rec.Title,
		Destination:  rec.Destination,
		DurationDays: rec.DurationDays,
		CreatedAt:    rec.CreatedAt,
		ExpiresAt:    rec.ExpiresAt,
		IsPublic:     rec.IsPublic,
		Token:        rec.Token,
		Itinerary:    rec.Document,
		ViewCount:    rec.ViewCount,
		LastViewed:   rec.LastViewed,
		Summary:      share.Summary(rec),
	}
}

type AnalyticsResponse struct {
	ViewCount  int        `json:"view_count"`
	LastViewed *time.Time `json:"last_viewed,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	ExpiresAt  time.Time  `json:"expires_at"`
}

type ExportShareRequest struct {
	Format string `json:"format" binding:"required,oneof=pdf json csv"`
}

type ExportShareResponse struct {
	DownloadURL string `json:"download_url"`
}
