package share

import (
	"net/http"
	"time"

	"github.com/wanderplan/travel-planner-backend/internal/itinerary"
	"github.com/wanderplan/travel-planner-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "share_not_found", "shared itinerary not found")
	ErrExpired          = apperror.New(http.StatusGone, "share_expired", "this shared itinerary has expired")
	ErrPasswordRequired = apperror.New(http.StatusUnauthorized, "share_password_required", "this shared itinerary requires a password")
	ErrInvalidPassword  = apperror.New(http.StatusUnauthorized, "share_password_invalid", "invalid share password")
	ErrDownloadsOff     = apperror.New(http.StatusForbidden, "share_downloads_disabled", "downloads are disabled for this share")
	ErrExportFailed     = apperror.New(http.StatusBadGateway, "export_failed", "failed to export itinerary, please try again")
	ErrTokenExhausted   = apperror.New(http.StatusInternalServerError, "share_token_exhausted", "could not allocate a share token")
)

// Expiry bounds accepted on create.
const (
	MinExpiresInDays = 1
	MaxExpiresInDays = 365
)

// Itinerary is a stored shareable itinerary. The share token is the public
// identifier; the record is mutated only by retrieval (view count and
// last-viewed timestamp) and deleted lazily on the first retrieval after
// expiry.
type Itinerary struct {
	ID             string
	Title          string
	Destination    string
	DurationDays   int
	CreatedAt      time.Time
	ExpiresAt      time.Time
	IsPublic       bool
	AllowComments  bool
	AllowDownloads bool
	PasswordHash   string
	Token          string
	Document       *itinerary.Document
	ViewCount      int
	LastViewed     *time.Time
}

// Settings control visibility and lifetime of a share.
type Settings struct {
	IsPublic       bool
	AllowComments  bool
	AllowDownloads bool
	ExpiresInDays  int
	Password       string
}

// ExportFormat is an accepted export target.
type ExportFormat string

const (
	FormatPDF  ExportFormat = "pdf"
	FormatJSON ExportFormat = "json"
	FormatCSV  ExportFormat = "csv"
)

// Analytics is the read-only view of a share's access metadata. Reading
// analytics does not count as a view.
type Analytics struct {
	ViewCount  int
	LastViewed *time.Time
	CreatedAt  time.Time
	ExpiresAt  time.Time
}
