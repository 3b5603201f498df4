package share

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wanderplan/travel-planner-backend/internal/itinerary"
	"github.com/wanderplan/travel-planner-backend/internal/pkg/random"
)

// tokenAttempts bounds the insert-and-retry loop on token collision. With
// 62^32 possible tokens a collision is effectively impossible, but the
// contract must hold regardless.
const tokenAttempts = 5

type CreateRequest struct {
	Document     *itinerary.Document
	Title        string
	Destination  string
	DurationDays int
	Settings     Settings
}

type CreateResult struct {
	Itinerary *Itinerary
	ShareURL  string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*CreateResult, error)

	// Get returns the record for a live token, counting the retrieval as
	// a view. A token past its expiry is evicted and reported as expired;
	// later lookups report not found.
	Get(ctx context.Context, token string) (*Itinerary, error)

	// VerifyPassword gates password-protected shares. It is a caller-side
	// gate: the store itself never filters content by password.
	VerifyPassword(rec *Itinerary, password string) error

	// Analytics returns access metadata without counting a view.
	Analytics(ctx context.Context, token string) (*Analytics, error)

	// Export produces a signed download URL via the export stub.
	Export(ctx context.Context, token string, format ExportFormat) (string, error)
}

type service struct {
	repo     Repository
	rng      random.Source
	hasher   PasswordHasher
	exporter *Exporter
	baseURL  string
	now      func() time.Time
}

func NewService(repo Repository, rng random.Source, hasher PasswordHasher, exporter *Exporter, baseURL string) Service {
	return &service{
		repo:     repo,
		rng:      rng,
		hasher:   hasher,
		exporter: exporter,
		baseURL:  baseURL,
		now:      time.Now,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*CreateResult, error) {
	days := req.Settings.ExpiresInDays
	if days < MinExpiresInDays {
		days = MinExpiresInDays
	}
	if days > MaxExpiresInDays {
		days = MaxExpiresInDays
	}

	var passwordHash string
	if req.Settings.Password != "" {
		hash, err := s.hasher.Hash(req.Settings.Password)
		if err != nil {
			return nil, fmt.Errorf("hash share password failed: %w", err)
		}
		passwordHash = hash
	}

	now := s.now().UTC()
	rec := &Itinerary{
		ID:             "itin-" + uuid.NewString(),
		Title:          req.Title,
		Destination:    req.Destination,
		DurationDays:   req.DurationDays,
		CreatedAt:      now,
		ExpiresAt:      now.AddDate(0, 0, days),
		IsPublic:       req.Settings.IsPublic,
		AllowComments:  req.Settings.AllowComments,
		AllowDownloads: req.Settings.AllowDownloads,
		PasswordHash:   passwordHash,
		Document:       req.Document,
		ViewCount:      0,
	}

	for attempt := 0; attempt < tokenAttempts; attempt++ {
		rec.Token = newToken(s.rng)
		err := s.repo.Create(ctx, rec)
		if err == nil {
			return &CreateResult{
				Itinerary: rec,
				ShareURL:  fmt.Sprintf("%s/share/%s", s.baseURL, rec.Token),
			}, nil
		}
		if !errors.Is(err, ErrTokenTaken) {
			return nil, err
		}
	}
	return nil, ErrTokenExhausted
}

func (s *service) Get(ctx context.Context, token string) (*Itinerary, error) {
	rec, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if now.After(rec.ExpiresAt) {
		// Lazy eviction: the record disappears on the first retrieval
		// after expiry.
		if delErr := s.repo.Delete(ctx, token); delErr != nil && !errors.Is(delErr, ErrNotFound) {
			return nil, delErr
		}
		return nil, ErrExpired
	}

	rec.ViewCount++
	rec.LastViewed = &now
	if err := s.repo.RecordView(ctx, token, rec.ViewCount, now); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *service) VerifyPassword(rec *Itinerary, password string) error {
	if rec.PasswordHash == "" {
		return nil
	}
	if password == "" {
		return ErrPasswordRequired
	}
	if err := s.hasher.Compare(rec.PasswordHash, password); err != nil {
		return ErrInvalidPassword
	}
	return nil
}

func (s *service) Analytics(ctx context.Context, token string) (*Analytics, error) {
	rec, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	return &Analytics{
		ViewCount:  rec.ViewCount,
		LastViewed: rec.LastViewed,
		CreatedAt:  rec.CreatedAt,
		ExpiresAt:  rec.ExpiresAt,
	}, nil
}

func (s *service) Export(ctx context.Context, token string, format ExportFormat) (string, error) {
	rec, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		return "", err
	}
	if !rec.AllowDownloads {
		return "", ErrDownloadsOff
	}

	return s.exporter.Export(token, format)
}
