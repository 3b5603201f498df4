package share

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wanderplan/travel-planner-backend/internal/itinerary"
)

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a share store backed by postgres. The token
// column carries a unique constraint; collisions surface as ErrTokenTaken
// so the service can retry with a fresh token.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, itin *Itinerary) error {
	doc, err := json.Marshal(itin.Document)
	if err != nil {
		return fmt.Errorf("marshal itinerary document failed: %w", err)
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.shared_itineraries").
		Columns(
			"id", "token", "title", "destination", "duration_days",
			"created_at", "expires_at", "is_public", "allow_comments",
			"allow_downloads", "password_hash", "document", "view_count",
		).
		Values(
			itin.ID, itin.Token, itin.Title, itin.Destination, itin.DurationDays,
			itin.CreatedAt, itin.ExpiresAt, itin.IsPublic, itin.AllowComments,
			itin.AllowDownloads, itin.PasswordHash, doc, itin.ViewCount,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create share query failed: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrTokenTaken
		}
		return fmt.Errorf("create share failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByToken(ctx context.Context, token string) (*Itinerary, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "token", "title", "destination", "duration_days",
		"created_at", "expires_at", "is_public", "allow_comments",
		"allow_downloads", "password_hash", "document", "view_count",
		"last_viewed",
	).
		From("public.shared_itineraries").
		Where(squirrel.Eq{"token": token}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get share query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var (
		rec        Itinerary
		doc        []byte
		lastViewed *time.Time
	)
	if err := row.Scan(
		&rec.ID, &rec.Token, &rec.Title, &rec.Destination, &rec.DurationDays,
		&rec.CreatedAt, &rec.ExpiresAt, &rec.IsPublic, &rec.AllowComments,
		&rec.AllowDownloads, &rec.PasswordHash, &doc, &rec.ViewCount,
		&lastViewed,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get share failed: %w", err)
	}

	if len(doc) > 0 {
		var parsed itinerary.Document
		if err := json.Unmarshal(doc, &parsed); err != nil {
			return nil, fmt.Errorf("unmarshal itinerary document failed: %w", err)
		}
		rec.Document = &parsed
	}
	rec.LastViewed = lastViewed
	return &rec, nil
}

func (r *pgxRepository) RecordView(ctx context.Context, token string, viewCount int, viewedAt time.Time) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.shared_itineraries").
		Set("view_count", viewCount).
		Set("last_viewed", viewedAt).
		Where(squirrel.Eq{"token": token}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build record view query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("record view failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, token string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.shared_itineraries").
		Where(squirrel.Eq{"token": token}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete share query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete share failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
