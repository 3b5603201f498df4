package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a catalog repository backed by postgres. The
// seq column preserves catalog insertion order for stable search results.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Search(ctx context.Context, filter Filter) ([]*Item, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "category", "name", "location", "date", "time",
		"price", "currency", "status", "booking_reference", "amenities",
		"contact_phone", "contact_email", "contact_address",
	).
		From("public.inventory_items").
		Where(squirrel.Eq{"category": filter.Category}).
		Where(squirrel.Eq{"date": filter.Date}).
		Where(squirrel.Eq{"status": StatusAvailable}).
		OrderBy("seq ASC")

	if filter.Location != "" {
		query = query.Where(squirrel.ILike{"location": "%" + filter.Location + "%"})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search inventory query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("search inventory failed: %w", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory item failed: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Item, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select(
		"id", "category", "name", "location", "date", "time",
		"price", "currency", "status", "booking_reference", "amenities",
		"contact_phone", "contact_email", "contact_address",
	).
		From("public.inventory_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get inventory item query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, sql, args...)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get inventory item failed: %w", err)
	}
	return item, nil
}

func scanItem(row pgx.Row) (*Item, error) {
	var (
		item                       Item
		timeVal, bookingRef        *string
		contactPhone, contactEmail *string
		contactAddress             *string
	)
	if err := row.Scan(
		&item.ID, &item.Category, &item.Name, &item.Location, &item.Date, &timeVal,
		&item.Price, &item.Currency, &item.Status, &bookingRef, &item.Amenities,
		&contactPhone, &contactEmail, &contactAddress,
	); err != nil {
		return nil, err
	}

	if timeVal != nil {
		item.Time = *timeVal
	}
	if bookingRef != nil {
		item.BookingReference = *bookingRef
	}
	if contactPhone != nil || contactEmail != nil || contactAddress != nil {
		ci := &ContactInfo{}
		if contactPhone != nil {
			ci.Phone = *contactPhone
		}
		if contactEmail != nil {
			ci.Email = *contactEmail
		}
		if contactAddress != nil {
			ci.Address = *contactAddress
		}
		item.ContactInfo = ci
	}
	return &item, nil
}
