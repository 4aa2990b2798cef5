package property

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines data access methods for properties.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]*Property, error)
	GetByID(ctx context.Context, id int64) (*Property, error)
	UpdateBulkBooking(ctx context.Context, id int64, enabled bool) (*Property, error)
	UpdateImage(ctx context.Context, id int64, imageURL, thumbnailURL string) (*Property, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var propertyColumns = []string{
	"id", "name", "location", "base_rate", "image_url", "thumbnail_url",
	"total_bookings", "occupancy_rate", "bulk_booking_enabled",
	"description", "amenities", "room_types", "host_id",
}

func scanProperty(row pgx.Row) (*Property, error) {
	var p Property
	err := row.Scan(
		&p.ID, &p.Name, &p.Location, &p.BaseRate, &p.ImageURL, &p.ThumbnailURL,
		&p.TotalBookings, &p.OccupancyRate, &p.BulkBookingEnabled,
		&p.Description, &p.Amenities, &p.RoomTypes, &p.HostID,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Property, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(propertyColumns...).From("public.properties")

	// Dynamic Filtering
	if filter.HostID != "" {
		query = query.Where(squirrel.Eq{"host_id": filter.HostID})
	}
	if filter.Location != "" {
		query = query.Where(squirrel.Eq{"location": filter.Location})
	}
	if filter.BulkOnly {
		query = query.Where(squirrel.Eq{"bulk_booking_enabled": true})
	}
	switch filter.PriceRange {
	case PriceBudget:
		query = query.Where(squirrel.LtOrEq{"base_rate": budgetMaxRate})
	case PriceMid:
		query = query.Where(squirrel.And{
			squirrel.Gt{"base_rate": budgetMaxRate},
			squirrel.LtOrEq{"base_rate": midMaxRate},
		})
	case PriceLuxury:
		query = query.Where(squirrel.Gt{"base_rate": midMaxRate})
	}

	sql, args, err := query.OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list properties query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list properties failed: %w", err)
	}
	defer rows.Close()

	var props []*Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan property failed: %w", err)
		}
		props = append(props, p)
	}
	return props, rows.Err()
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Property, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(propertyColumns...).
		From("public.properties").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get property query failed: %w", err)
	}

	p, err := scanProperty(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get property failed: %w", err)
	}
	return p, nil
}

func (r *pgxRepository) update(ctx context.Context, id int64, set map[string]any) (*Property, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.properties").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(propertyColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update property query failed: %w", err)
	}

	p, err := scanProperty(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update property failed: %w", err)
	}
	return p, nil
}

func (r *pgxRepository) UpdateBulkBooking(ctx context.Context, id int64, enabled bool) (*Property, error) {
	return r.update(ctx, id, map[string]any{"bulk_booking_enabled": enabled})
}

func (r *pgxRepository) UpdateImage(ctx context.Context, id int64, imageURL, thumbnailURL string) (*Property, error) {
	return r.update(ctx, id, map[string]any{
		"image_url":     imageURL,
		"thumbnail_url": thumbnailURL,
	})
}
