package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines data access methods for packages.
type Repository interface {
	List(ctx context.Context) ([]*Package, error)
	GetByID(ctx context.Context, id int64) (*Package, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var packageColumns = []string{
	"id", "name", "description", "total_nights", "price",
	"original_nightly_rate", "discounted_nightly_rate", "validity_months", "features",
}

func scanPackage(row pgx.Row) (*Package, error) {
	var p Package
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.TotalNights, &p.Price,
		&p.OriginalNightlyRate, &p.DiscountedNightlyRate, &p.ValidityMonths, &p.Features,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Package, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(packageColumns...).
		From("public.packages").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list packages query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list packages failed: %w", err)
	}
	defer rows.Close()

	var pkgs []*Package
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan package failed: %w", err)
		}
		pkgs = append(pkgs, p)
	}
	return pkgs, rows.Err()
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Package, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(packageColumns...).
		From("public.packages").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get package query failed: %w", err)
	}

	p, err := scanPackage(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get package failed: %w", err)
	}
	return p, nil
}
