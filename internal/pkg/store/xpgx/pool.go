// Package xpgx is a thin layer over pgxpool that executes squirrel sqlizers
// and scans rows into db-tagged structs.
package xpgx

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Pool struct {
	*pgxpool.Pool
}

func NewPool(ctx context.Context, dsn string) (*Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

func (p *Pool) Execx(ctx context.Context, q sq.Sqlizer) (pgconn.CommandTag, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build query: %w", err)
	}

	return p.Exec(ctx, query, args...)
}

// Selectx runs the query and collects every row into *T by db tag.
func Selectx[T any](ctx context.Context, p *Pool, q sq.Sqlizer) ([]*T, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := p.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[T])
}

// Getx runs the query and collects exactly one row; pgx.ErrNoRows if none.
func Getx[T any](ctx context.Context, p *Pool, q sq.Sqlizer) (*T, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := p.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
}

// Getcx runs a single-column query, e.g. a count.
func Getcx[T any](ctx context.Context, p *Pool, q sq.Sqlizer) (T, error) {
	var zero T

	query, args, err := q.ToSql()
	if err != nil {
		return zero, fmt.Errorf("build query: %w", err)
	}

	rows, err := p.Query(ctx, query, args...)
	if err != nil {
		return zero, err
	}

	return pgx.CollectOneRow(rows, pgx.RowTo[T])
}
