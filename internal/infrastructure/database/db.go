package database

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB bounds every store call with a deadline so no request waits on Postgres forever.
type DB struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewDB(pool *pgxpool.Pool, timeout time.Duration) *DB {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &DB{pool: pool, timeout: timeout}
}

func (d *DB) ctx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d.timeout)
}

func pgCode(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

func isUniqueViolation(err error) (constraint string, ok bool) {
	code, constraint := pgCode(err)
	return constraint, code == "23505"
}

func isInvalidUUID(err error) bool {
	code, _ := pgCode(err)
	return code == "22P02"
}
