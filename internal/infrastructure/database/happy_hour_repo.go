package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"clubhouse/internal/domain"
	"clubhouse/internal/domain/entities"
	"clubhouse/internal/ports/output"
)

var _ output.HappyHourRepository = (*HappyHourRepository)(nil)

type HappyHourRepository struct {
	db *DB
}

func NewHappyHourRepository(db *DB) *HappyHourRepository {
	return &HappyHourRepository{db: db}
}

func happyHourError(op string, err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return domain.ErrHappyHourNotFound
	case isInvalidUUID(err):
		return domain.ErrInvalidID
	}
	if _, ok := isUniqueViolation(err); ok {
		return domain.ErrHappyHourExists
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (r *HappyHourRepository) Create(ctx context.Context, h *entities.HappyHour) error {
	ctx, cancel := r.db.ctx(ctx)
	defer cancel()
	const query = `
INSERT INTO happy_hours (start_time, end_time, image)
VALUES ($1, $2, $3)
RETURNING ` + happyHourColumns
	created, err := scanHappyHour(r.db.pool.QueryRow(ctx, query, h.StartTime, h.EndTime, h.Image))
	if err != nil {
		return happyHourError("create happy hour", err)
	}
	*h = *created
	return nil
}

func (r *HappyHourRepository) Current(ctx context.Context) (*entities.HappyHour, error) {
	ctx, cancel := r.db.ctx(ctx)
	defer cancel()
	h, err := scanHappyHour(r.db.pool.QueryRow(ctx, `SELECT `+happyHourColumns+` FROM happy_hours LIMIT 1`))
	if err != nil {
		return nil, happyHourError("get happy hour", err)
	}
	return h, nil
}

func (r *HappyHourRepository) FindByID(ctx context.Context, id string) (*entities.HappyHour, error) {
	ctx, cancel := r.db.ctx(ctx)
	defer cancel()
	h, err := scanHappyHour(r.db.pool.QueryRow(ctx, `SELECT `+happyHourColumns+` FROM happy_hours WHERE id = $1`, id))
	if err != nil {
		return nil, happyHourError("get happy hour by id", err)
	}
	return h, nil
}

func (r *HappyHourRepository) Update(ctx context.Context, h *entities.HappyHour) error {
	ctx, cancel := r.db.ctx(ctx)
	defer cancel()
	const query = `
UPDATE happy_hours
SET start_time = $2, end_time = $3, image = $4, updated_at = NOW()
WHERE id = $1
RETURNING ` + happyHourColumns
	updated, err := scanHappyHour(r.db.pool.QueryRow(ctx, query, h.ID, h.StartTime, h.EndTime, h.Image))
	if err != nil {
		return happyHourError("update happy hour", err)
	}
	*h = *updated
	return nil
}
