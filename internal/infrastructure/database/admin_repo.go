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

var _ output.AdminRepository = (*AdminRepository)(nil)

type AdminRepository struct {
	db *DB
}

func NewAdminRepository(db *DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func adminError(op string, err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return domain.ErrAdminNotFound
	case isInvalidUUID(err):
		return domain.ErrInvalidID
	}
	if _, ok := isUniqueViolation(err); ok {
		return domain.ErrAdminExists
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (r *AdminRepository) Create(ctx context.Context, a *entities.Admin) error {
	ctx, cancel := r.db.ctx(ctx)
	defer cancel()
	const query = `
INSERT INTO admins (name, email, password_hash)
VALUES ($1, $2, $3)
RETURNING ` + adminColumns
	created, err := scanAdmin(r.db.pool.QueryRow(ctx, query, a.Name, a.Email, a.PasswordHash))
	if err != nil {
		return adminError("create admin", err)
	}
	*a = *created
	return nil
}

func (r *AdminRepository) FindByID(ctx context.Context, id string) (*entities.Admin, error) {
	ctx, cancel := r.db.ctx(ctx)
	defer cancel()
	a, err := scanAdmin(r.db.pool.QueryRow(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = $1`, id))
	if err != nil {
		return nil, adminError("get admin by id", err)
	}
	return a, nil
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*entities.Admin, error) {
	ctx, cancel := r.db.ctx(ctx)
	defer cancel()
	a, err := scanAdmin(r.db.pool.QueryRow(ctx, `SELECT `+adminColumns+` FROM admins WHERE email = lower($1)`, email))
	if err != nil {
		return nil, adminError("get admin by email", err)
	}
	return a, nil
}
