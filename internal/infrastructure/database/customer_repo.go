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

var _ output.CustomerRepository = (*CustomerRepository)(nil)

// CustomerRepository implements output.CustomerRepository with pgx.
type CustomerRepository struct {
	db *DB
}

func NewCustomerRepository(db *DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// customerError maps driver errors for single-customer statements.
func customerError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrCustomerNotFound
	}
	if isInvalidUUID(err) {
		return domain.ErrInvalidID
	}
	if constraint, ok := isUniqueViolation(err); ok {
		if constraint == "customers_email_key" {
			return domain.ErrEmailTaken
		}
		return domain.ErrPhoneTaken
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (r *CustomerRepository) Create(ctx context.Context, c *entities.Customer) error {
	ctx, cancel := r.db.ctx(ctx)
	defer cancel()
	const query = `
INSERT INTO customers (name, phone, email)
VALUES ($1, $2, $3)
RETURNING ` + customerColumns
	created, err := scanCustomer(r.db.pool.QueryRow(ctx, query, c.Name, c.Phone, c.Email))
	if err != nil {
		return customerError("create customer", err)
	}
	*c = *created
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*entities.Customer, error) {
	return r.findOne(ctx, "get customer by id", `WHERE id = $1`, id)
}

func (r *CustomerRepository) FindByPhone(ctx context.Context, phone string) (*entities.Customer, error) {
	return r.findOne(ctx, "get customer by phone", `WHERE phone = $1`, phone)
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*entities.Customer, error) {
	return r.findOne(ctx, "get customer by email", `WHERE email = lower($1)`, email)
}

func (r *CustomerRepository) findOne(ctx context.Context, op, where string, arg any) (*entities.Customer, error) {
	ctx, cancel := r.db.ctx(ctx)
	defer cancel()
	c, err := scanCustomer(r.db.pool.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers `+where, arg))
	if err != nil {
		return nil, customerError(op, err)
	}
	return c, nil
}

// FindByIDs returns the customers that still exist among ids, in no particular order.
func (r *CustomerRepository) FindByIDs(ctx context.Context, ids []string) ([]entities.Customer, error) {
	if len(ids) == 0 {
		return []entities.Customer{}, nil
	}
	ctx, cancel := r.db.ctx(ctx)
	defer cancel()
	rows, err := r.db.pool.Query(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = ANY($1::text[]::uuid[])`, ids)
	if err != nil {
		return nil, customerError("get customers by ids", err)
	}
	out, err := collect(rows, scanCustomer)
	if err != nil {
		return nil, fmt.Errorf("scan customers: %w", err)
	}
	return out, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]entities.Customer, error) {
	ctx, cancel := r.db.ctx(ctx)
	defer cancel()
	rows, err := r.db.pool.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	out, err := collect(rows, scanCustomer)
	if err != nil {
		return nil, fmt.Errorf("scan customers: %w", err)
	}
	return out, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *entities.Customer) error {
	ctx, cancel := r.db.ctx(ctx)
	defer cancel()
	const query = `
UPDATE customers
SET name = $2, phone = $3, email = $4, updated_at = NOW()
WHERE id = $1
RETURNING ` + customerColumns
	updated, err := scanCustomer(r.db.pool.QueryRow(ctx, query, c.ID, c.Name, c.Phone, c.Email))
	if err != nil {
		return customerError("update customer", err)
	}
	*c = *updated
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.db.ctx(ctx)
	defer cancel()
	tag, err := r.db.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return customerError("delete customer", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}
