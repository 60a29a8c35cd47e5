package database

import (
	"github.com/jackc/pgx/v5"

	"clubhouse/internal/domain/entities"
)

const (
	customerColumns  = `id, name, phone, email, created_at, updated_at`
	eventColumns     = `id, name, description, images, capacity, start_time, end_time, registration_start, registration_end, password_hash, attendees::text[], created_at, updated_at`
	adminColumns     = `id, name, email, password_hash, created_at, updated_at`
	happyHourColumns = `id, start_time, end_time, image, created_at, updated_at`
)

func scanCustomer(row pgx.Row) (*entities.Customer, error) {
	var c entities.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanEvent(row pgx.Row) (*entities.Event, error) {
	var e entities.Event
	err := row.Scan(
		&e.ID, &e.Name, &e.Description, &e.Images, &e.Capacity,
		&e.StartTime, &e.EndTime, &e.RegistrationStart, &e.RegistrationEnd,
		&e.PasswordHash, &e.Attendees, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanAdmin(row pgx.Row) (*entities.Admin, error) {
	var a entities.Admin
	if err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func scanHappyHour(row pgx.Row) (*entities.HappyHour, error) {
	var h entities.HappyHour
	if err := row.Scan(&h.ID, &h.StartTime, &h.EndTime, &h.Image, &h.CreatedAt, &h.UpdatedAt); err != nil {
		return nil, err
	}
	return &h, nil
}

// collect scans every row with scan. pgx.Rows satisfies pgx.Row for the current row.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (*T, error)) ([]T, error) {
	defer rows.Close()
	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, rows.Err()
}
