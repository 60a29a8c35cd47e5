package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"clubhouse/internal/domain"
	"clubhouse/internal/domain/entities"
	"clubhouse/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	db *DB
}

func NewEventRepository(db *DB) *EventRepository {
	return &EventRepository{db: db}
}

func eventError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrEventNotFound
	}
	if isInvalidUUID(err) {
		return domain.ErrInvalidID
	}
	return fmt.Errorf("%s: %w", op, err)
}

func nonNil(images []string) []string {
	if images == nil {
		return []string{}
	}
	return images
}

// limitArg maps a non-positive limit to NULL, which Postgres reads as LIMIT ALL.
func limitArg(limit int) any {
	if limit <= 0 {
		return nil
	}
	return limit
}

func (r *EventRepository) Create(ctx context.Context, e *entities.Event) error {
	ctx, cancel := r.db.ctx(ctx)
	defer cancel()
	const query = `
INSERT INTO events (name, description, images, capacity, start_time, end_time,
                    registration_start, registration_end, password_hash)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + eventColumns
	created, err := scanEvent(r.db.pool.QueryRow(ctx, query,
		e.Name, e.Description, nonNil(e.Images), e.Capacity, e.StartTime, e.EndTime,
		e.RegistrationStart, e.RegistrationEnd, e.PasswordHash,
	))
	if err != nil {
		return eventError("create event", err)
	}
	*e = *created
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*entities.Event, error) {
	ctx, cancel := r.db.ctx(ctx)
	defer cancel()
	e, err := scanEvent(r.db.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
	if err != nil {
		return nil, eventError("get event by id", err)
	}
	return e, nil
}

func (r *EventRepository) query(ctx context.Context, op, sql string, args ...any) ([]entities.Event, error) {
	ctx, cancel := r.db.ctx(ctx)
	defer cancel()
	rows, err := r.db.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, eventError(op, err)
	}
	out, err := collect(rows, scanEvent)
	if err != nil {
		return nil, fmt.Errorf("%s: scan: %w", op, err)
	}
	return out, nil
}

func (r *EventRepository) List(ctx context.Context) ([]entities.Event, error) {
	return r.query(ctx, "list events", `SELECT `+eventColumns+` FROM events ORDER BY start_time DESC, id`)
}

func (r *EventRepository) ListUpcoming(ctx context.Context, now time.Time, offset, limit int) ([]entities.Event, error) {
	return r.query(ctx, "list upcoming events", `
SELECT `+eventColumns+` FROM events
WHERE start_time > $1
ORDER BY start_time ASC, id
LIMIT $3 OFFSET $2`, now, offset, limitArg(limit))
}

func (r *EventRepository) ListOngoing(ctx context.Context, now time.Time) ([]entities.Event, error) {
	return r.query(ctx, "list ongoing events", `
SELECT `+eventColumns+` FROM events
WHERE start_time <= $1 AND end_time >= $1
ORDER BY start_time ASC, id`, now)
}

func (r *EventRepository) ListPast(ctx context.Context, now time.Time, offset, limit int) ([]entities.Event, error) {
	return r.query(ctx, "list past events", `
SELECT `+eventColumns+` FROM events
WHERE end_time < $1
ORDER BY start_time DESC, id
LIMIT $3 OFFSET $2`, now, offset, limitArg(limit))
}

func (r *EventRepository) FindByAttendee(ctx context.Context, customerID string) ([]entities.Event, error) {
	return r.query(ctx, "find events by attendee", `
SELECT `+eventColumns+` FROM events
WHERE $1::uuid = ANY(attendees)
ORDER BY start_time DESC, id`, customerID)
}

// Update leaves attendees alone and refuses, in the same statement, a capacity below the stored attendee count.
func (r *EventRepository) Update(ctx context.Context, e *entities.Event) error {
	ctx, cancel := r.db.ctx(ctx)
	defer cancel()
	const query = `
UPDATE events
SET name = $2, description = $3, images = $4, capacity = $5, start_time = $6, end_time = $7,
    registration_start = $8, registration_end = $9, password_hash = $10, updated_at = NOW()
WHERE id = $1 AND cardinality(attendees) <= $5
RETURNING ` + eventColumns
	updated, err := scanEvent(r.db.pool.QueryRow(ctx, query,
		e.ID, e.Name, e.Description, nonNil(e.Images), e.Capacity, e.StartTime, e.EndTime,
		e.RegistrationStart, e.RegistrationEnd, e.PasswordHash,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		if _, findErr := r.FindByID(ctx, e.ID); findErr != nil {
			return findErr
		}
		return domain.ErrCannotReduceSlots
	}
	if err != nil {
		return eventError("update event", err)
	}
	*e = *updated
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.db.ctx(ctx)
	defer cancel()
	tag, err := r.db.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return eventError("delete event", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

// AddAttendee is a single conditional UPDATE; concurrent callers for the last seat are
// serialized by the row lock and each re-evaluates the WHERE clause on the latest row.
// When no row changes, the event is re-read to name the failed condition.
func (r *EventRepository) AddAttendee(ctx context.Context, eventID, customerID string, now time.Time) (*entities.Event, output.Admission, error) {
	ctx, cancel := r.db.ctx(ctx)
	defer cancel()
	const query = `
UPDATE events
SET attendees = array_append(attendees, $2::uuid), updated_at = NOW()
WHERE id = $1
  AND NOT ($2::uuid = ANY(attendees))
  AND cardinality(attendees) < capacity
  AND $3::timestamptz BETWEEN registration_start AND registration_end
RETURNING ` + eventColumns
	updated, err := scanEvent(r.db.pool.QueryRow(ctx, query, eventID, customerID, now))
	if err == nil {
		return updated, output.Admitted, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, 0, eventError("add attendee", err)
	}

	current, err := r.FindByID(ctx, eventID)
	if err != nil {
		return nil, 0, err
	}
	switch {
	case current.HasAttendee(customerID):
		return current, output.AlreadyRegistered, nil
	case !current.RegistrationOpen(now):
		return nil, 0, domain.ErrRegistrationClosed
	default:
		return nil, 0, domain.ErrEventFull
	}
}
