package output

import (
	"context"
	"time"

	"clubhouse/internal/domain/entities"
)

// Admission tells how AddAttendee resolved a successful call.
type Admission int

const (
	Admitted Admission = iota + 1
	AlreadyRegistered
)

type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id string) (*entities.Event, error)
	List(ctx context.Context) ([]entities.Event, error)
	// A limit <= 0 on the paged listings means no limit.
	// ListUpcoming returns events with now < start, soonest first.
	ListUpcoming(ctx context.Context, now time.Time, offset, limit int) ([]entities.Event, error)
	// ListOngoing returns events with start <= now <= end, soonest first.
	ListOngoing(ctx context.Context, now time.Time) ([]entities.Event, error)
	// ListPast returns events with end < now, most recent first.
	ListPast(ctx context.Context, now time.Time, offset, limit int) ([]entities.Event, error)
	FindByAttendee(ctx context.Context, customerID string) ([]entities.Event, error)
	// Update writes every field except the attendee set. It fails with domain.ErrCannotReduceSlots
	// when the stored attendee count exceeds the new capacity.
	Update(ctx context.Context, event *entities.Event) error
	Delete(ctx context.Context, id string) error
	// AddAttendee appends customerID iff it is absent, the event has a free seat and now is inside
	// the registration window, as one indivisible operation. Rejections are domain.ErrEventNotFound,
	// domain.ErrRegistrationClosed and domain.ErrEventFull.
	AddAttendee(ctx context.Context, eventID, customerID string, now time.Time) (*entities.Event, Admission, error)
}
