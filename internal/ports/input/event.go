package input

import (
	"context"
	"time"

	"clubhouse/internal/domain/entities"
)

type CreateEvent struct {
	Name              string
	Description       string
	Images            []string
	Capacity          int
	StartTime         time.Time
	EndTime           time.Time
	RegistrationStart time.Time
	RegistrationEnd   time.Time
	Password          string
}

// UpdateEvent is a partial edit. A non-nil empty Password removes the event password.
type UpdateEvent struct {
	Name              *string
	Description       *string
	Images            *[]string
	Capacity          *int
	StartTime         *time.Time
	EndTime           *time.Time
	RegistrationStart *time.Time
	RegistrationEnd   *time.Time
	Password          *string
}

type EventPage struct {
	Events  []entities.Event
	Page    int
	Limit   int
	HasMore bool
}

type CategorizedEvents struct {
	Upcoming []entities.Event
	Ongoing  []entities.Event
	Past     []entities.Event
}

func (c CategorizedEvents) Total() int {
	return len(c.Upcoming) + len(c.Ongoing) + len(c.Past)
}

// EventWithAttendees resolves attendee ids for admin views. Ids with no customer record are skipped.
type EventWithAttendees struct {
	Event     *entities.Event
	Attendees []entities.Customer
}

type EventUseCase interface {
	CreateEvent(ctx context.Context, cmd CreateEvent) (*entities.Event, error)
	GetEvent(ctx context.Context, id string) (*entities.Event, error)
	GetEventWithAttendees(ctx context.Context, id string) (*EventWithAttendees, error)
	ListEvents(ctx context.Context) ([]entities.Event, error)
	UpdateEvent(ctx context.Context, id string, cmd UpdateEvent) (*entities.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	ListUpcoming(ctx context.Context, page, limit int) (*EventPage, error)
	ListOngoing(ctx context.Context) ([]entities.Event, error)
	ListPast(ctx context.Context, page, limit int) (*EventPage, error)
	Categorized(ctx context.Context) (*CategorizedEvents, error)
	NextEvent(ctx context.Context) (*entities.Event, error)
}
