package application

import (
	"context"
	"fmt"

	"clubhouse/internal/clock"
	"clubhouse/internal/domain"
	"clubhouse/internal/domain/entities"
	"clubhouse/internal/ports/input"
	"clubhouse/internal/ports/output"
)

const (
	DefaultPageLimit = 6
	MaxPageLimit     = 50
)

var _ input.EventUseCase = (*EventService)(nil)

type EventService struct {
	eventRepo    output.EventRepository
	customerRepo output.CustomerRepository
	hasher       output.PasswordHasher
	clock        clock.Clock
}

func NewEventService(
	eventRepo output.EventRepository,
	customerRepo output.CustomerRepository,
	hasher output.PasswordHasher,
	clk clock.Clock,
) *EventService {
	return &EventService{
		eventRepo:    eventRepo,
		customerRepo: customerRepo,
		hasher:       hasher,
		clock:        clk,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, cmd input.CreateEvent) (*entities.Event, error) {
	event := &entities.Event{
		Name:              cmd.Name,
		Description:       cmd.Description,
		Images:            cmd.Images,
		Capacity:          cmd.Capacity,
		StartTime:         cmd.StartTime,
		EndTime:           cmd.EndTime,
		RegistrationStart: cmd.RegistrationStart,
		RegistrationEnd:   cmd.RegistrationEnd,
	}
	event.Normalize()
	if err := event.Validate(); err != nil {
		return nil, err
	}
	if err := s.setPassword(event, cmd.Password); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

// setPassword stores the hash of plain, or clears the password when plain is empty.
func (s *EventService) setPassword(event *entities.Event, plain string) error {
	if plain == "" {
		event.PasswordHash = ""
		return nil
	}
	hash, err := s.hasher.Hash(plain)
	if err != nil {
		return fmt.Errorf("hash event password: %w", err)
	}
	event.PasswordHash = hash
	return nil
}

func (s *EventService) GetEvent(ctx context.Context, id string) (*entities.Event, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return s.eventRepo.FindByID(ctx, id)
}

func (s *EventService) GetEventWithAttendees(ctx context.Context, id string) (*input.EventWithAttendees, error) {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	attendees, err := s.customerRepo.FindByIDs(ctx, event.Attendees)
	if err != nil {
		return nil, fmt.Errorf("resolve attendees: %w", err)
	}
	return &input.EventWithAttendees{Event: event, Attendees: attendees}, nil
}

func (s *EventService) ListEvents(ctx context.Context) ([]entities.Event, error) {
	return s.eventRepo.List(ctx)
}

// UpdateEvent validates the merged event, so a partial edit cannot break an ordering it did not touch.
func (s *EventService) UpdateEvent(ctx context.Context, id string, cmd input.UpdateEvent) (*entities.Event, error) {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if cmd.Name != nil {
		event.Name = *cmd.Name
	}
	if cmd.Description != nil {
		event.Description = *cmd.Description
	}
	if cmd.Images != nil {
		event.Images = *cmd.Images
	}
	if cmd.Capacity != nil {
		event.Capacity = *cmd.Capacity
	}
	if cmd.StartTime != nil {
		event.StartTime = *cmd.StartTime
	}
	if cmd.EndTime != nil {
		event.EndTime = *cmd.EndTime
	}
	if cmd.RegistrationStart != nil {
		event.RegistrationStart = *cmd.RegistrationStart
	}
	if cmd.RegistrationEnd != nil {
		event.RegistrationEnd = *cmd.RegistrationEnd
	}
	event.Normalize()
	if err := event.Validate(); err != nil {
		return nil, err
	}
	if len(event.Attendees) > event.Capacity {
		return nil, domain.ErrCannotReduceSlots
	}
	if cmd.Password != nil {
		if err := s.setPassword(event, *cmd.Password); err != nil {
			return nil, err
		}
	}
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

// DeleteEvent removes the event whatever its attendees. Customers are kept.
func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	return s.eventRepo.Delete(ctx, id)
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	return page, min(limit, MaxPageLimit)
}

type pagedList func(ctx context.Context, offset, limit int) ([]entities.Event, error)

// paginate asks for one extra row to learn whether another page exists.
func paginate(ctx context.Context, list pagedList, page, limit int) (*input.EventPage, error) {
	page, limit = normalizePage(page, limit)
	events, err := list(ctx, (page-1)*limit, limit+1)
	if err != nil {
		return nil, err
	}
	hasMore := len(events) > limit
	if hasMore {
		events = events[:limit]
	}
	return &input.EventPage{Events: events, Page: page, Limit: limit, HasMore: hasMore}, nil
}

func (s *EventService) ListUpcoming(ctx context.Context, page, limit int) (*input.EventPage, error) {
	now := s.clock.Now()
	return paginate(ctx, func(ctx context.Context, offset, limit int) ([]entities.Event, error) {
		return s.eventRepo.ListUpcoming(ctx, now, offset, limit)
	}, page, limit)
}

func (s *EventService) ListOngoing(ctx context.Context) ([]entities.Event, error) {
	return s.eventRepo.ListOngoing(ctx, s.clock.Now())
}

func (s *EventService) ListPast(ctx context.Context, page, limit int) (*input.EventPage, error) {
	now := s.clock.Now()
	return paginate(ctx, func(ctx context.Context, offset, limit int) ([]entities.Event, error) {
		return s.eventRepo.ListPast(ctx, now, offset, limit)
	}, page, limit)
}

// Categorized partitions every event against a single reading of the clock.
func (s *EventService) Categorized(ctx context.Context) (*input.CategorizedEvents, error) {
	now := s.clock.Now()
	upcoming, err := s.eventRepo.ListUpcoming(ctx, now, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("list upcoming: %w", err)
	}
	ongoing, err := s.eventRepo.ListOngoing(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list ongoing: %w", err)
	}
	past, err := s.eventRepo.ListPast(ctx, now, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("list past: %w", err)
	}
	return &input.CategorizedEvents{Upcoming: upcoming, Ongoing: ongoing, Past: past}, nil
}

// NextEvent returns the soonest upcoming event, or nil when none is scheduled.
func (s *EventService) NextEvent(ctx context.Context) (*entities.Event, error) {
	events, err := s.eventRepo.ListUpcoming(ctx, s.clock.Now(), 0, 1)
	if err != nil {
		return nil, fmt.Errorf("list upcoming: %w", err)
	}
	if len(events) == 0 {
		return nil, nil
	}
	return &events[0], nil
}
