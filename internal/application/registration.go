package application

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"clubhouse/internal/clock"
	"clubhouse/internal/domain"
	"clubhouse/internal/domain/entities"
	"clubhouse/internal/ports/input"
	"clubhouse/internal/ports/output"
)

var _ input.RegistrationUseCase = (*RegistrationService)(nil)

// RegistrationService admits customers to events.
//
// Every admission check that does not need a customer record runs first: event lookup,
// registration window, event password and, for a phone already on file, membership and
// capacity. A new customer is created only after those pass. The seat itself is taken by
// EventRepository.AddAttendee, which repeats the membership, capacity and window checks
// atomically. If a concurrent request takes the last seat between the pre-check and the
// append, the customer created by this request stays on file while the registration is
// rejected with domain.ErrEventFull.
type RegistrationService struct {
	eventRepo    output.EventRepository
	customers    *CustomerService
	customerRepo output.CustomerRepository
	hasher       output.PasswordHasher
	publisher    output.RegistrationPublisher
	clock        clock.Clock
	log          *zerolog.Logger
}

func NewRegistrationService(
	eventRepo output.EventRepository,
	customerRepo output.CustomerRepository,
	customers *CustomerService,
	hasher output.PasswordHasher,
	publisher output.RegistrationPublisher,
	clk clock.Clock,
	logger *zerolog.Logger,
) *RegistrationService {
	return &RegistrationService{
		eventRepo:    eventRepo,
		customers:    customers,
		customerRepo: customerRepo,
		hasher:       hasher,
		publisher:    publisher,
		clock:        clk,
		log:          logger,
	}
}

func (s *RegistrationService) Register(ctx context.Context, cmd input.Register) (*input.RegistrationOutcome, error) {
	phone := entities.NormalizePhone(cmd.Phone)
	if err := entities.ValidatePhone(phone); err != nil {
		return nil, err
	}
	if err := checkID(cmd.EventID); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.FindByID(ctx, cmd.EventID)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	if !event.RegistrationOpen(now) {
		return nil, domain.ErrRegistrationClosed
	}
	if event.HasPassword() && (cmd.Password == "" || !s.hasher.Compare(event.PasswordHash, cmd.Password)) {
		return nil, domain.ErrEventPasswordMismatch
	}

	// An existing record wins over any name or email in the request.
	customer, err := s.customerRepo.FindByPhone(ctx, phone)
	if err = ignoreNotFound(err); err != nil {
		return nil, fmt.Errorf("find customer by phone: %w", err)
	}
	if customer != nil && event.HasAttendee(customer.ID) {
		return s.outcome(customer, event, output.AlreadyRegistered, now), nil
	}
	if event.IsFull() {
		return nil, domain.ErrEventFull
	}
	if customer == nil {
		if customer, err = s.newCustomer(ctx, phone, cmd.Name, cmd.Email); err != nil {
			return nil, err
		}
	}

	updated, admission, err := s.eventRepo.AddAttendee(ctx, event.ID, customer.ID, now)
	if err != nil {
		return nil, err
	}
	if admission == output.Admitted {
		s.announce(ctx, customer, updated, now)
	}
	s.log.Info().
		Str("event_id", updated.ID).
		Str("customer_id", customer.ID).
		Bool("admitted", admission == output.Admitted).
		Bool("already_registered", admission == output.AlreadyRegistered).
		Msg("registration processed")
	return s.outcome(customer, updated, admission, now), nil
}

func (s *RegistrationService) newCustomer(ctx context.Context, phone, name, email string) (*entities.Customer, error) {
	c := &entities.Customer{Name: name, Phone: phone, Email: email}
	c.Normalize()
	if c.Name == "" || c.Email == "" {
		return nil, domain.ErrCustomerDetails
	}
	if err := s.customers.create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// announce publishes the admission. Failures are logged and never undo the seat.
func (s *RegistrationService) announce(ctx context.Context, c *entities.Customer, e *entities.Event, now time.Time) {
	msg := output.RegistrationAdmitted{
		EventID:       e.ID,
		EventName:     e.Name,
		EventStart:    e.StartTime,
		CustomerID:    c.ID,
		CustomerName:  c.Name,
		AttendeeCount: len(e.Attendees),
		Capacity:      e.Capacity,
		AdmittedAt:    now,
	}
	if err := s.publisher.PublishAdmitted(ctx, msg); err != nil {
		s.log.Warn().Err(err).Str("event_id", e.ID).Str("customer_id", c.ID).Msg("publish registration failed")
	}
}

func (s *RegistrationService) outcome(c *entities.Customer, e *entities.Event, admission output.Admission, now time.Time) *input.RegistrationOutcome {
	return &input.RegistrationOutcome{
		Customer:          c,
		Event:             e,
		Admitted:          admission == output.Admitted,
		AlreadyRegistered: admission == output.AlreadyRegistered,
		RegisteredAt:      now,
	}
}
