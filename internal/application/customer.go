package application

import (
	"context"
	"fmt"

	"clubhouse/internal/domain"
	"clubhouse/internal/domain/entities"
	"clubhouse/internal/ports/input"
	"clubhouse/internal/ports/output"
)

var _ input.CustomerUseCase = (*CustomerService)(nil)

type CustomerService struct {
	customerRepo output.CustomerRepository
	eventRepo    output.EventRepository
}

func NewCustomerService(
	customerRepo output.CustomerRepository,
	eventRepo output.EventRepository,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		eventRepo:    eventRepo,
	}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, cmd input.CreateCustomer) (*entities.Customer, error) {
	customer := &entities.Customer{Name: cmd.Name, Phone: cmd.Phone, Email: cmd.Email}
	if err := s.create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// create normalizes, validates and stores c. The store's unique indexes stay the final word on collisions.
func (s *CustomerService) create(ctx context.Context, c *entities.Customer) error {
	c.Normalize()
	if err := c.Validate(); err != nil {
		return err
	}
	if err := s.checkConflicts(ctx, c); err != nil {
		return err
	}
	if err := s.customerRepo.Create(ctx, c); err != nil {
		return fmt.Errorf("create customer: %w", err)
	}
	return nil
}

// checkConflicts fails when c's phone or email already belongs to a different customer.
func (s *CustomerService) checkConflicts(ctx context.Context, c *entities.Customer) error {
	byPhone, err := s.customerRepo.FindByPhone(ctx, c.Phone)
	if err = ignoreNotFound(err); err != nil {
		return fmt.Errorf("find customer by phone: %w", err)
	}
	if byPhone != nil && byPhone.ID != c.ID {
		return domain.ErrPhoneTaken
	}
	byEmail, err := s.customerRepo.FindByEmail(ctx, c.Email)
	if err = ignoreNotFound(err); err != nil {
		return fmt.Errorf("find customer by email: %w", err)
	}
	if byEmail != nil && byEmail.ID != c.ID {
		return domain.ErrEmailTaken
	}
	return nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id string) (*input.CustomerDetail, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.FindByAttendee(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find attended events: %w", err)
	}
	return &input.CustomerDetail{Customer: customer, AttendedEvents: events}, nil
}

func (s *CustomerService) FindByPhone(ctx context.Context, phone string) (*entities.Customer, error) {
	return s.customerRepo.FindByPhone(ctx, entities.NormalizePhone(phone))
}

func (s *CustomerService) FindByEmail(ctx context.Context, email string) (*entities.Customer, error) {
	return s.customerRepo.FindByEmail(ctx, entities.NormalizeEmail(email))
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]entities.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id string, cmd input.UpdateCustomer) (*entities.Customer, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cmd.Name != nil {
		customer.Name = *cmd.Name
	}
	if cmd.Phone != nil {
		customer.Phone = *cmd.Phone
	}
	if cmd.Email != nil {
		customer.Email = *cmd.Email
	}
	customer.Normalize()
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkConflicts(ctx, customer); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return customer, nil
}

// DeleteCustomer leaves attendee references in events untouched.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, id)
}

func (s *CustomerService) VerifyPhone(ctx context.Context, phone string) (*input.PhoneCheck, error) {
	phone = entities.NormalizePhone(phone)
	if err := entities.ValidatePhone(phone); err != nil {
		return nil, err
	}
	customer, err := s.customerRepo.FindByPhone(ctx, phone)
	if err = ignoreNotFound(err); err != nil {
		return nil, fmt.Errorf("find customer by phone: %w", err)
	}
	return &input.PhoneCheck{Exists: customer != nil, Customer: customer}, nil
}
