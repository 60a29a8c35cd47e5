package input

import (
	"context"

	"clubhouse/internal/domain/entities"
)

type CreateCustomer struct {
	Name  string
	Phone string
	Email string
}

// UpdateCustomer carries the fields to change; nil means untouched.
type UpdateCustomer struct {
	Name  *string
	Phone *string
	Email *string
}

type PhoneCheck struct {
	Exists   bool
	Customer *entities.Customer
}

// CustomerDetail is a customer with the events whose attendee set holds it.
type CustomerDetail struct {
	Customer       *entities.Customer
	AttendedEvents []entities.Event
}

type CustomerUseCase interface {
	CreateCustomer(ctx context.Context, cmd CreateCustomer) (*entities.Customer, error)
	GetCustomer(ctx context.Context, id string) (*CustomerDetail, error)
	FindByPhone(ctx context.Context, phone string) (*entities.Customer, error)
	FindByEmail(ctx context.Context, email string) (*entities.Customer, error)
	ListCustomers(ctx context.Context) ([]entities.Customer, error)
	UpdateCustomer(ctx context.Context, id string, cmd UpdateCustomer) (*entities.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
	VerifyPhone(ctx context.Context, phone string) (*PhoneCheck, error)
}
