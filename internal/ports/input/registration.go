package input

import (
	"context"
	"time"

	"clubhouse/internal/domain/entities"
)

type Register struct {
	EventID  string
	Phone    string
	Name     string
	Email    string
	Password string
}

type RegistrationOutcome struct {
	Customer          *entities.Customer
	Event             *entities.Event
	Admitted          bool
	AlreadyRegistered bool
	RegisteredAt      time.Time
}

type RegistrationUseCase interface {
	Register(ctx context.Context, cmd Register) (*RegistrationOutcome, error)
}
