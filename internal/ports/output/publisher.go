package output

import (
	"context"
	"time"
)

// RegistrationAdmitted is emitted after a customer takes a seat.
type RegistrationAdmitted struct {
	EventID       string
	EventName     string
	EventStart    time.Time
	CustomerID    string
	CustomerName  string
	AttendeeCount int
	Capacity      int
	AdmittedAt    time.Time
}

type RegistrationPublisher interface {
	PublishAdmitted(ctx context.Context, msg RegistrationAdmitted) error
}
