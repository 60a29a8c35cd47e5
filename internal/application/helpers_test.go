package application

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"clubhouse/internal/clock"
	"clubhouse/internal/domain/entities"
	"clubhouse/internal/infrastructure/security"
	"clubhouse/internal/testutil"
)

var testNow = time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC)

type fixture struct {
	store     *testutil.Store
	publisher *testutil.Publisher
	hasher    *security.BcryptHasher
	clock     clock.Clock
	customers *CustomerService
	events    *EventService
	register  *RegistrationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := zerolog.Nop()
	f := &fixture{
		store:     testutil.NewStore(),
		publisher: &testutil.Publisher{},
		hasher:    security.NewBcryptHasher(bcrypt.MinCost),
		clock:     clock.NewFixed(testNow),
	}
	f.customers = NewCustomerService(f.store.Customers(), f.store.Events())
	f.events = NewEventService(f.store.Events(), f.store.Customers(), f.hasher, f.clock)
	f.register = NewRegistrationService(f.store.Events(), f.store.Customers(), f.customers, f.hasher, f.publisher, f.clock, &logger)
	return f
}

// openEvent seeds an event whose registration window contains testNow.
func (f *fixture) openEvent(t *testing.T, capacity int, password string) *entities.Event {
	t.Helper()
	e := entities.Event{
		ID:                "7b0c1a4e-3f55-4c1e-9a57-0d5c1f1f2a01",
		Name:              "Saturday Night",
		Description:       "House and techno",
		Capacity:          capacity,
		StartTime:         testNow.Add(24 * time.Hour),
		EndTime:           testNow.Add(30 * time.Hour),
		RegistrationStart: testNow.Add(-time.Hour),
		RegistrationEnd:   testNow.Add(time.Hour),
		Attendees:         []string{},
	}
	if password != "" {
		hash, err := f.hasher.Hash(password)
		if err != nil {
			t.Fatalf("hash: %v", err)
		}
		e.PasswordHash = hash
	}
	f.store.PutEvent(e)
	return &e
}
