package testutil

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"clubhouse/internal/domain"
	"clubhouse/internal/domain/entities"
	"clubhouse/internal/ports/output"
)

// Store is an in-memory implementation of every repository port, guarded by one mutex.
// AddAttendee holds the lock for the whole check-and-append, like the single UPDATE in Postgres.
type Store struct {
	mu         sync.Mutex
	now        func() time.Time
	customers  map[string]entities.Customer
	events     map[string]entities.Event
	admins     map[string]entities.Admin
	happyHours map[string]entities.HappyHour
}

func NewStore() *Store {
	return &Store{
		now:        func() time.Time { return time.Now().UTC() },
		customers:  map[string]entities.Customer{},
		events:     map[string]entities.Event{},
		admins:     map[string]entities.Admin{},
		happyHours: map[string]entities.HappyHour{},
	}
}

func (s *Store) Customers() *CustomerRepo   { return &CustomerRepo{s} }
func (s *Store) Events() *EventRepo         { return &EventRepo{s} }
func (s *Store) Admins() *AdminRepo         { return &AdminRepo{s} }
func (s *Store) HappyHours() *HappyHourRepo { return &HappyHourRepo{s} }

// PutEvent stores e as-is, attendees included. Test seeding only.
func (s *Store) PutEvent(e entities.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	s.events[e.ID] = cloneEvent(e)
}

func (s *Store) CustomerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.customers)
}

func cloneEvent(e entities.Event) entities.Event {
	e.Images = slices.Clone(e.Images)
	e.Attendees = slices.Clone(e.Attendees)
	return e
}

var (
	_ output.CustomerRepository  = (*CustomerRepo)(nil)
	_ output.EventRepository     = (*EventRepo)(nil)
	_ output.AdminRepository     = (*AdminRepo)(nil)
	_ output.HappyHourRepository = (*HappyHourRepo)(nil)
)

type CustomerRepo struct{ s *Store }

func (r *CustomerRepo) conflict(c *entities.Customer) error {
	for _, other := range r.s.customers {
		if other.ID == c.ID {
			continue
		}
		if other.Phone == c.Phone {
			return domain.ErrPhoneTaken
		}
		if other.Email == c.Email {
			return domain.ErrEmailTaken
		}
	}
	return nil
}

func (r *CustomerRepo) Create(_ context.Context, c *entities.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.conflict(c); err != nil {
		return err
	}
	c.ID = uuid.NewString()
	c.CreatedAt = r.s.now()
	c.UpdatedAt = c.CreatedAt
	r.s.customers[c.ID] = *c
	return nil
}

func (r *CustomerRepo) FindByID(_ context.Context, id string) (*entities.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return &c, nil
}

func (r *CustomerRepo) find(match func(entities.Customer) bool) (*entities.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.customers {
		if match(c) {
			return &c, nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

func (r *CustomerRepo) FindByPhone(_ context.Context, phone string) (*entities.Customer, error) {
	return r.find(func(c entities.Customer) bool { return c.Phone == phone })
}

func (r *CustomerRepo) FindByEmail(_ context.Context, email string) (*entities.Customer, error) {
	email = entities.NormalizeEmail(email)
	return r.find(func(c entities.Customer) bool { return c.Email == email })
}

func (r *CustomerRepo) FindByIDs(_ context.Context, ids []string) ([]entities.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.Customer, 0, len(ids))
	for _, id := range ids {
		if c, ok := r.s.customers[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *CustomerRepo) List(_ context.Context) ([]entities.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.Customer, 0, len(r.s.customers))
	for _, c := range r.s.customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *CustomerRepo) Update(_ context.Context, c *entities.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.customers[c.ID]
	if !ok {
		return domain.ErrCustomerNotFound
	}
	if err := r.conflict(c); err != nil {
		return err
	}
	c.CreatedAt = stored.CreatedAt
	c.UpdatedAt = r.s.now()
	r.s.customers[c.ID] = *c
	return nil
}

func (r *CustomerRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[id]; !ok {
		return domain.ErrCustomerNotFound
	}
	delete(r.s.customers, id)
	return nil
}

type EventRepo struct{ s *Store }

func (r *EventRepo) Create(_ context.Context, e *entities.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e.ID = uuid.NewString()
	e.Attendees = []string{}
	e.CreatedAt = r.s.now()
	e.UpdatedAt = e.CreatedAt
	r.s.events[e.ID] = cloneEvent(*e)
	return nil
}

func (r *EventRepo) FindByID(_ context.Context, id string) (*entities.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	e = cloneEvent(e)
	return &e, nil
}

func (r *EventRepo) filter(keep func(entities.Event) bool, less func(a, b entities.Event) bool) []entities.Event {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.Event
	for _, e := range r.s.events {
		if keep(e) {
			out = append(out, cloneEvent(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func window(events []entities.Event, offset, limit int) []entities.Event {
	if offset >= len(events) {
		return []entities.Event{}
	}
	if limit <= 0 {
		return events[offset:]
	}
	return events[offset:min(len(events), offset+limit)]
}

func startAsc(a, b entities.Event) bool  { return a.StartTime.Before(b.StartTime) }
func startDesc(a, b entities.Event) bool { return a.StartTime.After(b.StartTime) }

func (r *EventRepo) List(_ context.Context) ([]entities.Event, error) {
	return r.filter(func(entities.Event) bool { return true }, startDesc), nil
}

func (r *EventRepo) ListUpcoming(_ context.Context, now time.Time, offset, limit int) ([]entities.Event, error) {
	all := r.filter(func(e entities.Event) bool { return e.PhaseAt(now) == entities.PhaseUpcoming }, startAsc)
	return window(all, offset, limit), nil
}

func (r *EventRepo) ListOngoing(_ context.Context, now time.Time) ([]entities.Event, error) {
	return r.filter(func(e entities.Event) bool { return e.PhaseAt(now) == entities.PhaseOngoing }, startAsc), nil
}

func (r *EventRepo) ListPast(_ context.Context, now time.Time, offset, limit int) ([]entities.Event, error) {
	all := r.filter(func(e entities.Event) bool { return e.PhaseAt(now) == entities.PhasePast }, startDesc)
	return window(all, offset, limit), nil
}

func (r *EventRepo) FindByAttendee(_ context.Context, customerID string) ([]entities.Event, error) {
	return r.filter(func(e entities.Event) bool { return e.HasAttendee(customerID) }, startDesc), nil
}

func (r *EventRepo) Update(_ context.Context, e *entities.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.events[e.ID]
	if !ok {
		return domain.ErrEventNotFound
	}
	if len(stored.Attendees) > e.Capacity {
		return domain.ErrCannotReduceSlots
	}
	e.Attendees = slices.Clone(stored.Attendees)
	e.CreatedAt = stored.CreatedAt
	e.UpdatedAt = r.s.now()
	r.s.events[e.ID] = cloneEvent(*e)
	return nil
}

func (r *EventRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.s.events, id)
	return nil
}

func (r *EventRepo) AddAttendee(_ context.Context, eventID, customerID string, now time.Time) (*entities.Event, output.Admission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.events[eventID]
	if !ok {
		return nil, 0, domain.ErrEventNotFound
	}
	switch {
	case e.HasAttendee(customerID):
		e = cloneEvent(e)
		return &e, output.AlreadyRegistered, nil
	case !e.RegistrationOpen(now):
		return nil, 0, domain.ErrRegistrationClosed
	case e.IsFull():
		return nil, 0, domain.ErrEventFull
	}
	e.Attendees = append(slices.Clone(e.Attendees), customerID)
	e.UpdatedAt = r.s.now()
	r.s.events[eventID] = e
	e = cloneEvent(e)
	return &e, output.Admitted, nil
}

type AdminRepo struct{ s *Store }

func (r *AdminRepo) Create(_ context.Context, a *entities.Admin) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.admins {
		if other.Email == a.Email {
			return domain.ErrAdminExists
		}
	}
	a.ID = uuid.NewString()
	a.CreatedAt = r.s.now()
	a.UpdatedAt = a.CreatedAt
	r.s.admins[a.ID] = *a
	return nil
}

func (r *AdminRepo) FindByID(_ context.Context, id string) (*entities.Admin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.admins[id]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	return &a, nil
}

func (r *AdminRepo) FindByEmail(_ context.Context, email string) (*entities.Admin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.admins {
		if a.Email == entities.NormalizeEmail(email) {
			return &a, nil
		}
	}
	return nil, domain.ErrAdminNotFound
}

type HappyHourRepo struct{ s *Store }

func (r *HappyHourRepo) Create(_ context.Context, hh *entities.HappyHour) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if len(r.s.happyHours) > 0 {
		return domain.ErrHappyHourExists
	}
	hh.ID = uuid.NewString()
	hh.CreatedAt = r.s.now()
	hh.UpdatedAt = hh.CreatedAt
	r.s.happyHours[hh.ID] = *hh
	return nil
}

func (r *HappyHourRepo) Current(_ context.Context) (*entities.HappyHour, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, hh := range r.s.happyHours {
		return &hh, nil
	}
	return nil, domain.ErrHappyHourNotFound
}

func (r *HappyHourRepo) FindByID(_ context.Context, id string) (*entities.HappyHour, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	hh, ok := r.s.happyHours[id]
	if !ok {
		return nil, domain.ErrHappyHourNotFound
	}
	return &hh, nil
}

func (r *HappyHourRepo) Update(_ context.Context, hh *entities.HappyHour) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.happyHours[hh.ID]
	if !ok {
		return domain.ErrHappyHourNotFound
	}
	hh.CreatedAt = stored.CreatedAt
	hh.UpdatedAt = r.s.now()
	r.s.happyHours[hh.ID] = *hh
	return nil
}
