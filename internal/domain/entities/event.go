package entities

import (
	"net/url"
	"slices"
	"strings"
	"time"

	"clubhouse/internal/domain"
)

// Phase places an event relative to a point in time.
type Phase string

const (
	PhaseUpcoming Phase = "upcoming"
	PhaseOngoing  Phase = "ongoing"
	PhasePast     Phase = "past"
)

type Event struct {
	ID                string
	Name              string
	Description       string
	Images            []string
	Capacity          int
	StartTime         time.Time
	EndTime           time.Time
	RegistrationStart time.Time
	RegistrationEnd   time.Time
	PasswordHash      string   // bcrypt, empty when the event is open
	Attendees         []string // customer ids, unique, len <= Capacity
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (e *Event) HasPassword() bool {
	return e.PasswordHash != ""
}

// RegistrationOpen reports whether now falls inside [RegistrationStart, RegistrationEnd].
func (e *Event) RegistrationOpen(now time.Time) bool {
	return !now.Before(e.RegistrationStart) && !now.After(e.RegistrationEnd)
}

func (e *Event) HasAttendee(customerID string) bool {
	return slices.Contains(e.Attendees, customerID)
}

func (e *Event) IsFull() bool {
	return len(e.Attendees) >= e.Capacity
}

func (e *Event) AvailableSpots() int {
	return max(0, e.Capacity-len(e.Attendees))
}

// PhaseAt partitions by [StartTime, EndTime], both ends inclusive for ongoing.
func (e *Event) PhaseAt(now time.Time) Phase {
	switch {
	case now.Before(e.StartTime):
		return PhaseUpcoming
	case now.After(e.EndTime):
		return PhasePast
	default:
		return PhaseOngoing
	}
}

// Normalize trims text fields and drops blank image entries.
func (e *Event) Normalize() {
	e.Name = strings.TrimSpace(e.Name)
	e.Description = strings.TrimSpace(e.Description)
	images := make([]string, 0, len(e.Images))
	for _, img := range e.Images {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}
	e.Images = images
}

// Validate checks required fields and both time orderings on the full definition.
func (e *Event) Validate() error {
	if e.Name == "" {
		return domain.ErrNameRequired
	}
	if e.Description == "" {
		return domain.ErrDescriptionMissing
	}
	if e.Capacity <= 0 {
		return domain.ErrInvalidCapacity
	}
	if e.StartTime.IsZero() || e.EndTime.IsZero() || e.RegistrationStart.IsZero() || e.RegistrationEnd.IsZero() {
		return domain.ErrScheduleMissing
	}
	if !e.StartTime.Before(e.EndTime) {
		return domain.ErrEventTimeOrder
	}
	if !e.RegistrationStart.Before(e.RegistrationEnd) {
		return domain.ErrRegistrationOrder
	}
	for _, img := range e.Images {
		if !isAbsoluteURL(img) {
			return domain.ErrInvalidImageURL
		}
	}
	return nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
