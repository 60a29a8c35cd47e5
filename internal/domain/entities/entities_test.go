package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"clubhouse/internal/domain"
)

func TestEvent_PhaseAt(t *testing.T) {
	start := time.Date(2025, 6, 14, 22, 0, 0, 0, time.UTC)
	e := Event{StartTime: start, EndTime: start.Add(4 * time.Hour)}

	assert.Equal(t, PhaseUpcoming, e.PhaseAt(start.Add(-time.Second)))
	assert.Equal(t, PhaseOngoing, e.PhaseAt(start))
	assert.Equal(t, PhaseOngoing, e.PhaseAt(e.EndTime))
	assert.Equal(t, PhasePast, e.PhaseAt(e.EndTime.Add(time.Second)))
}

func TestEvent_Seats(t *testing.T) {
	e := Event{Capacity: 2, Attendees: []string{"a"}}
	assert.False(t, e.IsFull())
	assert.Equal(t, 1, e.AvailableSpots())
	assert.True(t, e.HasAttendee("a"))

	e.Attendees = append(e.Attendees, "b", "c")
	assert.True(t, e.IsFull())
	assert.Equal(t, 0, e.AvailableSpots())
}

func TestCustomer_Validate(t *testing.T) {
	c := Customer{Name: " Ravi ", Phone: "9876543210 ", Email: " RAVI@Mail.com"}
	c.Normalize()
	assert.NoError(t, c.Validate())
	assert.Equal(t, "ravi@mail.com", c.Email)

	c.Phone = "+919876543210"
	assert.ErrorIs(t, c.Validate(), domain.ErrPhoneInvalid)

	c.Phone = "9876543210"
	c.Email = "ravi@"
	assert.ErrorIs(t, c.Validate(), domain.ErrEmailInvalid)
}

func TestHappyHour_Validate(t *testing.T) {
	hh := HappyHour{StartTime: "18:00", EndTime: "20:30", Image: "https://cdn.club.test/hh.png"}
	assert.NoError(t, hh.Validate())

	for _, bad := range []string{"6:00", "24:00", "18:60", "18-00", ""} {
		hh.StartTime = bad
		assert.ErrorIs(t, hh.Validate(), domain.ErrInvalidClockTime, bad)
	}

	hh.StartTime, hh.EndTime = "20:30", "20:30"
	assert.ErrorIs(t, hh.Validate(), domain.ErrClockTimeOrder)
}

func TestMinutesOfDay(t *testing.T) {
	for in, want := range map[string]int{"00:00": 0, "09:05": 545, "18:30": 1110, "23:59": 1439} {
		got, ok := minutesOfDay(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"9:05", "24:00", "12:5", "ab:cd"} {
		_, ok := minutesOfDay(bad)
		assert.False(t, ok, bad)
	}
}

func TestHappyHour_LiveAt(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	hh := HappyHour{StartTime: "18:00", EndTime: "20:00"}

	// 12:30 UTC is 18:00 in Kolkata.
	assert.True(t, hh.LiveAt(time.Date(2025, 6, 14, 12, 30, 0, 0, time.UTC), kolkata))
	assert.True(t, hh.LiveAt(time.Date(2025, 6, 14, 14, 30, 59, 0, time.UTC), kolkata))
	assert.False(t, hh.LiveAt(time.Date(2025, 6, 14, 14, 31, 0, 0, time.UTC), kolkata))
	assert.False(t, hh.LiveAt(time.Date(2025, 6, 14, 12, 29, 0, 0, time.UTC), kolkata))
}
