package entities

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"clubhouse/internal/domain"
)

const clockLayout = "15:04"

var clockTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// HappyHour is the single daily promotion window, expressed as "HH:mm" wall-clock times in the club's zone.
type HappyHour struct {
	ID        string
	StartTime string
	EndTime   string
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (h *HappyHour) Normalize() {
	h.StartTime = strings.TrimSpace(h.StartTime)
	h.EndTime = strings.TrimSpace(h.EndTime)
	h.Image = strings.TrimSpace(h.Image)
}

func (h *HappyHour) Validate() error {
	start, ok := minutesOfDay(h.StartTime)
	if !ok {
		return domain.ErrInvalidClockTime
	}
	end, ok := minutesOfDay(h.EndTime)
	if !ok {
		return domain.ErrInvalidClockTime
	}
	if end <= start {
		return domain.ErrClockTimeOrder
	}
	if !isAbsoluteURL(h.Image) {
		return domain.ErrInvalidImageURL
	}
	return nil
}

// LiveAt reports whether now, read in loc at minute precision, falls inside [StartTime, EndTime].
func (h *HappyHour) LiveAt(now time.Time, loc *time.Location) bool {
	start, ok := minutesOfDay(h.StartTime)
	if !ok {
		return false
	}
	end, ok := minutesOfDay(h.EndTime)
	if !ok {
		return false
	}
	local := now.In(loc)
	current := local.Hour()*60 + local.Minute()
	return current >= start && current <= end
}

func (h *HappyHour) TimeRange() string {
	return fmt.Sprintf("%s - %s", h.StartTime, h.EndTime)
}

// minutesOfDay reads a zero-padded "HH:mm" clock time.
func minutesOfDay(hhmm string) (int, bool) {
	if !clockTimePattern.MatchString(hhmm) {
		return 0, false
	}
	t, err := time.Parse(clockLayout, hhmm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
