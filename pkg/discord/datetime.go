package discord

import "time"

const dateTimeLayout = "02/01/2006 15:04"

// FormatDateTime renders t in loc as DD/MM/YYYY HH:MM. Zero times render empty.
func FormatDateTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(dateTimeLayout)
}
