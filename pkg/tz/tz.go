package tz

import (
	"fmt"
	"time"
)

// Default is the club's zone when none is configured.
const Default = "Asia/Kolkata"

// Load resolves an IANA zone name. An empty name loads Default.
func Load(name string) (*time.Location, error) {
	if name == "" {
		name = Default
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("tz: load %s: %w", name, err)
	}
	return loc, nil
}
