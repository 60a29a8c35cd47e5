package entities

import (
	"strings"
	"time"
)

// Admin is a staff account allowed to manage events, customers and promotions.
type Admin struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (a *Admin) Normalize() {
	a.Name = strings.TrimSpace(a.Name)
	a.Email = NormalizeEmail(a.Email)
}
